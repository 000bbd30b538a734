package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moments/pkg/slack"
)

// Complete marks the given reminder ids completed via the service. Each id is
// attempted even if an earlier one fails.
type Complete struct {
	IDs []string

	Token  string
	Client *slack.Client
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not complete, no client")
	}
	if len(n.IDs) == 0 {
		return errors.New("can not complete, no reminder ids given")
	}

	var errs []error
	for _, id := range n.IDs {
		if err := n.Client.CompleteReminder(ctx, n.Token, id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		fmt.Printf("completed %s\n", id)
	}
	return errors.Join(errs...)
}
