package get

import (
	"context"
	"errors"

	"tableflip.dev/moments/pkg/printers"
	"tableflip.dev/moments/pkg/reminder"
	"tableflip.dev/moments/pkg/slack"
	"tableflip.dev/moments/pkg/store"
)

// Get lists the user's reminders, split into open and completed, sorted by
// due time. With Cached set it reads the local snapshot instead of calling
// the service.
type Get struct {
	ShowID bool
	All    bool
	Cached bool

	Token    string
	Client   *slack.Client
	Snapshot store.Snapshot
}

func (n *Get) Do(ctx context.Context) error {
	items, err := n.load(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	open := make([]*reminder.Reminder, 0, len(items))
	done := make([]*reminder.Reminder, 0)
	for _, r := range items {
		if r.Complete {
			done = append(done, r)
		} else {
			open = append(open, r)
		}
	}
	reminder.SortByDue(open)
	reminder.SortByDue(done)

	pp.TitleWithCount("To do", len(open))
	pp.Reminders(open...)

	if n.All {
		pp.TitleWithCount("Completed", len(done))
		pp.Reminders(done...)
	}

	return nil
}

func (n *Get) load(ctx context.Context) ([]*reminder.Reminder, error) {
	if n.Cached {
		if n.Snapshot == nil {
			return nil, errors.New("can not get, no snapshot store")
		}
		return n.Snapshot.List(ctx), nil
	}
	if n.Client == nil {
		return nil, errors.New("can not get, no client")
	}
	return n.Client.ListReminders(ctx, n.Token)
}
