package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moments/pkg/slack"
	"tableflip.dev/moments/pkg/store"
	"tableflip.dev/moments/pkg/tui/dashboard"
)

// UI opens the terminal dashboard.
type UI struct {
	Token    string
	Client   *slack.Client
	Snapshot store.Snapshot
	Location *time.Location
}

func (n *UI) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not open ui, no client")
	}
	return dashboard.Run(n.Client, n.Snapshot, n.Token, n.Location)
}
