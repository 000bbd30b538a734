package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moments/pkg/reminder"
	"tableflip.dev/moments/pkg/slack"
	"tableflip.dev/moments/pkg/store"
)

// Sync fetches the user's open dated reminders and replaces the local
// snapshot with them. With Out set it additionally writes a JSON events file
// suitable for external calendar tooling.
type Sync struct {
	Out string

	Token    string
	Client   *slack.Client
	Snapshot store.Snapshot
}

// event is the exported JSON shape, one object per open reminder.
type event struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not sync, no client")
	}
	if n.Snapshot == nil {
		return errors.New("can not sync, no snapshot store")
	}

	items, err := n.Client.ListReminders(ctx, n.Token)
	if err != nil {
		return err
	}

	kept := make([]*reminder.Reminder, 0, len(items))
	for _, r := range items {
		if r.Complete || !r.Dated() {
			continue
		}
		kept = append(kept, r)
	}

	if err := n.Snapshot.Replace(ctx, kept); err != nil {
		return err
	}

	if n.Out != "" {
		if err := writeEvents(n.Out, kept); err != nil {
			return err
		}
	}

	fmt.Printf("synced %d reminder(s)\n", len(kept))
	return nil
}

func writeEvents(path string, items []*reminder.Reminder) error {
	events := make([]event, 0, len(items))
	for _, r := range items {
		events = append(events, event{
			ID:     r.ID,
			Title:  r.Text,
			Start:  r.DueAt.Local().Format(time.RFC3339),
			AllDay: false,
		})
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
