package reminder

import (
	"fmt"
	"sort"
)

// Reminder is one reminder item pulled from the Slack reminders feature.
type Reminder struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	DueAt     *Timestamp `json:"due_at,omitempty"`
	Complete  bool       `json:"complete"`
	Recurring bool       `json:"recurring,omitempty"`
}

// Dated reports whether the reminder has a due time. Undated reminders never
// appear on the calendar.
func (r *Reminder) Dated() bool {
	return r != nil && r.DueAt != nil && !r.DueAt.IsZero()
}

func (r *Reminder) Row() (string, string, string) {
	when := ""
	if r.Dated() {
		when = r.DueAt.Local().Format("2006-01-02 15:04")
	}
	return r.Mark(), when, r.Text
}

// Mark returns the list glyph for the reminder state.
func (r *Reminder) Mark() string {
	switch {
	case r.Complete:
		return "✓"
	case r.Recurring:
		return "↻"
	default:
		return "•"
	}
}

func (r *Reminder) String() string {
	m, when, text := r.Row()
	if when == "" {
		return fmt.Sprintf("%s %s", m, text)
	}
	return fmt.Sprintf("%s %s  —  %s", m, text, when)
}

// SortByDue orders reminders by due time ascending with exact ties broken by
// id. Undated reminders sort last, ordered by id.
func SortByDue(items []*Reminder) {
	sort.SliceStable(items, func(i, j int) bool {
		left := items[i]
		right := items[j]
		if left == nil || right == nil {
			return left != nil
		}
		switch {
		case !left.Dated() && !right.Dated():
			return left.ID < right.ID
		case !left.Dated():
			return false
		case !right.Dated():
			return true
		default:
			if left.DueAt.Equal(right.DueAt.Time) {
				return left.ID < right.ID
			}
			return left.DueAt.Before(right.DueAt.Time)
		}
	})
}
