// Package calendar turns a flat reminder list into a day, week, or month
// view keyed by calendar date.
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/moments/pkg/reminder"
)

// ErrInvalidArgument reports a bad granularity or anchor date. Callers hitting
// this passed a value the UI should never have produced.
var ErrInvalidArgument = errors.New("calendar: invalid argument")

// Granularity selects the visible window shape.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// DefaultGranularity matches the initial dashboard view.
const DefaultGranularity = Month

// ParseGranularity maps a user-supplied mode name onto a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Day, Week, Month:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: granularity %q", ErrInvalidArgument, s)
}

func (g Granularity) valid() bool {
	switch g {
	case Day, Week, Month:
		return true
	}
	return false
}

// Date is a civil calendar date in the display location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a point in time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays steps the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// View is a read-only projection of reminders over a visible date range.
// Every date in [Start, End] has a bucket, possibly empty, and no date
// outside the range appears.
type View struct {
	Granularity Granularity
	Anchor      Date
	Start       Date
	End         Date
	Buckets     map[Date][]*reminder.Reminder
}

// Dates returns the visible range in order.
func (v *View) Dates() []Date {
	var out []Date
	for d := v.Start; !d.After(v.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// Range computes the visible window for the granularity and anchor. Weeks
// start on Monday; the month window is padded with leading and trailing days
// so it covers whole week rows.
func Range(g Granularity, anchor time.Time) (Date, Date, error) {
	if !g.valid() {
		return Date{}, Date{}, fmt.Errorf("%w: granularity %q", ErrInvalidArgument, g)
	}
	if anchor.IsZero() {
		return Date{}, Date{}, fmt.Errorf("%w: zero anchor date", ErrInvalidArgument)
	}

	day := DateOf(anchor)
	switch g {
	case Day:
		return day, day, nil
	case Week:
		start := day.AddDays(-mondayOffset(anchor.Weekday()))
		return start, start.AddDays(6), nil
	default: // Month
		first := Date{Year: day.Year, Month: day.Month, Day: 1}
		last := DateOf(first.Time(time.UTC).AddDate(0, 1, -1))
		start := first.AddDays(-mondayOffset(first.Time(time.UTC).Weekday()))
		end := last.AddDays(6 - mondayOffset(last.Time(time.UTC).Weekday()))
		return start, end, nil
	}
}

// BuildView buckets reminders by their local calendar date within the visible
// range. Reminders without a due time are excluded. The function is pure:
// identical inputs produce identical views.
func BuildView(items []*reminder.Reminder, g Granularity, anchor time.Time, loc *time.Location) (*View, error) {
	start, end, err := Range(g, anchor)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}

	v := &View{
		Granularity: g,
		Anchor:      DateOf(anchor),
		Start:       start,
		End:         end,
		Buckets:     make(map[Date][]*reminder.Reminder),
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		v.Buckets[d] = []*reminder.Reminder{}
	}

	for _, r := range items {
		if r == nil || !r.Dated() {
			continue
		}
		d := DateOf(r.DueAt.In(loc))
		if d.Before(start) || d.After(end) {
			continue
		}
		v.Buckets[d] = append(v.Buckets[d], r)
	}

	for d := range v.Buckets {
		sortBucket(v.Buckets[d])
	}
	return v, nil
}

// sortBucket orders one day's reminders by time of day, ties by id.
func sortBucket(items []*reminder.Reminder) {
	sort.SliceStable(items, func(i, j int) bool {
		lt := items[i].DueAt.Time
		rt := items[j].DueAt.Time
		if lt.Equal(rt) {
			return items[i].ID < items[j].ID
		}
		return lt.Before(rt)
	})
}

// mondayOffset returns days since the previous Monday.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
