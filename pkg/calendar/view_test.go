package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moments/pkg/reminder"
)

func rem(id, due string) *reminder.Reminder {
	r := &reminder.Reminder{ID: id, Text: "reminder " + id}
	if due != "" {
		t, err := time.Parse(time.RFC3339, due)
		if err != nil {
			panic(err)
		}
		ts := reminder.Timestamp{Time: t}
		r.DueAt = &ts
	}
	return r
}

func anchorOn(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseGranularity(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		g, err := ParseGranularity(valid)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", valid, err)
		}
		if string(g) != valid {
			t.Fatalf("expected %q, got %q", valid, g)
		}
	}

	if _, err := ParseGranularity("decade"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for decade, got %v", err)
	}
}

func TestBuildViewDayBucketsSortedByTimeThenID(t *testing.T) {
	items := []*reminder.Reminder{
		rem("a", "2024-06-03T09:00:00Z"),
		rem("b", "2024-06-03T08:00:00Z"),
		rem("c", ""),
	}

	v, err := BuildView(items, Day, anchorOn("2024-06-03"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(v.Buckets) != 1 {
		t.Fatalf("expected exactly one bucket, got %d", len(v.Buckets))
	}
	day := Date{Year: 2024, Month: time.June, Day: 3}
	bucket := v.Buckets[day]
	if len(bucket) != 2 {
		t.Fatalf("expected two reminders on %s, got %d", day, len(bucket))
	}
	if bucket[0].ID != "b" || bucket[1].ID != "a" {
		t.Fatalf("expected order [b a], got [%s %s]", bucket[0].ID, bucket[1].ID)
	}
}

func TestBuildViewTiesBrokenByID(t *testing.T) {
	items := []*reminder.Reminder{
		rem("z", "2024-06-03T08:00:00Z"),
		rem("a", "2024-06-03T08:00:00Z"),
	}

	v, err := BuildView(items, Day, anchorOn("2024-06-03"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bucket := v.Buckets[Date{Year: 2024, Month: time.June, Day: 3}]
	if bucket[0].ID != "a" || bucket[1].ID != "z" {
		t.Fatalf("expected id tie-break [a z], got [%s %s]", bucket[0].ID, bucket[1].ID)
	}
}

func TestBuildViewWeekStartsMonday(t *testing.T) {
	// 2024-06-05 is a Wednesday; the containing week is 06-03 through 06-09.
	v, err := BuildView(nil, Week, anchorOn("2024-06-05"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := Date{Year: 2024, Month: time.June, Day: 3}
	wantEnd := Date{Year: 2024, Month: time.June, Day: 9}
	if v.Start != wantStart || v.End != wantEnd {
		t.Fatalf("expected range %s..%s, got %s..%s", wantStart, wantEnd, v.Start, v.End)
	}
	if len(v.Buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(v.Buckets))
	}
	for _, d := range v.Dates() {
		if _, ok := v.Buckets[d]; !ok {
			t.Fatalf("missing bucket for %s", d)
		}
	}
}

func TestBuildViewMonthCoversWholeWeekRows(t *testing.T) {
	// June 2024 starts on a Saturday and ends on a Sunday, so the grid runs
	// Monday May 27 through Sunday June 30.
	v, err := BuildView(nil, Month, anchorOn("2024-06-15"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := Date{Year: 2024, Month: time.May, Day: 27}
	wantEnd := Date{Year: 2024, Month: time.June, Day: 30}
	if v.Start != wantStart || v.End != wantEnd {
		t.Fatalf("expected range %s..%s, got %s..%s", wantStart, wantEnd, v.Start, v.End)
	}
	if len(v.Buckets) != 35 {
		t.Fatalf("expected 35 buckets (5 week rows), got %d", len(v.Buckets))
	}
	if v.Start.Time(time.UTC).Weekday() != time.Monday {
		t.Fatalf("expected Monday start, got %s", v.Start.Time(time.UTC).Weekday())
	}
}

func TestBuildViewExcludesOutOfRangeAndUndated(t *testing.T) {
	items := []*reminder.Reminder{
		rem("in", "2024-06-05T10:00:00Z"),
		rem("before", "2024-06-02T10:00:00Z"),
		rem("after", "2024-06-10T10:00:00Z"),
		rem("undated", ""),
	}

	v, err := BuildView(items, Week, anchorOn("2024-06-05"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for d, bucket := range v.Buckets {
		if d.Before(v.Start) || d.After(v.End) {
			t.Fatalf("bucket %s is outside visible range", d)
		}
		for _, r := range bucket {
			if r.ID != "in" {
				t.Fatalf("unexpected reminder %q in bucket %s", r.ID, d)
			}
			total++
		}
	}
	if total != 1 {
		t.Fatalf("expected exactly one bucketed reminder, got %d", total)
	}
}

func TestBuildViewIsPure(t *testing.T) {
	items := []*reminder.Reminder{
		rem("a", "2024-06-03T09:00:00Z"),
		rem("b", "2024-06-04T08:00:00Z"),
	}

	first, err := BuildView(items, Week, anchorOn("2024-06-05"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildView(items, Week, anchorOn("2024-06-05"), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical views for identical inputs")
	}
}

func TestBuildViewInvalidArguments(t *testing.T) {
	if _, err := BuildView(nil, Granularity("decade"), anchorOn("2024-06-05"), time.UTC); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad granularity, got %v", err)
	}
	if _, err := BuildView(nil, Day, time.Time{}, time.UTC); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero anchor, got %v", err)
	}
}

func TestBuildViewConvertsToDisplayLocation(t *testing.T) {
	// 23:30 UTC on June 3 is already June 4 in UTC+2.
	loc := time.FixedZone("UTC+2", 2*60*60)
	items := []*reminder.Reminder{rem("late", "2024-06-03T23:30:00Z")}

	v, err := BuildView(items, Week, anchorOn("2024-06-05"), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := Date{Year: 2024, Month: time.June, Day: 4}
	if len(v.Buckets[day]) != 1 {
		t.Fatalf("expected reminder bucketed under %s in display zone", day)
	}
}

func TestDateHelpers(t *testing.T) {
	d := Date{Year: 2024, Month: time.February, Day: 28}
	if got := d.AddDays(2); got != (Date{Year: 2024, Month: time.March, Day: 1}) {
		t.Fatalf("expected leap-year rollover to March 1, got %s", got)
	}
	if d.String() != "2024-02-28" {
		t.Fatalf("unexpected date format: %s", d)
	}
}
