package reminder

import (
	"encoding/json"
	"testing"
	"time"
)

func at(value string) *Timestamp {
	t, err := ParseTime(value)
	if err != nil {
		panic(err)
	}
	return &Timestamp{Time: t}
}

func TestSortByDue(t *testing.T) {
	items := []*Reminder{
		{ID: "d", Text: "undated"},
		{ID: "b", Text: "later", DueAt: at("2024-06-03T10:00:00Z")},
		{ID: "c", Text: "tied", DueAt: at("2024-06-03T08:00:00Z")},
		{ID: "a", Text: "tied", DueAt: at("2024-06-03T08:00:00Z")},
	}

	SortByDue(items)

	want := []string{"a", "c", "b", "d"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestDated(t *testing.T) {
	var nilReminder *Reminder
	if nilReminder.Dated() {
		t.Fatal("nil reminder must not be dated")
	}
	if (&Reminder{ID: "a"}).Dated() {
		t.Fatal("reminder without due time must not be dated")
	}
	if (&Reminder{ID: "a", DueAt: &Timestamp{}}).Dated() {
		t.Fatal("zero due time must not count as dated")
	}
	if !(&Reminder{ID: "a", DueAt: at("2024-06-03T08:00:00Z")}).Dated() {
		t.Fatal("expected dated reminder")
	}
}

func TestMark(t *testing.T) {
	tests := []struct {
		r    Reminder
		want string
	}{
		{Reminder{Complete: true}, "✓"},
		{Reminder{Recurring: true}, "↻"},
		{Reminder{}, "•"},
	}
	for _, tt := range tests {
		if got := tt.r.Mark(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestFromUnix(t *testing.T) {
	ts := FromUnix(1717401600)
	if !ts.Equal(time.Unix(1717401600, 0)) {
		t.Fatalf("unexpected time: %v", ts)
	}
}

func TestTimestampJSON(t *testing.T) {
	r := Reminder{ID: "Rm1", Text: "pay rent", DueAt: at("2024-06-03T08:00:00Z")}

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Reminder
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Dated() || !back.DueAt.Equal(r.DueAt.Time) {
		t.Fatalf("due time did not survive the round trip: %v", back.DueAt)
	}
}

func TestTimestampJSONZero(t *testing.T) {
	zero := &Timestamp{}
	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("expected empty string for zero time, got %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero time, got %v", back)
	}
}
