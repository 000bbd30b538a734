package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moments/pkg/reminder"
)

type testConfig struct {
	path string
}

func (t testConfig) Token() string {
	return ""
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Timeout() time.Duration {
	return 0
}

func due(value string) *reminder.Timestamp {
	ts, err := reminder.ParseTime(value)
	if err != nil {
		panic(err)
	}
	return &reminder.Timestamp{Time: ts}
}

func TestSnapshotReplaceAndList(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	ctx := context.Background()

	first := []*reminder.Reminder{
		{ID: "Rm1", Text: "pay rent", DueAt: due("2024-06-03T08:00:00Z")},
		{ID: "Rm2", Text: "call mum"},
	}
	if err := s.Replace(ctx, first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := s.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(got))
	}
	// SortByDue puts the dated reminder first, undated last.
	if got[0].ID != "Rm1" || got[1].ID != "Rm2" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Text != "pay rent" || !got[0].Dated() {
		t.Fatalf("reminder did not survive the round trip: %+v", got[0])
	}

	// A second Replace must fully supersede the first snapshot.
	second := []*reminder.Reminder{
		{ID: "Rm3", Text: "water plants", DueAt: due("2024-06-04T09:00:00Z")},
	}
	if err := s.Replace(ctx, second); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got = s.List(ctx)
	if len(got) != 1 || got[0].ID != "Rm3" {
		t.Fatalf("expected only Rm3 after replace, got %+v", got)
	}
}

func TestSnapshotStoreAndDelete(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	ctx := context.Background()

	r := &reminder.Reminder{ID: "Rm1", Text: "pay rent", DueAt: due("2024-06-03T08:00:00Z")}
	if err := s.Store(r); err != nil {
		t.Fatalf("store: %v", err)
	}
	if got := s.List(ctx); len(got) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(got))
	}
	if err := s.Delete(r); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := s.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(got))
	}
}

func TestSnapshotStoreRequiresID(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if err := s.Store(&reminder.Reminder{Text: "no id"}); err == nil {
		t.Fatal("expected error storing a reminder without an id")
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	key, err := toKey(&reminder.Reminder{ID: "Rm024BE7CQ", DueAt: due("2024-06-03T08:00:00Z")})
	if err != nil {
		t.Fatalf("toKey: %v", err)
	}
	pk := keyToPathTransform(key)
	if pk.FileName != "Rm024BE7CQ" {
		t.Fatalf("expected file name Rm024BE7CQ, got %q", pk.FileName)
	}
	if back := pathToKeyTransform(pk); back != key {
		t.Fatalf("expected key %q to round trip, got %q", key, back)
	}

	undated, err := toKey(&reminder.Reminder{ID: "Rm99"})
	if err != nil {
		t.Fatalf("toKey: %v", err)
	}
	if pk := keyToPathTransform(undated); pk.Path[0] != undatedDir {
		t.Fatalf("expected undated directory, got %q", pk.Path[0])
	}
}

func TestSnapshotWatchEmitsDayChanges(t *testing.T) {
	base := t.TempDir()
	s, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	r := &reminder.Reminder{ID: "Rm1", Text: "pay rent", DueAt: due("2024-06-03T08:00:00Z")}
	if err := s.Store(r); err != nil {
		t.Fatalf("store reminder: %v", err)
	}
	wantDate := r.DueAt.Local().Format(layoutISO)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventSnapshotInvalidated {
				return
			}
			if evt.Type == EventDayChanged {
				if evt.Date != wantDate {
					t.Fatalf("expected date %q, got %q", wantDate, evt.Date)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for day change event")
		}
	}
}
