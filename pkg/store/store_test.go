package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/gridcal/pkg/event"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCreateMintsIDAndListsBack(t *testing.T) {
	p := load(t)

	e := event.Event{Title: "Standup", Date: event.On(day(2024, time.June, 3)), Start: "09:00", End: "10:00"}
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected create to mint an id")
	}

	all := p.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 event, got %d", len(all))
	}
	if all[0].ID != e.ID || all[0].Title != "Standup" {
		t.Fatalf("listed event does not match: %+v", all[0])
	}
}

func TestGet(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := p.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Standup" || !got.Date.SameDay(day(2024, time.June, 3)) {
		t.Fatalf("got unexpected event: %+v", got)
	}

	if _, err := p.Get(ctx, "nope"); err == nil {
		t.Fatalf("expected ErrNotFound for an unknown id")
	}
}

func TestUpdateMovesRecordBetweenDays(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Move the anchor: because the day is part of the key, the old record
	// must be erased, not just shadowed.
	e.Date = event.On(day(2024, time.June, 5))
	if err := p.Update(e); err != nil {
		t.Fatalf("update: %v", err)
	}

	all := p.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 event after the move, got %d", len(all))
	}
	if !all[0].Date.SameDay(day(2024, time.June, 5)) {
		t.Fatalf("expected anchor 2024-06-05, got %s", all[0].Date)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	p := load(t)

	e := event.New("Ghost", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Update(e); err == nil {
		t.Fatalf("expected updating an unknown id to fail")
	}
}

func TestDelete(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := p.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty store, got %d events", len(got))
	}

	// Deleting again is a no-op.
	if err := p.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete of a missing id should be a no-op, got %v", err)
	}
}

func TestListOrder(t *testing.T) {
	p := load(t)

	later := event.New("Review", day(2024, time.June, 5), "14:00", "15:00")
	early := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	sameDay := event.New("Pairing", day(2024, time.June, 3), "11:00", "12:00")
	for _, e := range []*event.Event{&later, &early, &sameDay} {
		if err := p.Create(e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all := p.List(context.Background())
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	want := []string{"Standup", "Pairing", "Review"}
	for i, title := range want {
		if all[i].Title != title {
			t.Fatalf("position %d: expected %s, got %s", i, title, all[i].Title)
		}
	}
}

func TestListSkipsCorruptRecords(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	e := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Plant a record that is not JSON alongside the healthy one.
	dir := filepath.Join(base, "2024", "06", "03")
	if err := os.WriteFile(filepath.Join(dir, "broken"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	all := p.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected the corrupt record to be skipped, got %d events", len(all))
	}
	if all[0].ID != e.ID {
		t.Fatalf("expected the healthy record to survive, got %+v", all[0])
	}
}

func TestPersistenceWatchEmitsDayChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	e := event.New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	if err := p.Create(&e); err != nil {
		t.Fatalf("create: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStoreInvalidated {
				return
			}
			if evt.Type == EventDayChanged {
				if evt.Day != "2024-06-03" {
					t.Fatalf("expected day 2024-06-03, got %q", evt.Day)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a day change event")
		}
	}
}
