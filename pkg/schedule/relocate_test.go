package schedule

import (
	"testing"
	"time"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/recurrence"
)

func TestRelocateShiftsAnchorKeepsRule(t *testing.T) {
	// Monday standup, repeating Mondays.
	ev := mk("a", "Standup", on(2024, time.June, 3), "09:00", "10:00")
	ev.Recurrence = recurrence.Pattern{Rule: recurrence.Weekly{Days: []time.Weekday{time.Monday}}}

	rel := Relocate(ev, on(2024, time.June, 5), nil)

	if !rel.Updated.Date.SameDay(on(2024, time.June, 5)) {
		t.Fatalf("expected anchor 2024-06-05, got %s", rel.Updated.Date)
	}
	if rel.Conflict {
		t.Fatalf("expected no conflict against an empty calendar")
	}

	// The rule travels with the record untouched: weekday membership is a
	// property of the rule, not of which date anchors it.
	w, ok := rel.Updated.Recurrence.Rule.(recurrence.Weekly)
	if !ok {
		t.Fatalf("expected Weekly rule, got %T", rel.Updated.Recurrence.Rule)
	}
	if len(w.Days) != 1 || w.Days[0] != time.Monday {
		t.Fatalf("expected days [Monday], got %v", w.Days)
	}
	if !rel.Updated.OccursOn(on(2024, time.June, 10)) {
		t.Fatalf("expected the moved event to still occur on Mondays")
	}
	if rel.Updated.OccursOn(on(2024, time.June, 11)) {
		t.Fatalf("expected the moved event not to occur on Tuesdays")
	}
}

func TestRelocatePreservesTimesAndDuration(t *testing.T) {
	ev := mk("a", "Standup", on(2024, time.June, 3), "09:00", "10:00")

	rel := Relocate(ev, on(2024, time.July, 1), nil)

	if rel.Updated.Start != "09:00" || rel.Updated.End != "10:00" {
		t.Fatalf("expected times preserved, got %s-%s", rel.Updated.Start, rel.Updated.End)
	}
	if rel.Updated.ID != ev.ID {
		t.Fatalf("relocation must not change the id")
	}
}

func TestRelocateBackward(t *testing.T) {
	ev := mk("a", "Standup", on(2024, time.June, 10), "09:00", "10:00")

	rel := Relocate(ev, on(2024, time.June, 3), nil)
	if !rel.Updated.Date.SameDay(on(2024, time.June, 3)) {
		t.Fatalf("expected anchor 2024-06-03, got %s", rel.Updated.Date)
	}
}

func TestRelocateReportsConflictButDoesNotDecide(t *testing.T) {
	ev := mk("a", "Standup", on(2024, time.June, 3), "09:00", "10:00")
	blocker := mk("b", "Review", on(2024, time.June, 5), "09:30", "10:30")

	rel := Relocate(ev, on(2024, time.June, 5), []event.Event{ev, blocker})

	if !rel.Conflict {
		t.Fatalf("expected the move to report a conflict")
	}
	if rel.ClashesWith.ID != "b" {
		t.Fatalf("expected clash with b, got %s", rel.ClashesWith.ID)
	}
	// The updated record is still produced: blocking or overriding is the
	// caller's call.
	if !rel.Updated.Date.SameDay(on(2024, time.June, 5)) {
		t.Fatalf("expected the updated record to carry the target day")
	}
}

func TestRelocateDoesNotConflictWithItself(t *testing.T) {
	ev := mk("a", "Standup", on(2024, time.June, 3), "09:00", "10:00")

	rel := Relocate(ev, on(2024, time.June, 3), []event.Event{ev})
	if rel.Conflict {
		t.Fatalf("an event dropped on its own day must not clash with itself")
	}
}
