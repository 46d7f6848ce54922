package schedule

import (
	"time"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// Relocation is the outcome of moving an event to a new day. Updated carries
// the replacement record; when Conflict is set, ClashesWith names the first
// event it would collide with so the caller can prompt before committing.
type Relocation struct {
	Updated     event.Event
	Conflict    bool
	ClashesWith event.Event
}

// Relocate computes the replacement record for an event dropped on newDay.
// The anchor shifts by the whole-day delta; wall-clock times, duration, and
// the recurrence rule are untouched. Moving a recurring event therefore moves
// its entire pattern, not a single occurrence; there is no detach mode.
//
// The caller decides whether a reported conflict blocks the move.
func Relocate(ev event.Event, newDay time.Time, existing []event.Event) Relocation {
	delta := timeutil.DayDelta(ev.Date.Time, newDay)

	updated := ev
	updated.Date = event.On(ev.Date.AddDate(0, 0, delta))

	clash, found := FindConflict(updated, existing, ev.ID)
	return Relocation{
		Updated:     updated,
		Conflict:    found,
		ClashesWith: clash,
	}
}
