// Package schedule holds the scheduling decisions the calendar's save and
// move paths consult: time-range conflicts and anchor relocation. Everything
// here is pure; committing or discarding a change stays with the caller.
package schedule

import (
	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// FindConflict returns the first existing event whose time range overlaps the
// candidate's on the candidate's anchor day. Only literal anchor-date
// collisions are checked; recurrence is not expanded. An event whose id
// equals excludeID is skipped so a record never conflicts with itself when
// re-saved or moved.
//
// Ranges are half-open: [09:00,10:00) and [10:00,11:00) touch but do not
// overlap.
func FindConflict(candidate event.Event, existing []event.Event, excludeID string) (event.Event, bool) {
	candStart, err := timeutil.MinutesSinceMidnight(candidate.Start)
	if err != nil {
		return event.Event{}, false
	}
	candEnd, err := timeutil.MinutesSinceMidnight(candidate.End)
	if err != nil {
		return event.Event{}, false
	}

	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if !other.Date.SameDay(candidate.Date.Time) {
			continue
		}
		start, err := timeutil.MinutesSinceMidnight(other.Start)
		if err != nil {
			continue
		}
		end, err := timeutil.MinutesSinceMidnight(other.End)
		if err != nil {
			continue
		}
		if candStart < end && candEnd > start {
			return other, true
		}
	}
	return event.Event{}, false
}

// HasConflict reports whether any existing event collides with the candidate.
func HasConflict(candidate event.Event, existing []event.Event, excludeID string) bool {
	_, found := FindConflict(candidate, existing, excludeID)
	return found
}
