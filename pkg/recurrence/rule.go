// Package recurrence decides on which calendar days an event occurs.
//
// Rules are modeled as one concrete variant per repetition kind, each
// carrying only the fields that kind needs. Matching is always evaluated
// relative to the owning event's anchor date.
package recurrence

import (
	"time"

	"tableflip.dev/gridcal/pkg/timeutil"
)

// Type names a repetition kind as it appears on the wire.
type Type string

const (
	TypeNone    Type = "none"
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
	TypeCustom  Type = "custom"
)

// Rule decides whether an event anchored on a given day occurs on another.
// Implementations are pure values; OccursOn never fails and is O(1).
type Rule interface {
	Type() Type

	// OccursOn reports whether an event anchored on anchor is active on day.
	OccursOn(anchor, day time.Time) bool

	// End returns the optional last day occurrences are generated for, or
	// nil when the rule is open-ended.
	End() *time.Time
}

// None is a single-occurrence rule: the event is active only on its anchor.
type None struct{}

func (None) Type() Type                          { return TypeNone }
func (None) End() *time.Time                     { return nil }
func (None) OccursOn(anchor, day time.Time) bool { return timeutil.SameDay(anchor, day) }

// Daily repeats on every day. The pattern is unbounded in both directions:
// days before the anchor also match, which mirrors how the month view treats
// a daily event when paging into the past.
type Daily struct {
	Until *time.Time
}

func (Daily) Type() Type        { return TypeDaily }
func (d Daily) End() *time.Time { return d.Until }

func (d Daily) OccursOn(anchor, day time.Time) bool {
	return !ended(d.Until, day)
}

// Weekly repeats on a set of weekdays. An empty set degenerates to the
// anchor's own weekday, never to "no days".
type Weekly struct {
	Days  []time.Weekday
	Until *time.Time
}

func (Weekly) Type() Type        { return TypeWeekly }
func (w Weekly) End() *time.Time { return w.Until }

func (w Weekly) OccursOn(anchor, day time.Time) bool {
	if ended(w.Until, day) {
		return false
	}
	if len(w.Days) == 0 {
		return timeutil.SameDay(anchor, day)
	}
	wd := day.Local().Weekday()
	for _, d := range w.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// Monthly repeats on the anchor's day-of-month numeral. Months without that
// numeral simply have no occurrence; there is no clamping to the last day.
type Monthly struct {
	Until *time.Time
}

func (Monthly) Type() Type        { return TypeMonthly }
func (m Monthly) End() *time.Time { return m.Until }

func (m Monthly) OccursOn(anchor, day time.Time) bool {
	if ended(m.Until, day) {
		return false
	}
	return anchor.Local().Day() == day.Local().Day()
}

// EveryNWeeks repeats on a whole-week cadence counted from the anchor's week.
// A day belongs to week floor(dayDelta/7) relative to the anchor; it matches
// when that week number is a multiple of the interval. Weeks < 1 never
// matches.
type EveryNWeeks struct {
	Weeks int
	Until *time.Time
}

func (EveryNWeeks) Type() Type        { return TypeCustom }
func (e EveryNWeeks) End() *time.Time { return e.Until }

func (e EveryNWeeks) OccursOn(anchor, day time.Time) bool {
	if e.Weeks < 1 {
		return false
	}
	if ended(e.Until, day) {
		return false
	}
	weeks := floorDiv(timeutil.DayDelta(anchor, day), 7)
	return weeks%e.Weeks == 0
}

// ended reports whether day falls strictly after the rule's end date. The
// end date itself still matches.
func ended(until *time.Time, day time.Time) bool {
	if until == nil {
		return false
	}
	return timeutil.DayDelta(*until, day) > 0
}

// floorDiv divides rounding toward negative infinity, so week numbering is
// continuous across the anchor rather than mirrored around it.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
