// Package event defines the calendar's central value type. Events are
// immutable in spirit: editing always produces a replacement record, never an
// in-place field mutation, so equality-based change detection stays honest.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/gridcal/pkg/palette"
	"tableflip.dev/gridcal/pkg/recurrence"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// ErrValidation wraps every boundary validation failure.
var ErrValidation = errors.New("invalid event")

// Event is a scheduled item. Date is the anchor: for single events the day
// it happens, for recurring events the reference point recurrence math runs
// against. Start and End are wall-clock "HH:MM" strings.
type Event struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Date        Timestamp          `json:"date"`
	Start       string             `json:"startTime"`
	End         string             `json:"endTime"`
	Description string             `json:"description,omitempty"`
	Color       palette.Color      `json:"color,omitempty"`
	Recurrence  recurrence.Pattern `json:"recurrence"`
}

// New builds an event with a freshly minted id.
func New(title string, date time.Time, start, end string) Event {
	return Event{
		ID:    uuid.NewString(),
		Title: title,
		Date:  On(date),
		Start: start,
		End:   end,
	}
}

// OccursOn reports whether the event is active on the given day.
func (e Event) OccursOn(day time.Time) bool {
	return e.Recurrence.OccursOn(e.Date.Time, day)
}

// Validate checks boundary rules in a fixed order so the first failure, and
// therefore the surfaced message, is deterministic.
func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	start, err := timeutil.MinutesSinceMidnight(e.Start)
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrValidation, err)
	}
	end, err := timeutil.MinutesSinceMidnight(e.End)
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrValidation, err)
	}
	if start >= end {
		return fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}
	switch r := e.Recurrence.Get().(type) {
	case recurrence.Weekly:
		if len(r.Days) == 0 {
			return fmt.Errorf("%w: weekly recurrence needs at least one weekday", ErrValidation)
		}
	case recurrence.EveryNWeeks:
		if r.Weeks < 1 {
			return fmt.Errorf("%w: recurrence interval must be at least 1 week", ErrValidation)
		}
	}
	return nil
}

// Duration returns the event's length. Validate is expected to have passed.
func (e Event) Duration() (time.Duration, error) {
	start, err := timeutil.MinutesSinceMidnight(e.Start)
	if err != nil {
		return 0, err
	}
	end, err := timeutil.MinutesSinceMidnight(e.End)
	if err != nil {
		return 0, err
	}
	return time.Duration(end-start) * time.Minute, nil
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s-%s  %s", e.Date, e.Start, e.End, e.Title)
}
