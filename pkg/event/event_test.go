package event

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/gridcal/pkg/palette"
	"tableflip.dev/gridcal/pkg/recurrence"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewMintsID(t *testing.T) {
	a := New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	b := New("Standup", day(2024, time.June, 3), "09:00", "10:00")

	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both were %s", a.ID)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Event {
		return New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	}

	tests := []struct {
		name    string
		mutate  func(*Event)
		wantMsg string
	}{{
		name:   "ok",
		mutate: func(e *Event) {},
	}, {
		name:    "empty title",
		mutate:  func(e *Event) { e.Title = "" },
		wantMsg: "title",
	}, {
		name:    "zero date",
		mutate:  func(e *Event) { e.Date = Timestamp{} },
		wantMsg: "date",
	}, {
		name:    "bad start",
		mutate:  func(e *Event) { e.Start = "9am" },
		wantMsg: "start time",
	}, {
		name:    "bad end",
		mutate:  func(e *Event) { e.End = "25:00" },
		wantMsg: "end time",
	}, {
		name: "start equals end",
		mutate: func(e *Event) {
			e.Start = "10:00"
			e.End = "10:00"
		},
		wantMsg: "before end",
	}, {
		name: "start after end",
		mutate: func(e *Event) {
			e.Start = "11:00"
			e.End = "10:00"
		},
		wantMsg: "before end",
	}, {
		name: "weekly with no days",
		mutate: func(e *Event) {
			e.Recurrence = recurrence.Pattern{Rule: recurrence.Weekly{}}
		},
		wantMsg: "weekday",
	}, {
		name: "interval below one",
		mutate: func(e *Event) {
			e.Recurrence = recurrence.Pattern{Rule: recurrence.EveryNWeeks{Weeks: 0}}
		},
		wantMsg: "interval",
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := valid()
			tc.mutate(&e)
			err := e.Validate()
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected an error mentioning %q", tc.wantMsg)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message containing %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	// Both the title and the times are broken. Title is checked first, so
	// that is the failure callers see.
	e := New("", day(2024, time.June, 3), "nope", "also nope")
	err := e.Validate()
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Fatalf("expected the title failure first, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	e := New("Standup", day(2024, time.June, 3), "09:00", "10:00")
	e.Description = "daily sync"
	e.Color = palette.Blue
	e.Recurrence = recurrence.Pattern{Rule: recurrence.Weekly{Days: []time.Weekday{time.Monday, time.Wednesday}}}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Event
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != e.ID || got.Title != e.Title || got.Start != e.Start || got.End != e.End {
		t.Fatalf("round trip changed fields: %+v vs %+v", got, e)
	}
	if !got.Date.SameDay(e.Date.Time) {
		t.Fatalf("round trip changed the day: %s vs %s", got.Date, e.Date)
	}
	if got.Color != palette.Blue {
		t.Fatalf("round trip changed the color: %v", got.Color)
	}
	if !got.OccursOn(day(2024, time.June, 10)) {
		t.Fatalf("round trip lost the recurrence rule")
	}
}

func TestUnmarshalBareDay(t *testing.T) {
	raw := `{"id":"x","title":"Standup","date":"2024-06-03","startTime":"09:00","endTime":"10:00"}`

	var got Event
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Date.SameDay(day(2024, time.June, 3)) {
		t.Fatalf("expected 2024-06-03, got %s", got.Date)
	}
	if got.Recurrence.Get().Type() != recurrence.TypeNone {
		t.Fatalf("missing recurrence should decode as none, got %s", got.Recurrence.Get().Type())
	}
}

func TestDuration(t *testing.T) {
	e := New("Standup", day(2024, time.June, 3), "09:00", "10:30")
	d, err := e.Duration()
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if d != 90*time.Minute {
		t.Fatalf("expected 90m, got %s", d)
	}
}
