package event

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Timestamp wraps time.Time with the ISO-8601 JSON behavior persisted events
// use: dates marshal as RFC 3339 and unmarshal from either RFC 3339 or a bare
// "2006-01-02" day.
type Timestamp struct {
	time.Time
}

// On builds a Timestamp for a calendar day.
func On(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseDate(v string) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutISO, v, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// SameDay reports whether the timestamp and then share a local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.Local().Format(layoutISO)
}
