package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock reports a wall-clock string that is not "HH:MM" with the
// hour in [0,23] and the minute in [0,59].
var ErrInvalidClock = errors.New("invalid clock time")

// MinutesSinceMidnight parses a 24-hour "HH:MM" string and returns the minute
// offset from midnight, in [0, 1439].
func MinutesSinceMidnight(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidClock, s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidClock, s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidClock, s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders a minute offset from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SameDay reports whether two instants fall on the same local calendar day,
// independent of time-of-day.
func SameDay(a, b time.Time) bool {
	return a.Local().Day() == b.Local().Day() &&
		a.Local().Month() == b.Local().Month() &&
		a.Local().Year() == b.Local().Year()
}

// DayDelta returns the signed number of whole calendar days from one day to
// another, ignoring time-of-day. Normalizing through UTC midnights keeps DST
// transitions from producing off-by-one results.
func DayDelta(from, to time.Time) int {
	return int(utcMidnight(to).Sub(utcMidnight(from)).Hours() / 24)
}

// Midnight returns the local midnight of the given instant.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func utcMidnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
