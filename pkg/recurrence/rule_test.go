package recurrence

import (
	"encoding/json"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// 2024-06-03 is a Monday.
var anchor = day(2024, time.June, 3)

func TestNoneMatchesOnlyAnchorDay(t *testing.T) {
	r := None{}
	if !r.OccursOn(anchor, anchor) {
		t.Fatalf("expected anchor day to match")
	}
	for i := 1; i <= 31; i++ {
		if r.OccursOn(anchor, anchor.AddDate(0, 0, i)) {
			t.Fatalf("day +%d should not match", i)
		}
		if r.OccursOn(anchor, anchor.AddDate(0, 0, -i)) {
			t.Fatalf("day -%d should not match", i)
		}
	}
}

func TestDailyMatchesEveryDay(t *testing.T) {
	r := Daily{}
	// Unbounded in both directions, including days before the anchor.
	for i := -30; i <= 30; i++ {
		if !r.OccursOn(anchor, anchor.AddDate(0, 0, i)) {
			t.Fatalf("day %+d should match a daily rule", i)
		}
	}
}

func TestWeeklyMatchesSelectedWeekdays(t *testing.T) {
	r := Weekly{Days: []time.Weekday{time.Monday, time.Wednesday}}

	// Every day of June 2024.
	for d := 1; d <= 30; d++ {
		on := day(2024, time.June, d)
		want := on.Weekday() == time.Monday || on.Weekday() == time.Wednesday
		if got := r.OccursOn(anchor, on); got != want {
			t.Fatalf("june %d (%s): expected %v, got %v", d, on.Weekday(), want, got)
		}
	}
}

func TestWeeklyEmptyDaysDegeneratesToAnchor(t *testing.T) {
	r := Weekly{}
	if !r.OccursOn(anchor, anchor) {
		t.Fatalf("expected the anchor day to match")
	}
	// The following Monday does not match: with no day set this behaves as a
	// single occurrence, never as "no days".
	if r.OccursOn(anchor, anchor.AddDate(0, 0, 7)) {
		t.Fatalf("expected only the anchor day to match")
	}
}

func TestMonthlyNeverClamps(t *testing.T) {
	a := day(2024, time.May, 31)
	r := Monthly{}

	// June has 30 days: no occurrence at all.
	for d := 1; d <= 30; d++ {
		if r.OccursOn(a, day(2024, time.June, d)) {
			t.Fatalf("june %d should not match an event anchored on the 31st", d)
		}
	}
	if !r.OccursOn(a, day(2024, time.July, 31)) {
		t.Fatalf("july 31 should match")
	}
}

func TestEveryNWeeksPeriodicity(t *testing.T) {
	r := EveryNWeeks{Weeks: 2}

	// The 2-week cadence holds at least 8 cycles forward and backward.
	for cycle := -8; cycle <= 8; cycle++ {
		on := anchor.AddDate(0, 0, cycle*14)
		if !r.OccursOn(anchor, on) {
			t.Fatalf("cycle %+d (%s) should match", cycle, on.Format("2006-01-02"))
		}
		off := anchor.AddDate(0, 0, cycle*14+7)
		if r.OccursOn(anchor, off) {
			t.Fatalf("off week %+d (%s) should not match", cycle, off.Format("2006-01-02"))
		}
	}
}

func TestEveryNWeeksNonPositiveNeverMatches(t *testing.T) {
	for _, weeks := range []int{0, -1} {
		r := EveryNWeeks{Weeks: weeks}
		if r.OccursOn(anchor, anchor) {
			t.Fatalf("weeks=%d should never match", weeks)
		}
	}
}

func TestUntilStopsOccurrences(t *testing.T) {
	until := anchor.AddDate(0, 0, 14)
	r := Daily{Until: &until}

	if !r.OccursOn(anchor, until) {
		t.Fatalf("the end date itself should still match")
	}
	if r.OccursOn(anchor, until.AddDate(0, 0, 1)) {
		t.Fatalf("the day after the end date should not match")
	}
}

func TestPatternZeroValueBehavesAsNone(t *testing.T) {
	var p Pattern
	if !p.OccursOn(anchor, anchor) {
		t.Fatalf("zero pattern should match its anchor day")
	}
	if p.OccursOn(anchor, anchor.AddDate(0, 0, 1)) {
		t.Fatalf("zero pattern should match only its anchor day")
	}
}

func TestPatternJSONRoundTrip(t *testing.T) {
	until := day(2024, time.December, 31)
	in := Pattern{Rule: Weekly{Days: []time.Weekday{time.Monday, time.Wednesday}, Until: &until}}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Pattern
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	w, ok := out.Rule.(Weekly)
	if !ok {
		t.Fatalf("expected Weekly, got %T", out.Rule)
	}
	if len(w.Days) != 2 || w.Days[0] != time.Monday || w.Days[1] != time.Wednesday {
		t.Fatalf("unexpected days: %v", w.Days)
	}
	if w.Until == nil || !w.Until.Equal(until) {
		t.Fatalf("unexpected until: %v", w.Until)
	}
}

func TestPatternUnknownTypeDegradesToNone(t *testing.T) {
	var p Pattern
	if err := json.Unmarshal([]byte(`{"type":"fortnightly-ish"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := p.Rule.(None); !ok {
		t.Fatalf("expected None for an unknown type, got %T", p.Rule)
	}
}

func TestPatternDecodesInterval(t *testing.T) {
	var p Pattern
	if err := json.Unmarshal([]byte(`{"type":"custom","interval":3}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	r, ok := p.Rule.(EveryNWeeks)
	if !ok {
		t.Fatalf("expected EveryNWeeks, got %T", p.Rule)
	}
	if r.Weeks != 3 {
		t.Fatalf("expected interval 3, got %d", r.Weeks)
	}
}

func TestParseWeekday(t *testing.T) {
	if d, ok := ParseWeekday("Monday"); !ok || d != time.Monday {
		t.Fatalf("expected Monday")
	}
	if d, ok := ParseWeekday("wed"); !ok || d != time.Wednesday {
		t.Fatalf("expected Wednesday")
	}
	if _, ok := ParseWeekday("noday"); ok {
		t.Fatalf("expected failure for unknown weekday")
	}
}
