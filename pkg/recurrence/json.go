package recurrence

import (
	"encoding/json"
	"strings"
	"time"
)

// Pattern carries a Rule across JSON boundaries. The zero value behaves as a
// single-occurrence rule, so events persisted without a recurrence block load
// correctly.
type Pattern struct {
	Rule Rule
}

// Get returns the wrapped rule, defaulting a zero Pattern to None.
func (p Pattern) Get() Rule {
	if p.Rule == nil {
		return None{}
	}
	return p.Rule
}

// OccursOn reports whether an event anchored on anchor is active on day.
func (p Pattern) OccursOn(anchor, day time.Time) bool {
	return p.Get().OccursOn(anchor, day)
}

// wireRule is the flat persisted shape shared by every variant.
type wireRule struct {
	Type     string   `json:"type"`
	Days     []string `json:"days,omitempty"`
	Interval int      `json:"interval,omitempty"`
	EndDate  string   `json:"endDate,omitempty"`
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	r := p.Get()
	w := wireRule{Type: string(r.Type())}
	if end := r.End(); end != nil {
		w.EndDate = end.Format(dateLayout)
	}
	switch v := r.(type) {
	case Weekly:
		for _, d := range v.Days {
			w.Days = append(w.Days, d.String())
		}
	case EveryNWeeks:
		w.Interval = v.Weeks
	}
	return json.Marshal(w)
}

func (p *Pattern) UnmarshalJSON(b []byte) error {
	var w wireRule
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	until := parseEndDate(w.EndDate)

	switch Type(w.Type) {
	case TypeDaily:
		p.Rule = Daily{Until: until}
	case TypeWeekly:
		days := make([]time.Weekday, 0, len(w.Days))
		for _, name := range w.Days {
			if d, ok := ParseWeekday(name); ok {
				days = append(days, d)
			}
		}
		p.Rule = Weekly{Days: days, Until: until}
	case TypeMonthly:
		p.Rule = Monthly{Until: until}
	case TypeCustom:
		p.Rule = EveryNWeeks{Weeks: w.Interval, Until: until}
	default:
		// Unknown or absent types degrade to single-occurrence semantics so
		// partially migrated data still renders.
		p.Rule = None{}
	}
	return nil
}

const dateLayout = "2006-01-02"

func parseEndDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil
		}
	}
	return &t
}

// ParseWeekday resolves a weekday name, case-insensitively. Both full names
// and three-letter prefixes are accepted.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return d, true
		}
	}
	return time.Sunday, false
}
