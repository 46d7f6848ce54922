package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/recurrence"
)

// RecurrenceOptions captures the repetition flags.
type RecurrenceOptions struct {
	Repeat   string
	Days     []string
	Interval int
	Until    string
}

func AddRecurrenceArgs(cmd *cobra.Command, o *RecurrenceOptions) {
	cmd.Flags().StringVar(&o.Repeat, "repeat", "",
		"Repeat the event: daily, weekly, monthly, or custom.")
	cmd.Flags().StringSliceVar(&o.Days, "days", nil,
		`Weekdays for --repeat=weekly, example: --days=monday,wednesday.`)
	cmd.Flags().IntVar(&o.Interval, "interval", 0,
		"Whole-week interval for --repeat=custom, example: --interval=2.")
	cmd.Flags().StringVar(&o.Until, "until", "",
		`Last day occurrences are generated for, example: --until="2024-12-31".`)
}

// GetPattern builds the recurrence rule the flags describe. Flag combinations
// the rule cannot carry are rejected here, before any event is constructed.
func (o *RecurrenceOptions) GetPattern() (recurrence.Pattern, error) {
	until, err := o.getUntil()
	if err != nil {
		return recurrence.Pattern{}, err
	}

	switch strings.ToLower(strings.TrimSpace(o.Repeat)) {
	case "", string(recurrence.TypeNone):
		return recurrence.Pattern{Rule: recurrence.None{}}, nil
	case string(recurrence.TypeDaily):
		return recurrence.Pattern{Rule: recurrence.Daily{Until: until}}, nil
	case string(recurrence.TypeWeekly):
		days := make([]time.Weekday, 0, len(o.Days))
		for _, name := range o.Days {
			d, ok := recurrence.ParseWeekday(name)
			if !ok {
				return recurrence.Pattern{}, fmt.Errorf("unknown weekday %q", name)
			}
			days = append(days, d)
		}
		return recurrence.Pattern{Rule: recurrence.Weekly{Days: days, Until: until}}, nil
	case string(recurrence.TypeMonthly):
		return recurrence.Pattern{Rule: recurrence.Monthly{Until: until}}, nil
	case string(recurrence.TypeCustom):
		return recurrence.Pattern{Rule: recurrence.EveryNWeeks{Weeks: o.Interval, Until: until}}, nil
	}
	return recurrence.Pattern{}, fmt.Errorf("unknown repeat kind %q", o.Repeat)
}

// Set reports whether any recurrence flag was provided.
func (o *RecurrenceOptions) Set() bool {
	return o.Repeat != "" || len(o.Days) > 0 || o.Interval != 0 || o.Until != ""
}

func (o *RecurrenceOptions) getUntil() (*time.Time, error) {
	if o.Until == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", o.Until, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --until date %q: %w", o.Until, err)
	}
	return &t, nil
}
