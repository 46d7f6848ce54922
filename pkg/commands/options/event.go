// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/palette"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions captures the day a command operates on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-06-03" or --on="6/3".`)
}

// EventOptions captures the flags that describe an event record.
type EventOptions struct {
	OnOptions
	From        string
	To          string
	ColorString string
	Description string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	AddOnArgs(cmd, &o.OnOptions)
	cmd.Flags().StringVar(&o.From, "from", "",
		`Start time in 24-hour form, example: --from="09:00".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`End time in 24-hour form, example: --to="10:00".`)
	cmd.Flags().StringVar(&o.ColorString, "color", "",
		"Display category: default, red, green, blue, yellow, or purple.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional free-text description.")
}

// GetOn parses the --on flag. A bare month/day gets the current year, and a
// date that already passed is assumed to mean next year.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}

// GetColor resolves the --color flag against the fixed palette.
func (o *EventOptions) GetColor() (palette.Color, error) {
	return palette.ForName(o.ColorString)
}

// IDOptions holds flags controlling id display.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show event ids in output.")
}

// ForceOptions carries the conflict override decision. Conflict detection is
// advisory; --force is the caller's explicit choice to proceed anyway.
type ForceOptions struct {
	Force bool
}

func AddForceArgs(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Save or move even if the event overlaps an existing one.")
}

// ParseDay parses a positional date argument in "2006-01-02" form.
func ParseDay(s string) (time.Time, error) {
	return event.ParseDate(s)
}
