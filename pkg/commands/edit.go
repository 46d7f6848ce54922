package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/runner/edit"
	"tableflip.dev/gridcal/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	ro := &options.RecurrenceOptions{}
	fo := &options.ForceOptions{}
	oo := &options.OutputOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace an event's fields",
		Long: "Edit rebuilds the stored record with the provided flags and replaces\n" +
			"it wholesale. Flags that are not set keep their stored value; the id\n" +
			"never changes.",
		Example: `
gridcal edit 5f2c… --title "Standup (moved)" --from 09:30 --to 09:45
gridcal edit 5f2c… --repeat weekly --days monday,friday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one event id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := edit.Edit{
				ID:    args[0],
				Force: fo.Force,
			}

			if cmd.Flags().Changed("title") {
				t := strings.TrimSpace(title)
				s.Title = &t
			}
			if cmd.Flags().Changed("on") {
				on, err := eo.GetOn()
				if err != nil {
					return err
				}
				s.On = on
			}
			if cmd.Flags().Changed("from") {
				s.From = &eo.From
			}
			if cmd.Flags().Changed("to") {
				s.To = &eo.To
			}
			if cmd.Flags().Changed("color") {
				c, err := eo.GetColor()
				if err != nil {
					return err
				}
				s.Color = &c
			}
			if cmd.Flags().Changed("description") {
				s.Description = &eo.Description
			}
			if ro.Set() {
				pattern, err := ro.GetPattern()
				if err != nil {
					return err
				}
				s.Recurrence = &pattern
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s.Persistence = p
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Replace the event title.")
	options.AddEventArgs(cmd, eo)
	options.AddRecurrenceArgs(cmd, ro)
	options.AddForceArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
