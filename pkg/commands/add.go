package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/runner/add"
	"tableflip.dev/gridcal/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	ro := &options.RecurrenceOptions{}
	fo := &options.ForceOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add an event to the calendar",
		Example: `
gridcal add "Standup" --on 2024-06-03 --from 09:00 --to 09:15 --repeat weekly --days monday,wednesday
gridcal add "Dentist" --on 6/14 --from 14:00 --to 15:00 --color red
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := eo.GetOn()
			if err != nil {
				return err
			}
			if on == nil {
				now := time.Now()
				on = &now
			}

			ev := event.New(strings.Join(args, " "), *on, eo.From, eo.To)
			ev.Description = eo.Description

			if ev.Color, err = eo.GetColor(); err != nil {
				return err
			}
			if ev.Recurrence, err = ro.GetPattern(); err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Event:       ev,
				Force:       fo.Force,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddRecurrenceArgs(cmd, ro)
	options.AddForceArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
