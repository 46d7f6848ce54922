package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/runner/move"
	"tableflip.dev/gridcal/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}
	oo := &options.OutputOptions{}
	to := ""

	cmd := &cobra.Command{
		Use:   "move ID --to DATE",
		Short: "Move an event (and its whole recurrence pattern) to another day",
		Long: "Move shifts an event's anchor date to the target day, keeping its\n" +
			"times and recurrence rule. For a recurring event the entire pattern\n" +
			"moves with the anchor; there is no way to detach a single occurrence.",
		Example: `
gridcal move 5f2c… --to 2024-06-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one event id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := options.ParseDay(to)
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          args[0],
				To:          day,
				Force:       fo.Force,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&to, "to", "", `Target date, example: --to="2024-06-05".`)
	_ = cmd.MarkFlagRequired("to")
	options.AddForceArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
