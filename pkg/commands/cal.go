package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/runner/cal"
	"tableflip.dev/gridcal/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print the month grid",
		Example: `
gridcal cal
gridcal cal --on 2024-06-01 --months 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.GetOn()
			if err != nil {
				return err
			}
			if day == nil {
				now := time.Now()
				day = &now
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cal.Cal{
				Month:       *day,
				Span:        months,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().IntVar(&months, "months", 1, "How many consecutive months to print.")

	topLevel.AddCommand(cmd)
}
