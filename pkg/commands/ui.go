package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/runner/ui"
	"tableflip.dev/gridcal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive month view",
		Example: `
gridcal ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := ui.UI{
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
