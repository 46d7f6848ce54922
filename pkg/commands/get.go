package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/runner/get"
	"tableflip.dev/gridcal/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List events, or the events active on a day",
		Example: `
gridcal get
gridcal get --on 2024-06-03
gridcal get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.GetOn()
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				On:          day,
				JSON:        oo.JSON,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
