package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gridcal",
		Short: base.Wrap80("A month-grid calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCal(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
