package commands

import "github.com/spf13/cobra"

func (c *CLI) newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [target...]",
		Short: "Replay the build and test output of the last run",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Log(cmd.Context(), c.workspace, args)
		},
	}
}
