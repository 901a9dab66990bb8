package commands

import "github.com/spf13/cobra"

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [target...]",
		Short: "Show which tests would be rebuilt and their last results",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Status(cmd.Context(), c.workspace, args)
		},
	}
}
