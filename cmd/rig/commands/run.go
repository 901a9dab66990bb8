package commands

import "github.com/spf13/cobra"

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [target...]",
		Short: "Build and run tests, also for targets named like a subcommand",
		Args:  cobra.ArbitraryArgs,
		RunE:  c.runTargets,
	}
	c.addRunFlags(cmd)
	return cmd
}
