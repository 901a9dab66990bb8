// Package commands implements the CLI commands for the rig test runner.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
)

// CLI represents the command line interface for rig.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	workspace app.Workspace
	force     bool
	buildOnly bool
	// helped is set once usage was printed, so Execute can report it as a usage exit.
	helped bool
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "rig [target...]",
		Short: "Rebuild stale test binaries and run them",
		Long: "rig compiles every test whose binary is older than its source or its\n" +
			"library and utility trees, then runs the binaries and reports failures.\n" +
			"Without targets every test in the test directory is used.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runTargets,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(build.Info() + "\n")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVar(&c.workspace.ConfigPath, "config", "",
		"Path to the configuration file (default: <dir>/"+domain.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&c.workspace.Dir, "dir", "", "Test directory (default: current directory)")
	c.addRunFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		c.helped = true
		helpFunc(cmd, args)
	})
	rootCmd.SetFlagErrorFunc(usageError)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newLogCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Printing usage, whether requested or caused by bad flags, yields domain.ErrUsage.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		return err
	}
	if c.helped {
		return domain.ErrUsage
	}
	return nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&c.force, "force", "f", false, "Rebuild every target, even when its binary is up to date")
	cmd.Flags().BoolVarP(&c.buildOnly, "build-only", "c", false, "Build the targets without running them")
}

func (c *CLI) runTargets(cmd *cobra.Command, args []string) error {
	return c.app.Run(cmd.Context(), c.workspace, domain.RunOptions{
		Targets:   args,
		Force:     c.force,
		BuildOnly: c.buildOnly,
	})
}

// usageError prints err followed by the usage of cmd and marks it as a usage error.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln("Error: " + err.Error())
	cmd.PrintErrln(cmd.UsageString())
	return errors.Join(domain.ErrUsage, err)
}
