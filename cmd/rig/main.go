// Package main is the entry point for the rig test runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/domain"
	_ "go.trai.ch/rig/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if reported(err) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// reported tells whether err was already presented to the user by the CLI or the reporter.
func reported(err error) bool {
	return errors.Is(err, domain.ErrUsage) ||
		errors.Is(err, domain.ErrBuildFailed) ||
		errors.Is(err, domain.ErrTestsFailed)
}
