// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/rig/internal/core/domain"
)

// Executor defines the interface for running external processes such as the compiler and test binaries.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation, streaming its output to stdout and stderr.
	//
	// It returns the process exit code. A nonzero exit code is not an error;
	// the error is reserved for processes that could not be started or waited on,
	// in which case the exit code is -1.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (int, error)
}
