package ports

import "go.trai.ch/rig/internal/core/domain"

// BuildInfoStore defines the interface for the build ledger.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// GetBuild retrieves the last successful build of a target.
	// Returns nil, nil if not found.
	GetBuild(target string) (*domain.BuildInfo, error)

	// PutBuild stores the build info.
	PutBuild(info domain.BuildInfo) error

	// GetRun retrieves the last test run of a target.
	// Returns nil, nil if not found.
	GetRun(target string) (*domain.RunInfo, error)

	// PutRun stores the run info.
	PutRun(info domain.RunInfo) error

	// Close releases the underlying storage.
	Close() error
}

// StoreOpener opens the ledger of a test tree once its configuration is known.
type StoreOpener interface {
	// Open opens the ledger at path for reading and writing, creating it if needed.
	Open(path string) (BuildInfoStore, error)
	// OpenReadOnly opens an existing ledger without modifying it.
	OpenReadOnly(path string) (BuildInfoStore, error)
}
