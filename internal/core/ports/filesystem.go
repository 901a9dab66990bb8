package ports

import (
	"time"

	"go.trai.ch/rig/internal/core/domain"
)

// TestFinder discovers test targets in a test tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type TestFinder interface {
	// FindTests returns the names of every test source below cfg.Root, extension stripped,
	// in discovery order.
	FindTests(cfg *domain.Config) ([]string, error)
}

// FileSystem provides the metadata queries and directory operations the orchestrator needs.
type FileSystem interface {
	// Stat returns metadata for path. A missing file is reported with Exists set to false, not as an error.
	Stat(path string) (domain.FileInfo, error)

	// LatestModTime returns the newest modification time of the files below root whose
	// name ends in "."+ext (every file when ext is empty). A missing root yields the zero time.
	LatestModTime(root, ext string) (time.Time, error)

	// EnsureDir creates path and its parents. An existing directory is not an error.
	EnsureDir(path string) error

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error
}
