package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TestFinder = (*Finder)(nil)

// Finder discovers test sources below the configured root.
type Finder struct {
	walker *Walker
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// FindTests returns the names of all test sources, i.e. their paths relative to the root
// with the extension removed. Without recursion only the root directory itself is listed.
func (f *Finder) FindTests(cfg *domain.Config) ([]string, error) {
	if cfg.Recursive {
		return f.findRecursive(cfg), nil
	}

	entries, err := os.ReadDir(cfg.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list test directory"), "path", cfg.Root)
	}

	suffix := "." + cfg.Extension
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
			continue
		}
		if base := strings.TrimSuffix(name, suffix); base != "" {
			names = append(names, base)
		}
	}
	return names, nil
}

func (f *Finder) findRecursive(cfg *domain.Config) []string {
	suffix := "." + cfg.Extension
	excludes := []string{cfg.BinPath(), cfg.Path(cfg.LibraryDir), cfg.Path(cfg.UtilityDir)}

	var names []string
	for path := range f.walker.WalkFiles(cfg.Root, []string{".*"}, excludes...) {
		if !strings.HasSuffix(path, suffix) {
			continue
		}
		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), suffix)
		if name != "" && !strings.HasSuffix(name, "/") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
