// Package fs provides file system adapters for discovering, inspecting and hashing files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
)

var errSkipFile = errors.New("skip file")

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root in lexical order, skipping .git, .jj and ignored entries.
// Ignores are glob patterns matched against entry names. Directories listed in excludes are
// skipped by path. The yielded paths include root as a prefix.
func (w *Walker) WalkFiles(root string, ignores []string, excludes ...string) iter.Seq[string] {
	cleaned := make([]string, 0, len(excludes))
	for _, ex := range excludes {
		if ex != "" {
			cleaned = append(cleaned, filepath.Clean(ex))
		}
	}

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable entries do not abort the walk.
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if path != root {
				if d.IsDir() && slices.Contains(cleaned, filepath.Clean(path)) {
					return filepath.SkipDir
				}
				if skipAction := w.shouldSkip(d, ignores); skipAction != nil {
					if errors.Is(skipAction, errSkipFile) {
						return nil
					}
					return skipAction
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip checks if an entry should be skipped based on ignore patterns.
// Returns filepath.SkipDir for directories, errSkipFile for files, or nil to continue.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}

	return nil
}
