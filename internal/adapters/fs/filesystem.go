package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the host file system.
type FileSystem struct {
	walker *Walker
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(walker *Walker) *FileSystem {
	return &FileSystem{walker: walker}
}

// Stat reports whether path exists as a regular file and, if so, its modification time and size.
func (f *FileSystem) Stat(path string) (domain.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.FileInfo{}, nil
		}
		return domain.FileInfo{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if info.IsDir() {
		return domain.FileInfo{}, nil
	}
	return domain.FileInfo{Exists: true, ModTime: info.ModTime(), Size: info.Size()}, nil
}

// LatestModTime returns the newest modification time of the files under root whose name ends
// in ".<ext>", or of every file when ext is empty. A missing root yields the zero time.
func (f *FileSystem) LatestModTime(root, ext string) (time.Time, error) {
	if root == "" {
		return time.Time{}, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return time.Time{}, nil
		}
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat dependency"), "path", root)
	}
	if !info.IsDir() {
		return info.ModTime(), nil
	}

	var latest time.Time
	for path := range f.walker.WalkFiles(root, nil) {
		if ext != "" && !strings.HasSuffix(path, "."+ext) {
			continue
		}
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		if fi.ModTime().After(latest) {
			latest = fi.ModTime()
		}
	}
	return latest, nil
}

// EnsureDir creates path and any missing parents. It succeeds if the directory already exists.
func (f *FileSystem) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// RemoveAll deletes path and everything below it. A missing path is not an error.
func (f *FileSystem) RemoveAll(path string) error {
	if err := os.RemoveAll(filepath.Clean(path)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}
