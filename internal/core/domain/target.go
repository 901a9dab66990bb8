package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// Target is a named test case backed by one source file and one build artifact.
type Target struct {
	// Name identifies the target. It is the source path relative to the root, without extension.
	Name string
	// Source is the absolute path of the test source file.
	Source string
	// Binary is the absolute path of the compiled test binary.
	Binary string
	// Args are extra runtime arguments configured for this target.
	Args []string
}

// NormalizeTargetName turns a user supplied target into its canonical name.
// A leading "./" and a trailing ".<ext>" are removed so "foo.odin" and "foo" name the same target.
func NormalizeTargetName(name, ext string) string {
	name = strings.TrimPrefix(path.Clean(strings.ReplaceAll(name, "\\", "/")), "./")
	if ext != "" {
		name = strings.TrimSuffix(name, "."+ext)
	}
	return name
}

// ValidateTargetName reports whether name can safely be mapped to a source and binary path.
func ValidateTargetName(name string) error {
	invalid := func(reason string) error {
		return zerr.With(zerr.Wrap(ErrInvalidTargetName, reason), "target", name)
	}

	switch {
	case name == "" || name == ".":
		return invalid("empty name")
	case path.IsAbs(name):
		return invalid("absolute path")
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return invalid("escapes the test root")
		}
	}
	return nil
}
