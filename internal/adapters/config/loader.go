// Package config provides the configuration loader for rig.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only rig.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the rig.yaml at path and returns the validated configuration.
// The test root is the directory containing the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no configuration file"), "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", abs)
	}

	cfg, err := Parse(data, filepath.Dir(abs))
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded configuration from " + abs)
	}
	return cfg, nil
}

// Parse decodes a rig.yaml document and merges it over the defaults for root.
func Parse(data []byte, root string) (*domain.Config, error) {
	var rigfile Rigfile
	if err := yaml.Unmarshal(data, &rigfile); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "failed to parse config file")
	}

	if rigfile.Version != "" && rigfile.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported config version"), "version", rigfile.Version)
	}

	cfg := apply(domain.DefaultConfig(root), &rigfile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func apply(cfg *domain.Config, f *Rigfile) *domain.Config {
	if f.Tests.Extension != "" {
		cfg.Extension = f.Tests.Extension
	}
	if f.Tests.Recursive != nil {
		cfg.Recursive = *f.Tests.Recursive
	}
	if f.Tests.Bin != "" {
		cfg.BinDir = filepath.Clean(f.Tests.Bin)
	}

	if f.Dependencies.Library != nil {
		cfg.LibraryDir = *f.Dependencies.Library
	}
	if f.Dependencies.Utility != nil {
		cfg.UtilityDir = *f.Dependencies.Utility
	}
	cfg.ExtraInputs = canonicalizeStrings(f.Dependencies.ExtraInputs)

	if len(f.Compiler.Command) > 0 {
		cfg.Compiler.Command = slices.Clone(f.Compiler.Command)
	}
	if f.Compiler.Flags != nil {
		cfg.Compiler.Flags = slices.Clone(*f.Compiler.Flags)
	}
	if f.Compiler.Platform != "" {
		cfg.Compiler.Platform = f.Compiler.Platform
	}

	if f.Runner.Flags != nil {
		cfg.Runner.Flags = slices.Clone(*f.Runner.Flags)
	}
	cfg.Runner.Verbose = f.Runner.Verbose
	if f.Runner.VerboseFlags != nil {
		cfg.Runner.VerboseFlags = slices.Clone(*f.Runner.VerboseFlags)
	}
	if len(f.Runner.Args) > 0 {
		cfg.Runner.Args = make(map[string][]string, len(f.Runner.Args))
		for name, args := range f.Runner.Args {
			cfg.Runner.Args[domain.NormalizeTargetName(name, cfg.Extension)] = slices.Clone(args)
		}
	}
	if len(f.Runner.Env) > 0 {
		cfg.Runner.Env = maps.Clone(f.Runner.Env)
	}

	if f.Ledger != "" {
		cfg.LedgerPath = f.Ledger
	}
	return cfg
}

// canonicalizeStrings sorts and deduplicates a path list.
func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, 0, len(strs))
	for _, s := range strs {
		if s != "" {
			sorted = append(sorted, filepath.Clean(s))
		}
	}
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
