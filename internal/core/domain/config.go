package domain

import (
	"errors"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultConfigFile is the configuration file looked up in the test root.
	DefaultConfigFile = "rig.yaml"
	// DefaultLedgerPath is where build and run records are kept, relative to the test root.
	DefaultLedgerPath = ".rig/ledger.db"
	// JournalFile is the step journal of the last run, kept next to the ledger.
	JournalFile = "journal.jsonl"
)

// Config is the immutable description of a test tree and of how to build and run it.
// Relative paths are resolved against Root.
type Config struct {
	// Root is the absolute test directory. Test sources are discovered below it.
	Root string
	// Extension is the test source extension, without the leading dot.
	Extension string
	// Recursive enables discovery in subdirectories of Root.
	Recursive bool
	// BinDir receives the compiled test binaries.
	BinDir string

	// LibraryDir and UtilityDir are the dependency trees gating rebuilds.
	LibraryDir string
	UtilityDir string
	// ExtraInputs are additional files or trees gating rebuilds.
	ExtraInputs []string

	Compiler CompilerConfig
	Runner   RunnerConfig

	// LedgerPath is the bbolt file recording the last build and run per target.
	LedgerPath string
}

// CompilerConfig describes the external compiler invocation.
type CompilerConfig struct {
	Command  []string
	Flags    []string
	Platform string
}

// RunnerConfig describes how test binaries are executed.
type RunnerConfig struct {
	Flags        []string
	Verbose      bool
	VerboseFlags []string
	// Args maps a target name to extra arguments passed only to that target.
	Args map[string][]string
	// Env holds variables set for every test binary on top of the inherited environment.
	Env map[string]string
}

// DefaultPlatform returns the compiler platform matching the host, e.g. "linux_amd64".
func DefaultPlatform() string {
	return runtime.GOOS + "_" + runtime.GOARCH
}

// DefaultConfig returns the configuration used when no rig.yaml exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:       root,
		Extension:  "odin",
		BinDir:     "bin",
		LibraryDir: "../build_odin",
		UtilityDir: "util",
		Compiler: CompilerConfig{
			Command:  []string{"odin", "build"},
			Flags:    []string{"-vet", "-disallow-do", "-warnings-as-errors", "-debug"},
			Platform: DefaultPlatform(),
		},
		Runner: RunnerConfig{
			Flags:        []string{"--track-alloc"},
			VerboseFlags: []string{"--echo", "--verbose"},
		},
		LedgerPath: DefaultLedgerPath,
	}
}

// Validate checks the invariants the orchestrator relies on.
func (c *Config) Validate() error {
	invalid := func(field, reason string) error {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidConfig, reason), "field", field), "root", c.Root)
	}

	if !filepath.IsAbs(c.Root) {
		return invalid("root", "root must be an absolute path")
	}
	if c.Extension == "" {
		return invalid("tests.extension", "extension must not be empty")
	}
	if c.BinDir == "" {
		return invalid("tests.bin", "bin directory must not be empty")
	}
	if len(c.Compiler.Command) == 0 || c.Compiler.Command[0] == "" {
		return invalid("compiler.command", "compiler command must not be empty")
	}
	if c.Compiler.Platform == "" {
		return invalid("compiler.platform", "platform must not be empty")
	}

	for name, args := range c.Runner.Args {
		if err := ValidateTargetName(name); err != nil {
			return zerr.With(zerr.Wrap(errors.Join(ErrInvalidConfig, err), "runner.args has an invalid key"), "field", "runner.args")
		}
		if strings.TrimSpace(name) != name {
			return zerr.With(invalid("runner.args", "target name has surrounding whitespace"), "target", name)
		}
		if slices.Contains(args, "") {
			return zerr.With(invalid("runner.args", "extra arguments must not be empty"), "target", name)
		}
	}
	for key := range c.Runner.Env {
		if key == "" || strings.ContainsAny(key, "= ") {
			return zerr.With(invalid("runner.env", "variable name must be non-empty without '=' or spaces"), "variable", key)
		}
	}
	return nil
}

// Path resolves a configured path against the root.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// JournalPath returns the step journal, which lives in the ledger's directory.
func (c *Config) JournalPath() string {
	return filepath.Join(filepath.Dir(c.Path(c.LedgerPath)), JournalFile)
}

// BinPath returns the absolute bin directory.
func (c *Config) BinPath() string {
	return c.Path(c.BinDir)
}

// Target maps a canonical target name to its source, binary and extra arguments.
func (c *Config) Target(name string) Target {
	rel := filepath.FromSlash(name)
	return Target{
		Name:   name,
		Source: filepath.Join(c.Root, rel+"."+c.Extension),
		Binary: filepath.Join(c.BinPath(), rel),
		Args:   slices.Clone(c.Runner.Args[name]),
	}
}

// CompileCommand returns the compiler argv building t.
func (c *Config) CompileCommand(t Target) []string {
	argv := slices.Clone(c.Compiler.Command)
	argv = append(argv, t.Source, "-file", "-out:"+t.Binary)
	argv = append(argv, c.Compiler.Flags...)
	return append(argv, "-target:"+c.Compiler.Platform)
}

// RunCommand returns the argv executing the test binary of t.
func (c *Config) RunCommand(t Target) []string {
	argv := []string{t.Binary}
	argv = append(argv, c.Runner.Flags...)
	if c.Runner.Verbose {
		argv = append(argv, c.Runner.VerboseFlags...)
	}
	return append(argv, t.Args...)
}
