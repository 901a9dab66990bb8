package config

// Rigfile represents the structure of the rig.yaml configuration file.
type Rigfile struct {
	Version      string          `yaml:"version"`
	Tests        TestsDTO        `yaml:"tests"`
	Dependencies DependenciesDTO `yaml:"dependencies"`
	Compiler     CompilerDTO     `yaml:"compiler"`
	Runner       RunnerDTO       `yaml:"runner"`
	Ledger       string          `yaml:"ledger"`
}

// TestsDTO describes where test sources live and where binaries go.
type TestsDTO struct {
	Extension string `yaml:"extension"`
	Recursive *bool  `yaml:"recursive"`
	Bin       string `yaml:"bin"`
}

// DependenciesDTO lists the trees whose changes force a rebuild.
type DependenciesDTO struct {
	Library     *string  `yaml:"library"`
	Utility     *string  `yaml:"utility"`
	ExtraInputs []string `yaml:"extra_inputs"`
}

// CompilerDTO describes the compiler invocation.
type CompilerDTO struct {
	Command  []string  `yaml:"command"`
	Flags    *[]string `yaml:"flags"`
	Platform string    `yaml:"platform"`
}

// RunnerDTO describes how test binaries are run.
type RunnerDTO struct {
	Flags        *[]string           `yaml:"flags"`
	Verbose      bool                `yaml:"verbose"`
	VerboseFlags *[]string           `yaml:"verbose_flags"`
	Args         map[string][]string `yaml:"args"`
	Env          map[string]string   `yaml:"env"`
}
