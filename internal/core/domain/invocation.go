package domain

// Invocation describes a single external process to run.
type Invocation struct {
	// Argv holds the program followed by its arguments.
	Argv []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the inherited environment.
	Env map[string]string
}
