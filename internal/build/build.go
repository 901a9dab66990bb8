// Package build holds values stamped in at link time.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the source revision the binary was built from. Empty for local builds.
var Commit = ""

// Info returns the version line printed by the version command.
func Info() string {
	if Commit == "" {
		return "rig version " + Version
	}
	commit := Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return "rig version " + Version + " (" + commit + ")"
}
