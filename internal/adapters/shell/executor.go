// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation and streams its output to stdout and stderr.
// The environment is os.Environ() overridden by inv.Env.
//
// A process that ran to completion yields its exit code and a nil error, whatever the code.
// A process that could not be started, or was cancelled, yields -1 and an error.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (int, error) {
	if len(inv.Argv) == 0 {
		return -1, zerr.New("empty command")
	}

	name := inv.Argv[0]
	args := inv.Argv[1:]

	cmdEnv := resolveEnvironment(os.Environ(), inv.Env)

	// Resolve bare names against the PATH of the new environment.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command

	// exec.CommandContext sets Args[0] to the executable path.
	// Restore the name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	cmd.Env = cmdEnv
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if e.logger != nil {
		e.logger.Debug("exec: " + strings.Join(inv.Argv, " "))
	}

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, zerr.With(zerr.Wrap(ctxErr, "command cancelled"), "command", name)
	}
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Terminated by a signal reports -1; treat it as a failing exit.
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}

	return -1, zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
}

// resolveEnvironment merges environment variables, later sources taking precedence.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
