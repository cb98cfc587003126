package vos

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// StatusUnknown is reported for a process that ran but whose exit code the
// platform could not supply, e.g. one killed by a signal.
const StatusUnknown = 1

// SplitPath splits a PATH style list into its directories. Empty elements
// are dropped.
func SplitPath(list string) []string {
	var out []string
	for _, dir := range filepath.SplitList(list) {
		if dir == "" {
			continue
		}
		out = append(out, dir)
	}
	return out
}

// LookPath searches the directories in searchPath, in order, for a regular
// file named file and returns the first match.
func LookPath(vfs VFS, file string, searchPath []string) (string, error) {
	for _, dir := range searchPath {
		path := filepath.Join(dir, file)
		if IsRegular(vfs, path) {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// ProcAttr holds the attributes that will be applied to a new process.
type ProcAttr struct {
	// Dir specifies the working directory of the process.
	Dir string

	// Env specifies the environment of the process.
	// Each entry is of the form "key=value".
	Env []string

	// Files holds the process's standard streams. A nil VIO or nil stream
	// is connected to the null device.
	Files VIO
}

// Runner starts a program and blocks until it exits.
type Runner interface {
	// Run executes the program at path with the given argv (argv[0] is the
	// name the program was invoked as) and returns its exit code. A non-nil
	// error means the program could not be run at all.
	Run(ctx context.Context, path string, argv []string, attr *ProcAttr) (int, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, path string, argv []string, attr *ProcAttr) (int, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, path string, argv []string, attr *ProcAttr) (int, error) {
	return f(ctx, path, argv, attr)
}

// ExecRunner runs programs on the host OS.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, path string, argv []string, attr *ProcAttr) (int, error) {
	cmd := exec.CommandContext(ctx, path)
	if len(argv) > 0 {
		cmd.Args = argv
	}

	if attr != nil {
		cmd.Dir = attr.Dir
		cmd.Env = attr.Env
		if attr.Files != nil {
			cmd.Stdin = attr.Files.Stdin()
			cmd.Stdout = attr.Files.Stdout()
			cmd.Stderr = attr.Files.Stderr()
		}
	}

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return StatusUnknown, nil
	default:
		return StatusUnknown, err
	}
}
