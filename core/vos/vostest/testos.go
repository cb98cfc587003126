// Package vostest contains deterministic stand-ins for the OS collaborators
// in vos.
package vostest

import (
	"context"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/josephlewis42/tinysh/core/vos"
	"github.com/spf13/afero"
)

// NewFS creates an in-memory filesystem. Entries ending in "/" are created as
// directories, everything else as an empty executable file.
func NewFS(t testing.TB, entries ...string) vos.VFS {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, entry := range entries {
		if strings.HasSuffix(entry, "/") {
			if err := fs.MkdirAll(entry, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}

		if err := fs.MkdirAll(path.Dir(entry), 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, entry, nil, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

// Invocation records a single call to FakeRunner.Run.
type Invocation struct {
	Path string
	Argv []string
	Dir  string
	Env  []string
}

// FakeProcess is the behavior of a program run by FakeRunner.
type FakeProcess struct {
	// Output is written to the process's stdout.
	Output string
	// ExitStatus is returned as the exit code.
	ExitStatus int
	// Err, if set, simulates a failure to start the process.
	Err error
}

// FakeRunner implements vos.Runner without starting real processes.
type FakeRunner struct {
	// Programs maps a resolved path to its behavior. Paths not in the map
	// echo their argv and exit 0.
	Programs map[string]FakeProcess

	Invocations []Invocation
}

var _ vos.Runner = (*FakeRunner)(nil)

// Run implements vos.Runner.
func (f *FakeRunner) Run(ctx context.Context, path string, argv []string, attr *vos.ProcAttr) (int, error) {
	inv := Invocation{
		Path: path,
		Argv: append([]string(nil), argv...),
	}
	if attr != nil {
		inv.Dir = attr.Dir
		inv.Env = append([]string(nil), attr.Env...)
	}
	f.Invocations = append(f.Invocations, inv)

	proc, ok := f.Programs[path]
	if !ok {
		proc = FakeProcess{Output: fmt.Sprintf("%s %q\n", path, argv)}
	}
	if proc.Err != nil {
		return vos.StatusUnknown, proc.Err
	}

	if attr != nil && attr.Files != nil && attr.Files.Stdout() != nil {
		if _, err := fmt.Fprint(attr.Files.Stdout(), proc.Output); err != nil {
			return vos.StatusUnknown, err
		}
	}
	return proc.ExitStatus, nil
}

// Last returns the most recent invocation or nil if there were none.
func (f *FakeRunner) Last() *Invocation {
	if len(f.Invocations) == 0 {
		return nil
	}
	return &f.Invocations[len(f.Invocations)-1]
}
