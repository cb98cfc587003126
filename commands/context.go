package commands

import (
	"io"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/josephlewis42/tinysh/core/logger"
	"github.com/josephlewis42/tinysh/core/vos"
)

// EventRecorder stores session events.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopRecorder struct{}

func (nopRecorder) Record(logger.LogType) error { return nil }

// Context is the state of a single shell session that builtins read and
// mutate.
type Context struct {
	// WorkingDir is the absolute path of the current directory, it always
	// names an existing directory.
	WorkingDir string
	// LastStatus is the exit status of the most recently completed command.
	LastStatus int
	// SearchPath is the list of directories searched for programs, derived
	// from PATH when the session starts.
	SearchPath []string
	// Home is the value of HOME when the session started.
	Home string
	// Registry holds the available builtins.
	Registry Registry

	FS  vos.VFS
	Env vos.VEnv
	// Stdout receives all command output.
	Stdout  *Output
	Events  EventRecorder
	History *History
	// Log receives application diagnostics.
	Log *log.Logger
}

// NewContext creates a session rooted at wd. The search path and home
// directory are read from env once.
func NewContext(fsys vos.VFS, env vos.VEnv, wd string, stdout io.Writer) *Context {
	var searchPath []string
	for _, dir := range vos.SplitPath(env.Getenv(vos.EnvPath)) {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		searchPath = append(searchPath, dir)
	}

	return &Context{
		WorkingDir: wd,
		SearchPath: searchPath,
		Home:       env.Getenv(vos.EnvHome),
		Registry:   AllBuiltins,
		FS:         fsys,
		Env:        env,
		Stdout:     NewOutput(stdout),
		Events:     nopRecorder{},
		History:    &History{},
		Log:        log.New(ioutil.Discard, "", 0),
	}
}

// RecordEvent stores the event, failures are logged but otherwise ignored.
func (c *Context) RecordEvent(event logger.LogType) {
	if err := c.Events.Record(event); err != nil {
		c.Log.Printf("couldn't record event: %v", err)
	}
}

// LogInvalidInvocation records a malformed call to a command.
func (c *Context) LogInvalidInvocation(argv []string, err error) {
	c.RecordEvent(&logger.InvalidInvocation{
		Command: argv,
		Error:   err.Error(),
	})
}

// Environ returns the environment handed to programs: the startup
// environment with PWD set to the working directory.
func (c *Context) Environ() []string {
	env := vos.NewMapEnvFromEnvList(c.Env.Environ())
	env.Setenv(vos.EnvPWD, c.WorkingDir)
	return env.Environ()
}

// Output is a writer that remembers the first error it encounters, after
// which all writes fail.
type Output struct {
	w   io.Writer
	err error
}

var _ io.Writer = (*Output)(nil)

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	if err != nil {
		o.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (o *Output) Err() error {
	return o.err
}

// History holds the lines entered during a session.
type History struct {
	lines []string

	// OnClear is called after the history is cleared.
	OnClear func()
}

func (h *History) Add(line string) {
	h.lines = append(h.lines, line)
}

// Lines returns the lines in the order they were entered.
func (h *History) Lines() []string {
	return h.lines
}

func (h *History) Clear() {
	h.lines = nil
	if h.OnClear != nil {
		h.OnClear()
	}
}
