package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/tinysh/core/logger"
	"github.com/josephlewis42/tinysh/core/shell"
	"github.com/josephlewis42/tinysh/core/vos"
)

const DefaultPrompt = "$ "

// Shell reads lines and dispatches them to builtins or external programs.
type Shell struct {
	Session *Context
	Lines   LineReader
	Runner  vos.Runner
	// Files are handed to external programs.
	Files vos.VIO
	// Prompt is displayed before each line is read, DefaultPrompt if empty.
	Prompt string
}

// NewShell creates a shell for the session. Clearing the session's history
// also clears the line editor's.
func NewShell(session *Context, lines LineReader, runner vos.Runner, files vos.VIO) *Shell {
	if lines != nil {
		session.History.OnClear = lines.ResetHistory
	}

	return &Shell{
		Session: session,
		Lines:   lines,
		Runner:  runner,
		Files:   files,
	}
}

// Run reads and executes lines until the input is exhausted or a builtin
// terminates the shell. It returns the status the process should exit with.
// Errors reading input or writing output are fatal.
func (s *Shell) Run(ctx context.Context) (int, error) {
	s.Session.RecordEvent(&logger.SessionStart{
		WorkingDir: s.Session.WorkingDir,
		SearchPath: s.Session.SearchPath,
	})

	status, err := s.loop(ctx)

	s.Session.RecordEvent(&logger.SessionEnd{ExitStatus: status})
	return status, err
}

func (s *Shell) loop(ctx context.Context) (int, error) {
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	for {
		s.Lines.SetPrompt(prompt)
		line, err := s.Lines.Readline()

		switch {
		case err == io.EOF:
			return s.Session.LastStatus, nil

		case errors.Is(err, ErrInterrupt):
			continue // Discard the line being edited.

		case err != nil:
			return 1, fmt.Errorf("reading input: %w", err)
		}

		outcome := s.RunLine(ctx, line)
		if err := s.Session.Stdout.Err(); err != nil {
			return 1, fmt.Errorf("writing output: %w", err)
		}
		if outcome.Terminate {
			return outcome.Status, nil
		}
	}
}

// RunLine executes a single line. Blank lines are ignored and leave the last
// status unchanged.
func (s *Shell) RunLine(ctx context.Context, line string) Outcome {
	session := s.Session

	invocation, ok := shell.Parse(line)
	if !ok {
		return Continue(session.LastStatus)
	}

	line = strings.TrimSpace(line)
	session.History.Add(line)
	if s.Lines != nil {
		if err := s.Lines.SaveHistory(line); err != nil {
			session.Log.Printf("couldn't save history: %v", err)
		}
	}

	outcome := s.dispatch(ctx, line, invocation)
	if !outcome.Terminate {
		session.LastStatus = outcome.Status
	}
	return outcome
}

func (s *Shell) dispatch(ctx context.Context, line string, invocation shell.Invocation) Outcome {
	session := s.Session

	if builtin, ok := session.Registry.Lookup(invocation.Name); ok {
		outcome := builtin.Main(session, invocation.Args)
		session.RecordEvent(&logger.RunCommand{
			Command:    invocation.Argv(),
			Builtin:    true,
			ExitStatus: outcome.Status,
		})
		return outcome
	}

	path, err := vos.LookPath(session.FS, invocation.Name, session.SearchPath)
	if err != nil {
		fmt.Fprintf(session.Stdout, "%s: command not found\n", line)
		session.RecordEvent(&logger.UnknownCommand{Command: invocation.Argv()})
		return Continue(1)
	}

	status, err := s.Runner.Run(ctx, path, invocation.Argv(), &vos.ProcAttr{
		Dir:   session.WorkingDir,
		Env:   session.Environ(),
		Files: s.Files,
	})

	event := &logger.RunCommand{
		Command:             invocation.Argv(),
		ResolvedCommandPath: path,
		ExitStatus:          status,
	}
	if err != nil {
		fmt.Fprintf(session.Stdout, "%s: %v\n", invocation.Name, err)
		event.ErrorMessage = err.Error()
	}
	session.RecordEvent(event)

	return Continue(status)
}
