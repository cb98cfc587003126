package logger

// LogEntry is a single recorded event. Exactly one of the event fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.SessionEnd != nil:
		return le.SessionEnd
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	default:
		return nil
	}
}

// SessionStart is recorded when an interactive session begins.
type SessionStart struct {
	WorkingDir string   `json:"working_dir"`
	SearchPath []string `json:"search_path"`
}

func (e *SessionStart) setOn(le *LogEntry) { le.SessionStart = e }

// SessionEnd is recorded when a session terminates.
type SessionEnd struct {
	ExitStatus int `json:"exit_status"`
}

func (e *SessionEnd) setOn(le *LogEntry) { le.SessionEnd = e }

// RunCommand is recorded for each builtin or program that ran.
type RunCommand struct {
	Command []string `json:"command"`
	Builtin bool     `json:"builtin,omitempty"`
	// ResolvedCommandPath is the path of the program, empty for builtins.
	ResolvedCommandPath string `json:"resolved_command_path,omitempty"`
	ExitStatus          int    `json:"exit_status"`
	// ErrorMessage is set if the program couldn't be started.
	ErrorMessage string `json:"error_message,omitempty"`
}

func (e *RunCommand) setOn(le *LogEntry) { le.RunCommand = e }

// UnknownCommand is recorded when a command isn't a builtin and isn't on the
// search path.
type UnknownCommand struct {
	Command []string `json:"command"`
}

func (e *UnknownCommand) setOn(le *LogEntry) { le.UnknownCommand = e }

// InvalidInvocation is recorded when a builtin is called with bad arguments.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

func (e *InvalidInvocation) setOn(le *LogEntry) { le.InvalidInvocation = e }
