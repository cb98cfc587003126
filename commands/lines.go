package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/tinysh/core/vos"
)

// ErrInterrupt is returned by LineReader.Readline when the user interrupts
// the line being edited.
var ErrInterrupt = readline.ErrInterrupt

// LineReader reads input one line at a time.
type LineReader interface {
	SetPrompt(prompt string)
	// Readline displays the prompt and blocks until a line is read. The
	// returned line doesn't include the line terminator. io.EOF is returned
	// when the input is closed.
	Readline() (string, error)
	// SaveHistory makes the line available to the editor's history.
	SaveHistory(line string) error
	ResetHistory()
	Close() error
}

// TerminalOptions configures a terminal line editor.
type TerminalOptions struct {
	// HistoryFile persists history between sessions if set.
	HistoryFile string
	// HistoryLimit is the number of lines kept in HistoryFile, 0 disables
	// the file.
	HistoryLimit int
}

// NewTerminalReader creates a line editor for an interactive terminal.
func NewTerminalReader(files vos.VIO, opts TerminalOptions) (LineReader, error) {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = -1
	}

	cfg := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(files.Stdin()),
		Stdout:                 files.Stdout(),
		Stderr:                 files.Stderr(),
		HistoryFile:            opts.HistoryFile,
		HistoryLimit:           limit,
		DisableAutoSaveHistory: true,

		FuncIsTerminal: func() bool {
			return true
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}

var _ LineReader = (*readline.Instance)(nil)

// NewPlainReader creates a LineReader for non-interactive input such as a
// pipe. The prompt is written to w before each line.
func NewPlainReader(r io.Reader, w io.Writer) LineReader {
	return &plainReader{
		r: bufio.NewReader(r),
		w: w,
	}
}

type plainReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

func (p *plainReader) SetPrompt(prompt string) {
	p.prompt = prompt
}

func (p *plainReader) Readline() (string, error) {
	if _, err := io.WriteString(p.w, p.prompt); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		// Final line without a terminator.
	case err != nil:
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) SaveHistory(string) error {
	return nil
}

func (p *plainReader) ResetHistory() {}

func (p *plainReader) Close() error {
	return nil
}
