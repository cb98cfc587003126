package commands

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/josephlewis42/tinysh/core/logger"
	"github.com/josephlewis42/tinysh/core/vos"
	"github.com/josephlewis42/tinysh/core/vos/vostest"
)

// testFS is the filesystem shared by most tests.
var testFS = []string{
	"/home/user/",
	"/home/user/notes.txt",
	"/tmp/",
	"/usr/bin/ls",
	"/usr/bin/echo",
	"/usr/bin/false",
	"/bin/ls",
}

var testEnv = []string{
	"HOME=/home/user",
	"PATH=/usr/bin:/bin",
	"LANG=C",
}

type recordedEvents struct {
	events []logger.LogType
}

func (r *recordedEvents) Record(event logger.LogType) error {
	r.events = append(r.events, event)
	return nil
}

// newTestContext creates a session in /home/user that writes to the
// returned buffer.
func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	ctx := NewContext(
		vostest.NewFS(t, testFS...),
		vos.NewMapEnvFromEnvList(testEnv),
		"/home/user",
		out)
	return ctx, out
}

// newTestShell creates a shell reading input without a terminal.
func newTestShell(t *testing.T, input io.Reader) (*Shell, *bytes.Buffer, *vostest.FakeRunner) {
	t.Helper()

	ctx, out := newTestContext(t)
	runner := &vostest.FakeRunner{
		Programs: map[string]vostest.FakeProcess{
			"/usr/bin/false": {ExitStatus: 1},
		},
	}
	files := vos.NewVIOAdapter(&bytes.Buffer{}, out, out)

	return NewShell(ctx, NewPlainReader(input, ctx.Stdout), runner, files), out, runner
}

type scriptedLine struct {
	line string
	err  error
}

// scriptedLines is a LineReader that replays fixed results then reports EOF.
type scriptedLines struct {
	lines   []scriptedLine
	prompts []string
	saved   []string
	resets  int
}

var _ LineReader = (*scriptedLines)(nil)

func (s *scriptedLines) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func (s *scriptedLines) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	next := s.lines[0]
	s.lines = s.lines[1:]
	return next.line, next.err
}

func (s *scriptedLines) SaveHistory(line string) error {
	s.saved = append(s.saved, line)
	return nil
}

func (s *scriptedLines) ResetHistory() {
	s.resets++
}

func (s *scriptedLines) Close() error {
	return nil
}

var errBrokenPipe = errors.New("broken pipe")

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}
