package commands

import (
	"bytes"
	"testing"

	"github.com/josephlewis42/tinysh/core/logger"
	"github.com/josephlewis42/tinysh/core/vos"
	"github.com/josephlewis42/tinysh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	env := vos.NewMapEnvFromEnvList([]string{
		"PATH=/usr/bin::bin:/bin:",
		"HOME=/home/user",
	})
	ctx := NewContext(vostest.NewFS(t), env, "/opt", &bytes.Buffer{})

	assert.Equal(t, "/opt", ctx.WorkingDir)
	assert.Equal(t, 0, ctx.LastStatus)
	assert.Equal(t, []string{"/usr/bin", "/opt/bin", "/bin"}, ctx.SearchPath)
	assert.Equal(t, "/home/user", ctx.Home)
	assert.Equal(t, AllBuiltins, ctx.Registry)
	assert.Empty(t, ctx.History.Lines())

	// Later changes to the environment don't affect the session.
	env.Setenv(vos.EnvPath, "/sbin")
	env.Setenv(vos.EnvHome, "/root")
	assert.Equal(t, []string{"/usr/bin", "/opt/bin", "/bin"}, ctx.SearchPath)
	assert.Equal(t, "/home/user", ctx.Home)
}

func TestNewContextEmptyEnv(t *testing.T) {
	ctx := NewContext(vostest.NewFS(t), vos.NewMapEnv(), "/", &bytes.Buffer{})

	assert.Empty(t, ctx.SearchPath)
	assert.Equal(t, "", ctx.Home)
}

func TestContextEnviron(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.WorkingDir = "/tmp"

	assert.Equal(t, []string{
		"HOME=/home/user",
		"LANG=C",
		"PATH=/usr/bin:/bin",
		"PWD=/tmp",
	}, ctx.Environ())

	// The startup environment is left untouched.
	_, ok := ctx.Env.LookupEnv(vos.EnvPWD)
	assert.False(t, ok)
}

func TestContextLogInvalidInvocation(t *testing.T) {
	ctx, _ := newTestContext(t)
	events := &recordedEvents{}
	ctx.Events = events

	ctx.LogInvalidInvocation([]string{"cd", "a", "b"}, errBrokenPipe)

	assert.Equal(t, []logger.LogType{
		&logger.InvalidInvocation{Command: []string{"cd", "a", "b"}, Error: "broken pipe"},
	}, events.events)
}

func TestOutput(t *testing.T) {
	t.Run("passes writes through", func(t *testing.T) {
		buf := &bytes.Buffer{}
		out := NewOutput(buf)

		n, err := out.Write([]byte("hello"))
		assert.Nil(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "hello", buf.String())
		assert.Nil(t, out.Err())
	})

	t.Run("remembers first error", func(t *testing.T) {
		out := NewOutput(failingWriter{})

		_, err := out.Write([]byte("hello"))
		assert.ErrorIs(t, err, errBrokenPipe)
		assert.ErrorIs(t, out.Err(), errBrokenPipe)

		_, err = out.Write([]byte("again"))
		assert.ErrorIs(t, err, errBrokenPipe)
	})
}
