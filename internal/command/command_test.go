package command

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points the runner at an arbitrary executable so tests can stand
// in for the lttng client with a shell.
type testEnv struct {
	clientPath string
	home       string
}

func (e testEnv) ClientPath() string { return e.clientPath }
func (e testEnv) Home() string       { return e.home }

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

func TestRunSuccess(t *testing.T) {
	logger, buf := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: t.TempDir()}, logger)

	err := r.Run(context.Background(), "-c true")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "lttng -c true")
}

func TestRunHomeOverride(t *testing.T) {
	home := t.TempDir()
	logger, _ := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: home}, logger)

	// The child must see LTTNG_HOME pointing at the configured directory.
	err := r.Run(context.Background(), `-c 'test "$LTTNG_HOME" = "`+home+`"'`)
	require.NoError(t, err)
}

func TestRunFailure(t *testing.T) {
	logger, buf := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: t.TempDir()}, logger)

	argLine := `-c 'echo first line; echo second line; exit 2'`
	err := r.Run(context.Background(), argLine)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, argLine, cmdErr.Args)
	assert.Contains(t, cmdErr.Output, "first line")
	assert.Contains(t, cmdErr.Output, "second line")

	// Each output line is mirrored to the logger, plus the command line.
	logged := buf.String()
	assert.Contains(t, logged, "first line")
	assert.Contains(t, logged, "second line")
	assert.Contains(t, logged, "lttng "+argLine)
}

func TestRunMergesStderr(t *testing.T) {
	logger, _ := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: t.TempDir()}, logger)

	err := r.Run(context.Background(), `-c 'echo to stderr >&2; exit 1'`)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Output, "to stderr")
}

func TestRunQuotingRespected(t *testing.T) {
	logger, _ := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: t.TempDir()}, logger)

	// The quoted argument must arrive as a single token.
	err := r.Run(context.Background(), `-c 'test "$0" = "a b"' 'a b'`)
	require.NoError(t, err)
}

func TestRunBadArgLine(t *testing.T) {
	logger, _ := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/bin/sh", home: t.TempDir()}, logger)

	err := r.Run(context.Background(), `-c 'unterminated`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "split arguments"))
}

func TestRunMissingExecutable(t *testing.T) {
	logger, _ := newTestLogger()
	r := NewRunner(testEnv{clientPath: "/nonexistent/lttng", home: t.TempDir()}, logger)

	err := r.Run(context.Background(), "version")
	require.Error(t, err)
	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr), "spawn failures are not command errors")
}
