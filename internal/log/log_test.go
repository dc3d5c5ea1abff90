package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStderrLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Stderr: &buf}))

	Debug("hidden")
	Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestInitVerbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Verbose: true, Stderr: &buf}))

	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Verbose: true, JSONFormat: true, Stderr: &buf}))

	Info("structured", "key", "value")

	var record map[string]any
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "structured", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestInitDebugDir(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Stderr: &buf, DebugDir: dir}))
	defer Close()

	Debug("file only")

	today := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, today+".jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
	// Debug records stay out of stderr when not verbose.
	assert.NotContains(t, buf.String(), "file only")
}

func TestCleanup(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "2001-01-01.jsonl")
	fresh := filepath.Join(dir, time.Now().Format("2006-01-02")+".jsonl")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	Cleanup(dir, 7)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other, "non-log files are never removed")
}
