package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "brainydate.log")

	logger, closeFn, err := New(Options{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("session finished", zap.String("session_id", "abc"), zap.Int("score", 112))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "session finished", entry["msg"])
	assert.Equal(t, "abc", entry["session_id"])
	assert.EqualValues(t, 112, entry["score"])
}

func TestNew_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainydate.log")
	for i := 0; i < 2; i++ {
		logger, closeFn, err := New(Options{File: path})
		require.NoError(t, err)
		logger.Warn("run")
		require.NoError(t, closeFn())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `"msg":"run"`))
}

func TestNewWithSyncer_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithSyncer(Options{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)
	logger.Debug("llm request", zap.String("purpose", "iq-questions"))

	out := buf.String()
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "llm request")
	assert.Contains(t, out, `{"purpose": "iq-questions"}`)
}

func TestNewWithSyncer_Rejects(t *testing.T) {
	var buf bytes.Buffer
	_, err := newWithSyncer(Options{Level: "loud"}, zapcore.AddSync(&buf))
	assert.Error(t, err)
	_, err = newWithSyncer(Options{Format: "xml"}, zapcore.AddSync(&buf))
	assert.Error(t, err)
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	assert.Equal(t, "/var/state/brainydate/brainydate.log", DefaultLogPath())

	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.local/state/brainydate/brainydate.log", DefaultLogPath())
}
