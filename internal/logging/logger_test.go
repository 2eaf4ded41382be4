package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesTaggedLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, Init(Options{Dir: dir, Level: "debug", MaxSizeMB: 1, Version: "test"}))
	require.NotEmpty(t, SessionID)

	WithPrefix("catalog").Debug("loaded", "movies", 2)
	Warn("classifier down")
	Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "MovieMatch started")
	assert.Contains(t, out, "session="+SessionID)
	assert.Contains(t, out, "catalog")
	assert.Contains(t, out, "classifier down")
	assert.Contains(t, out, "MovieMatch shutting down")
}

func TestLevelFilters(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(Options{Dir: dir, Level: "warn", MaxSizeMB: 1}))
	Info("hidden line")
	Error("visible line")
	Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden line")
	assert.Contains(t, string(data), "visible line")
}

func TestInitRejectsBadLevel(t *testing.T) {
	err := Init(Options{Dir: t.TempDir(), Level: "chatty"})
	assert.Error(t, err)
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	Close()
	assert.NotPanics(t, func() {
		Info("nobody listening")
		Debug("still fine")
	})
}
