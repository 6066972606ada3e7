package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	log, err := New(Options{File: path, Level: "debug"})
	require.NoError(t, err)
	log.Debug("piece spawned", zap.String("kind", "hero"))
	log.Info("rows cleared", zap.Int("score", 30))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "piece spawned")
	assert.Contains(t, out, `"kind": "hero"`)
	assert.Contains(t, out, "logging_test.go")
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	log, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.ErrorContains(t, err, "log level")
}
