package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(Config{Level: "debug", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.WithComponent("generator").With("entity", "User").Debugw("rendered", "bytes", 42)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"generator"`)
	assert.Contains(t, string(data), `"entity":"User"`)
	assert.Contains(t, string(data), `"msg":"rendered"`)
}

func TestNewLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(Config{Level: "warn", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Infow("hidden")
	log.Warnw("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(Config{Level: "chatty", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debugw("hidden")
	log.Infow("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().WithComponent("x").Infow("discarded")
	})
}
