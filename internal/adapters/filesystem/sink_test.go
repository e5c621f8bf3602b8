package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stubgen/internal/adapters/filesystem"
)

func TestFileSink_WriteFileCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	sink := filesystem.NewFileSink(root)
	ctx := context.Background()

	require.NoError(t, sink.WriteFile(ctx, "models/user.go", []byte("package models\n")))

	data, err := os.ReadFile(filepath.Join(root, "models", "user.go"))
	require.NoError(t, err)
	assert.Equal(t, "package models\n", string(data))
}

func TestFileSink_WriteFileOverwrites(t *testing.T) {
	root := t.TempDir()
	sink := filesystem.NewFileSink(root)
	ctx := context.Background()

	require.NoError(t, sink.WriteFile(ctx, "README.md", []byte("first")))
	require.NoError(t, sink.WriteFile(ctx, "README.md", []byte("second")))

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileSink_RejectsEscapingPaths(t *testing.T) {
	sink := filesystem.NewFileSink(t.TempDir())

	for _, p := range []string{"../outside.go", "/etc/passwd", "models/../../x.go"} {
		err := sink.WriteFile(context.Background(), p, []byte("x"))
		assert.ErrorContains(t, err, "escapes output directory", p)
	}
}

func TestFileSink_ReportsWriteFailure(t *testing.T) {
	root := t.TempDir()
	// A regular file where a directory is needed.
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs"), []byte("x"), 0644))

	sink := filesystem.NewFileSink(root)
	err := sink.WriteFile(context.Background(), "docs/mapping.md", []byte("# Mapping"))
	assert.ErrorContains(t, err, "failed to create directory for docs/mapping.md")
}

func TestFileSink_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := filesystem.NewFileSink(t.TempDir()).WriteFile(ctx, "a.go", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileSink_DefaultsToWorkingDirectory(t *testing.T) {
	assert.Equal(t, ".", filesystem.NewFileSink("").Root())
}
