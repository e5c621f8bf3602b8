package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:    CurrentVersion,
		OutputDir:  "gen",
		Package:    "entities",
		ModelsDir:  "entities",
		DocsDir:    "doc",
		SchemaPath: "stubgen.yaml",
	}
	require.NoError(t, SaveConfig(dir, cfg))

	_, err := os.Stat(filepath.Join(dir, ".stubgen", "config.json"))
	require.NoError(t, err)

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stubgen"), 0755))
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"package": "crm"}`), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	want := Default()
	want.Package = "crm"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "failed to read config")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stubgen"), 0755))
	require.NoError(t, os.WriteFile(Path(dir), []byte("{not json"), 0644))

	_, err = LoadConfig(dir)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
