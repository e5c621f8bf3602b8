package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Dir is the project-local directory holding the config file.
const Dir = ".stubgen"

// Config represents the flat stubgen configuration.
type Config struct {
	Version    string `json:"version"`
	OutputDir  string `json:"output_dir"`            // root of generated output
	Package    string `json:"package"`               // generated Go package name
	ModelsDir  string `json:"models_dir"`            // relative to OutputDir
	DocsDir    string `json:"docs_dir"`              // relative to OutputDir
	SchemaPath string `json:"schema_path,omitempty"` // empty means the embedded schema
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		OutputDir: ".",
		Package:   "models",
		ModelsDir: "models",
		DocsDir:   "docs",
	}
}

// Path returns the config file location for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, Dir, "config.json")
}

// LoadConfig reads .stubgen/config.json from the specified directory.
// Keys missing from the file keep their default values.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config of dir, falling back to Default when the
// file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, Dir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", Dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
