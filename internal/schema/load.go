package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default declaration as written on disk.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// DefaultDeclaration parses the embedded default declaration.
func DefaultDeclaration() (Declaration, error) {
	return Parse(defaultYAML)
}

// Default returns the registry built from the embedded declaration.
func Default() (*Registry, error) {
	decl, err := DefaultDeclaration()
	if err != nil {
		return nil, fmt.Errorf("default schema: %w", err)
	}
	return NewRegistry(decl)
}

// Parse decodes a YAML declaration. Unknown keys are rejected.
func Parse(data []byte) (Declaration, error) {
	var decl Declaration

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil {
		if errors.Is(err, io.EOF) {
			return Declaration{}, errors.New("schema document is empty")
		}
		return Declaration{}, fmt.Errorf("failed to parse schema: %w", err)
	}
	return decl, nil
}

// LoadFile reads and validates a declaration file. An empty path selects
// the embedded default.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	decl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewRegistry(decl)
}

// Marshal encodes a declaration as YAML.
func Marshal(decl Declaration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(decl); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return buf.Bytes(), nil
}
