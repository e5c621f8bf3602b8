// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSink implements secondary.FileSink on the local filesystem.
type FileSink struct {
	root string
}

// NewFileSink creates a sink writing below root.
func NewFileSink(root string) *FileSink {
	if root == "" {
		root = "."
	}
	return &FileSink{root: root}
}

// Root returns the directory files are written below.
func (s *FileSink) Root() string {
	return s.root
}

// WriteFile writes content to path below the root, creating intermediate
// directories. Existing files are overwritten.
func (s *FileSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes output directory", path)
	}

	target := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
