package site

import (
	"fmt"
	"os"
	"path/filepath"

	"costsite/pkg/services"
)

// Writer writes build artifacts under an output directory.
type Writer struct {
	OutputDir string
}

// NewWriter creates the output directory if needed.
func NewWriter(outputDir string) (*Writer, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory is not set")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data at rel, a slash-separated path inside the output dir.
func (w *Writer) Write(rel string, data []byte) error {
	fullPath := services.SafeJoin(w.OutputDir, "", filepath.FromSlash(rel))
	if fullPath == "" {
		return fmt.Errorf("invalid output path %q", rel)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
