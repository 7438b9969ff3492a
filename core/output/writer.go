// Package output handles writing converted HTML to disk.
// The destination path is always passed in explicitly by the caller.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes converted output to disk.
type Writer struct {
	// Perm is the mode used when the file is created.
	Perm os.FileMode
}

// New creates a Writer with the default file mode.
func New() *Writer {
	return &Writer{Perm: 0644}
}

// Write stores data at path in a single write, creating or truncating the
// file. Missing parent directories are created. It returns the cleaned path.
func (w *Writer) Write(path string, data []byte) (string, error) {
	path = filepath.Clean(path)

	// Ensure parent directories exist.
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, w.Perm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
