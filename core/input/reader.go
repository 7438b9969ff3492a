// Package input implements the Reader interface.
// It loads a Markdown file fully into memory as a Document, one entry per
// line with the line terminator removed.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gaurav-prasanna/markdown2html/core"
)

// FileReader reads Markdown documents from the local filesystem.
type FileReader struct{}

// New creates a FileReader.
func New() *FileReader {
	return &FileReader{}
}

// Exists reports whether path can be stat'ed. Any failure counts as missing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read opens path and parses its lines. The file is closed before Read returns.
func (r *FileReader) Read(path string) (core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads everything from r and splits it into lines.
func Parse(r io.Reader) (core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Split(string(data)), nil
}

// Split breaks text into lines. Both "\n" and "\r\n" terminate a line; a
// final line without terminator is kept, and a trailing terminator does not
// produce an extra empty line. Lines have no length limit.
func Split(text string) core.Document {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return core.Document(lines)
}
