// Package cmd — convert command.
// Orchestrates the pipeline: check input → read → classify → group → write.
package cmd

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/markdown2html/core"
	"github.com/gaurav-prasanna/markdown2html/core/convert"
	"github.com/gaurav-prasanna/markdown2html/core/input"
	"github.com/gaurav-prasanna/markdown2html/core/output"
	"github.com/spf13/cobra"
)

// ErrUsage is returned when fewer than two paths are given.
var ErrUsage = errors.New("Usage: ./markdown2html README.md README.html")

// MissingInputError reports an input path that does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "Missing " + e.Path
}

// usageArgs accepts two or more positional arguments; extra ones are ignored.
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	if !input.Exists(inputPath) {
		return &MissingInputError{Path: inputPath}
	}

	_, err := processFile(inputPath, outputPath, input.New(), convert.New(), output.New())
	return err
}

// processFile runs a single file through the pipeline. Nothing is written
// unless reading and conversion both succeed.
func processFile(
	inputPath string,
	outputPath string,
	reader core.Reader,
	converter core.Converter,
	writer core.Writer,
) (string, error) {
	// 1. Read
	doc, err := reader.Read(inputPath)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	// 2. Classify and group
	html := converter.Convert(doc)

	// 3. Write
	path, err := writer.Write(outputPath, []byte(html))
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return path, nil
}
