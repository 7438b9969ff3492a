// Package cmd implements the markdown2html command line using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markdown2html <input-path> <output-path>",
		Short: "markdown2html — convert a Markdown file into HTML",
		Long: `markdown2html reads a Markdown file line by line and writes the
equivalent HTML file. Supported syntax: headings (# to ######),
unordered (-) and ordered (*) list items, paragraphs, **bold**,
__emphasis__, [[md5 hash]] and ((text without c)).
The command takes no flags.

Usage:
  markdown2html README.md README.html`,
		Args:          usageArgs,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Paths are taken verbatim, even when they start with '-'.
		DisableFlagParsing: true,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
