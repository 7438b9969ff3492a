// Command markdown2html converts a Markdown file into an HTML file.
package main

import "github.com/gaurav-prasanna/markdown2html/cmd"

func main() {
	cmd.Execute()
}
