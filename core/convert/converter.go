// Package convert ties the classification and grouping stages into the
// Markdown to HTML transform. It performs no I/O.
package convert

import (
	"github.com/gaurav-prasanna/markdown2html/core"
	"github.com/gaurav-prasanna/markdown2html/core/classify"
	"github.com/gaurav-prasanna/markdown2html/core/group"
	"github.com/gaurav-prasanna/markdown2html/core/input"
)

// Converter turns a Document into HTML.
type Converter struct {
	classifier core.DocumentClassifier
	grouper    core.Grouper
}

// New creates a Converter with the default classifier and grouper.
func New() *Converter {
	return &Converter{
		classifier: classify.New(),
		grouper:    group.New(),
	}
}

// NewWith creates a Converter from the given stages.
func NewWith(c core.DocumentClassifier, g core.Grouper) *Converter {
	return &Converter{classifier: c, grouper: g}
}

// Convert classifies each line, joins the fragments into the intermediate
// text and runs the grouping passes over it.
func (c *Converter) Convert(doc core.Document) string {
	return c.grouper.Group(classify.Join(c.classifier.ClassifyDocument(doc)))
}

// ConvertString converts raw Markdown text, splitting it into lines the
// same way files are read.
func (c *Converter) ConvertString(src string) string {
	return c.Convert(input.Split(src))
}
