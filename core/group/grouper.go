// Package group implements the Grouper interface.
// It wraps contiguous runs of same-marker lines in a container element
// (<ul>, <ol> or <p>) and rewrites the intermediate markers into their
// final HTML form.
package group

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/markdown2html/core"
)

// Pass is one grouping scan over the document. All three passes share the
// same Outside/Inside state machine and differ only by these fields.
// Passes are immutable once built with NewPass.
type Pass struct {
	marker    string // intermediate marker name, e.g. "uli"
	container string // container element, e.g. "ul"
	item      string // replacement element for the marker, empty to drop it
	softBreak string // appended to a marker line followed by another one
	match     *regexp.Regexp
}

// NewPass builds a Pass for the given marker and tags.
func NewPass(marker, container, item, softBreak string) *Pass {
	return &Pass{
		marker:    marker,
		container: container,
		item:      item,
		softBreak: softBreak,
		match:     regexp.MustCompile("<" + regexp.QuoteMeta(marker) + ">(.*)</" + regexp.QuoteMeta(marker) + ">"),
	}
}

var (
	unorderedPass = NewPass(core.UnorderedMarker, "ul", "li", "")
	orderedPass   = NewPass(core.OrderedMarker, "ol", "li", "")
	paragraphPass = NewPass(core.ParagraphMarker, "p", "", "<br/>")
)

// Run scans text line by line, opening the container before the first line
// of each run and closing it before the first line after the run, or after
// the last line when the document ends inside a run. Every emitted line is
// newline-terminated.
func (p *Pass) Run(text string) string {
	if p.match == nil {
		// Zero Pass: no marker to group on.
		return text
	}
	lines := splitLines(text)

	var b strings.Builder
	inside := false
	for i, line := range lines {
		result := line
		if p.isMarker(line) {
			if !inside {
				inside = true
				result = "<" + p.container + ">\n" + result
			}
			if p.softBreak != "" && i < len(lines)-1 && p.isMarker(lines[i+1]) {
				result += p.softBreak
			}
		} else if inside {
			inside = false
			result = "</" + p.container + ">\n" + result
		}

		if i == len(lines)-1 && inside {
			inside = false
			result += "\n</" + p.container + ">"
		}

		b.WriteString(result)
		b.WriteByte('\n')
	}

	return p.rewriteMarkers(b.String())
}

func (p *Pass) isMarker(line string) bool {
	return p.match.MatchString(line)
}

// rewriteMarkers replaces the intermediate marker tags with the item tag,
// or removes them when the pass has none.
func (p *Pass) rewriteMarkers(text string) string {
	open, closing := "", ""
	if p.item != "" {
		open, closing = "<"+p.item+">", "</"+p.item+">"
	}
	return strings.NewReplacer(
		"<"+p.marker+">", open,
		"</"+p.marker+">", closing,
	).Replace(text)
}

// splitLines splits text on '\n' without producing a trailing empty
// element for a final terminator. Empty text yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// GroupUnorderedLists wraps runs of unordered items in <ul> and turns them into <li>.
func GroupUnorderedLists(text string) string {
	return unorderedPass.Run(text)
}

// GroupOrderedLists wraps runs of ordered items in <ol> and turns them into <li>.
func GroupOrderedLists(text string) string {
	return orderedPass.Run(text)
}

// GroupParagraphs wraps runs of paragraph lines in <p>, separating
// consecutive lines with <br/> and dropping the markers.
func GroupParagraphs(text string) string {
	return paragraphPass.Run(text)
}

// BlockGrouper runs the three grouping passes in order.
type BlockGrouper struct {
	passes []*Pass
}

// New creates a BlockGrouper with the unordered, ordered and paragraph
// passes, in that order.
func New() *BlockGrouper {
	return &BlockGrouper{passes: []*Pass{unorderedPass, orderedPass, paragraphPass}}
}

// Group implements core.Grouper.
func (g *BlockGrouper) Group(text string) string {
	for _, p := range g.passes {
		text = p.Run(text)
	}
	return text
}
