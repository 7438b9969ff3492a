// Package classify implements the Classifier interface.
// It decides the block kind of every raw Markdown line and renders it
// into an HTML fragment, wrapping items and paragraph lines in an
// intermediate marker for the grouping stage.
package classify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/markdown2html/core"
	"github.com/gaurav-prasanna/markdown2html/core/inline"
)

var (
	unorderedRegex = regexp.MustCompile(`^\s{0,4}-\s(.*)`)
	orderedRegex   = regexp.MustCompile(`^\s{0,4}\*\s(.*)`)
	headingRegex   = regexp.MustCompile(`^(#{1,6}) (.*)`)
)

// LineClassifier classifies lines and formats their inline content.
type LineClassifier struct {
	formatter core.Formatter
}

// New creates a LineClassifier using the default inline formatter.
func New() *LineClassifier {
	return &LineClassifier{formatter: inline.New()}
}

// NewWithFormatter creates a LineClassifier with a custom inline formatter.
func NewWithFormatter(f core.Formatter) *LineClassifier {
	return &LineClassifier{formatter: f}
}

// Classify renders one raw line (without its terminator) as a Fragment.
// Rules are tried in order: blank, unordered item, ordered item, heading,
// and paragraph line as the fallback.
func (c *LineClassifier) Classify(line string) core.Fragment {
	if line == "" {
		return core.Fragment{Kind: core.Blank}
	}

	if m := unorderedRegex.FindStringSubmatch(line); m != nil {
		return core.Fragment{
			Kind: core.UnorderedItem,
			HTML: Wrap(core.UnorderedMarker, c.formatter.Format(m[1])),
		}
	}

	if m := orderedRegex.FindStringSubmatch(line); m != nil {
		return core.Fragment{
			Kind: core.OrderedItem,
			HTML: Wrap(core.OrderedMarker, c.formatter.Format(m[1])),
		}
	}

	// Headings are emitted with their final tag and no inline formatting.
	if m := headingRegex.FindStringSubmatch(line); m != nil {
		level := len(m[1])
		return core.Fragment{
			Kind: core.Heading,
			HTML: fmt.Sprintf("<h%d>%s</h%d>", level, m[2], level),
		}
	}

	return core.Fragment{
		Kind: core.ParagraphLine,
		HTML: Wrap(core.ParagraphMarker, c.formatter.Format(strings.TrimRightFunc(line, unicode.IsSpace))),
	}
}

// ClassifyDocument classifies every line of doc in order.
func (c *LineClassifier) ClassifyDocument(doc core.Document) []core.Fragment {
	fragments := make([]core.Fragment, 0, len(doc))
	for _, line := range doc {
		fragments = append(fragments, c.Classify(line))
	}
	return fragments
}

// Join renders fragments as the newline-terminated intermediate blob the
// grouper consumes.
func Join(fragments []core.Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.HTML)
		b.WriteByte('\n')
	}
	return b.String()
}

// Wrap encloses html in the intermediate marker tag.
func Wrap(marker, html string) string {
	return "<" + marker + ">" + html + "</" + marker + ">"
}

