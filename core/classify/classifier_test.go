package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/markdown2html/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind core.Kind
		html string
	}{
		{"blank", "", core.Blank, ""},
		{"unordered", "- item", core.UnorderedItem, "<uli>item</uli>"},
		{"unordered indented", "    - item", core.UnorderedItem, "<uli>item</uli>"},
		{"unordered too indented", "     - item", core.ParagraphLine, "<pe>     - item</pe>"},
		{"unordered empty", "- ", core.UnorderedItem, "<uli></uli>"},
		{"unordered formatted", "- **bold** ((cool))", core.UnorderedItem, "<uli><b>bold</b> ool</uli>"},
		{"unordered not reclassified", "- # title", core.UnorderedItem, "<uli># title</uli>"},
		{"ordered", "* item", core.OrderedItem, "<oli>item</oli>"},
		{"ordered indented", "  * __x__", core.OrderedItem, "<oli><em>x</em></oli>"},
		{"bold line is not an item", "**bold** text", core.ParagraphLine, "<pe><b>bold</b> text</pe>"},
		{"heading 1", "# Title", core.Heading, "<h1>Title</h1>"},
		{"heading 6", "###### Title", core.Heading, "<h6>Title</h6>"},
		{"heading 7 falls through", "####### Title", core.ParagraphLine, "<pe>####### Title</pe>"},
		{"heading needs space", "#Title", core.ParagraphLine, "<pe>#Title</pe>"},
		{"heading not formatted", "## **raw**", core.Heading, "<h2>**raw**</h2>"},
		{"paragraph", "Hello world", core.ParagraphLine, "<pe>Hello world</pe>"},
		{"paragraph trimmed", "Hello   \t", core.ParagraphLine, "<pe>Hello</pe>"},
		{"whitespace only", "   ", core.ParagraphLine, "<pe></pe>"},
		{"dash without space", "-item", core.ParagraphLine, "<pe>-item</pe>"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.line)
			assert.Equal(t, tt.kind, got.Kind, "kind for %q", tt.line)
			assert.Equal(t, tt.html, got.HTML)
		})
	}
}

type upperFormatter struct{}

func (upperFormatter) Format(text string) string { return strings.ToUpper(text) }

func TestClassifyUsesFormatter(t *testing.T) {
	c := NewWithFormatter(upperFormatter{})

	assert.Equal(t, "<uli>ABC</uli>", c.Classify("- abc").HTML)
	assert.Equal(t, "<pe>ABC</pe>", c.Classify("abc").HTML)
	assert.Equal(t, "<h1>abc</h1>", c.Classify("# abc").HTML)
}

func TestClassifyDocumentAndJoin(t *testing.T) {
	doc := core.Document{"# T", "- a", "", "text"}

	fragments := New().ClassifyDocument(doc)
	require.Len(t, fragments, 4)

	kinds := make([]core.Kind, len(fragments))
	for i, f := range fragments {
		kinds[i] = f.Kind
	}
	assert.Equal(t, []core.Kind{core.Heading, core.UnorderedItem, core.Blank, core.ParagraphLine}, kinds)
	assert.Equal(t, "<h1>T</h1>\n<uli>a</uli>\n\n<pe>text</pe>\n", Join(fragments))
}

func TestJoinEmpty(t *testing.T) {
	assert.Equal(t, "", Join(nil))
}
