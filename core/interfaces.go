// Package core defines the data model and pipeline interfaces for markdown2html.
// Each stage of the conversion is a small, testable interface.
package core

// Document is the ordered sequence of raw input lines, with line
// terminators already removed.
type Document []string

// Kind is the block category of a single input line.
type Kind int

const (
	Blank Kind = iota
	Heading
	UnorderedItem
	OrderedItem
	ParagraphLine
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Heading:
		return "heading"
	case UnorderedItem:
		return "unordered-item"
	case OrderedItem:
		return "ordered-item"
	case ParagraphLine:
		return "paragraph-line"
	default:
		return "unknown"
	}
}

// Intermediate markers recorded by the classifier and rewritten by the grouper.
const (
	UnorderedMarker = "uli"
	OrderedMarker   = "oli"
	ParagraphMarker = "pe"
)

// Fragment is one converted line. Item and paragraph fragments are still
// wrapped in their intermediate marker; headings carry their final tag.
type Fragment struct {
	Kind Kind
	HTML string
}

// Reader loads a Markdown document from disk.
type Reader interface {
	Read(path string) (Document, error)
}

// Formatter applies inline formatting rules to a piece of text.
type Formatter interface {
	Format(text string) string
}

// Classifier decides the block kind of one raw line and renders it.
type Classifier interface {
	Classify(line string) Fragment
}

// DocumentClassifier classifies a whole document, line by line.
type DocumentClassifier interface {
	ClassifyDocument(doc Document) []Fragment
}

// Grouper rewrites the newline-joined fragment blob into final HTML.
type Grouper interface {
	Group(text string) string
}

// Converter turns a Markdown document into HTML.
type Converter interface {
	Convert(doc Document) string
}

// Writer persists the converted output.
type Writer interface {
	Write(path string, data []byte) (string, error)
}
