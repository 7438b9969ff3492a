// Package inline implements the Formatter interface.
// It rewrites the inline directives found inside list items and paragraph
// lines: bold, emphasis, MD5 hashing and c/C stripping.
package inline

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	boldRegex     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emphasisRegex = regexp.MustCompile(`__(.*?)__`)
	hashRegex     = regexp.MustCompile(`\[\[(.*?)\]\]`)
	stripRegex    = regexp.MustCompile(`\(\((.*?)\)\)`)

	cStripper = strings.NewReplacer("c", "", "C", "")
)

// Formatter applies the inline rules in a fixed order.
type Formatter struct{}

// New creates a Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format implements core.Formatter.
func (f *Formatter) Format(text string) string {
	return Format(text)
}

// Format rewrites every inline directive in text. Each rule is a single
// left-to-right pass over non-overlapping, non-greedy matches; unmatched
// delimiters are left as they are.
func Format(text string) string {
	text = boldRegex.ReplaceAllString(text, "<b>${1}</b>")
	text = emphasisRegex.ReplaceAllString(text, "<em>${1}</em>")
	text = replaceGroup(hashRegex, text, Hash)
	text = replaceGroup(stripRegex, text, Strip)
	return text
}

// Hash returns the lowercase hex MD5 digest of s.
func Hash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Strip removes every 'c' and 'C' from s.
func Strip(s string) string {
	return cStripper.Replace(s)
}

// replaceGroup replaces each match of re with fn applied to its first
// capture group.
func replaceGroup(re *regexp.Regexp, text string, fn func(string) string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return fn(re.FindStringSubmatch(match)[1])
	})
}
