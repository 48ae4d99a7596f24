// Package urlscan finds URL-shaped substrings in free-form chat text.
//
// Candidates start at http:// or https:// and run to the end of the
// surrounding non-whitespace text, minus trailing punctuation and closing
// brackets from prose or markup. Nothing is validated here.
package urlscan

import (
	"regexp"
	"strings"
)

// candidateRE ends on a character that is not whitespace, '<', or one of . , : ; " ' > ) | ].
var candidateRE = regexp.MustCompile(`https?://[^\s<]+[^<.,:;"'>)|\]\s]`)

// Span is the byte range of one candidate within the scanned text.
type Span struct {
	Start int
	End   int
}

// Contains reports whether text has anything that could start a URL.
func Contains(text string) bool {
	return strings.Contains(text, "http://") || strings.Contains(text, "https://")
}

// Find returns the candidate spans in order of appearance. They never overlap.
func Find(text string) []Span {
	if !Contains(text) {
		return nil
	}
	idx := candidateRE.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(idx))
	for _, m := range idx {
		spans = append(spans, Span{Start: m[0], End: m[1]})
	}
	return spans
}

// Strings returns the candidate substrings in order of appearance.
func Strings(text string) []string {
	if !Contains(text) {
		return nil
	}
	return candidateRE.FindAllString(text, -1)
}

// Replace returns text with every candidate replaced by fn(candidate).
// Bytes outside candidates are copied unchanged.
func Replace(text string, fn func(string) string) string {
	spans := Find(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString(fn(text[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}
