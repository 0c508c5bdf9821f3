package nlp

import (
	"strings"
	"unicode"
)

// Normalize lowercases the text, replaces every non-letter, non-digit rune
// with a space and collapses runs of whitespace. The result is what the
// vectorizer and the entity extractor operate on. Normalize is idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Tokenize splits a normalized string into its words. Empty input yields an
// empty slice, never nil access downstream.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
