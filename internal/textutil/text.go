// Package textutil provides the text normalization helpers shared by the
// husker types. Beyond ASCII whitespace it also treats the zero-width and
// line-separator characters commonly left behind by scraped markup
// (U+FEFF, U+200B, U+2028) as spaces.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	spacesRegex   = regexp.MustCompile(`[\s\x{FEFF}\x{200B}\x{2028}]+`)
	retainedChars = map[rune]bool{
		'\t': true,
		'\n': true,
		'\r': true,
		'\f': true,
	}
)

// NormalizeSpaces replaces runs of whitespace with a single space and trims
// leading and trailing whitespace.
func NormalizeSpaces(text string) string {
	return strings.TrimSpace(CollapseSpaces(text))
}

// CollapseSpaces replaces runs of whitespace with a single space but keeps
// the edges, so adjacent fragments can be joined without losing word breaks.
func CollapseSpaces(text string) string {
	return spacesRegex.ReplaceAllString(text, " ")
}

// NormalizeUnicode normalizes text to NFKC form for consistent character
// representation.
func NormalizeUnicode(text string) string {
	return norm.NFKC.String(text)
}

// StripControlChars removes Unicode control characters while retaining
// specific whitespace chars.
func StripControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if !unicode.IsControl(r) || retainedChars[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeText performs all text normalization steps in the correct order.
func NormalizeText(text string) string {
	text = StripControlChars(text)
	text = NormalizeUnicode(text)
	text = NormalizeSpaces(text)
	return text
}
