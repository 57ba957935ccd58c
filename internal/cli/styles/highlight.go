package styles

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// MatchSpan returns the byte range of the first case-insensitive occurrence
// of query in text, or ok=false. Offsets always refer to text, also when
// lower-casing changes the byte length of a rune.
func MatchSpan(text, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}

	for i := range text {
		if n := foldPrefixLen(text[i:], query); n >= 0 {
			return i, i + n, true
		}
	}
	return 0, 0, false
}

// foldPrefixLen returns the byte length of the prefix of s that equals
// prefix under case folding, or -1.
func foldPrefixLen(s, prefix string) int {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return -1
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !strings.EqualFold(string(sr), string(pr)) {
			return -1
		}
		n += size
	}
	return n
}

// HighlightMatch renders text with base and its first case-insensitive
// match of query with match. Styles should not carry padding since each
// segment is rendered separately.
func HighlightMatch(text, query string, base, match lipgloss.Style) string {
	start, end, ok := MatchSpan(text, query)
	if !ok {
		return base.Render(text)
	}
	return base.Render(text[:start]) + match.Render(text[start:end]) + base.Render(text[end:])
}
