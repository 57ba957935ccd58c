package url

import (
	"net/url"
	"strings"
)

// EncodeComponent percent-encodes a query fragment. Spaces become %20 so the
// result is valid inside both paths and query strings.
func EncodeComponent(s string) string {
	// QueryEscape already encodes a literal "+" as %2B, so every "+" left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildSearchURL composes the destination of a search: the origin of baseURL
// followed by template with every placeholder replaced by the encoded query.
// Only the query is encoded, the template's literal characters are kept.
//
// Examples:
//
//	("https://www.google.com", "/search?q={}", "{}", "x y") → "https://www.google.com/search?q=x%20y"
//	("https://github.com/", "", "{}", "x")                  → "https://github.com/"
func BuildSearchURL(baseURL, template, placeholder, query string) string {
	if template == "" {
		return baseURL
	}
	encoded := EncodeComponent(query)
	return Origin(baseURL) + strings.ReplaceAll(template, placeholder, encoded)
}

// BuildPathURL composes the destination of a path query: the origin of
// baseURL, a slash, then path. Any path or query already in baseURL is dropped.
func BuildPathURL(baseURL, path string) string {
	return Origin(baseURL) + "/" + path
}

// SplitOnce splits input on the first occurrence of delimiter.
// The rest is trimmed. found is false when the delimiter is absent.
//
// Examples:
//
//	("g'golang tips", "'")  → ("g", "golang tips", true)
//	("r/r/golang", "/")     → ("r", "r/golang", true)
//	("g", "'")              → ("g", "", false)
func SplitOnce(input, delimiter string) (prefix, rest string, found bool) {
	if delimiter == "" {
		return input, "", false
	}
	prefix, rest, found = strings.Cut(input, delimiter)
	if !found {
		return input, "", false
	}
	return prefix, strings.TrimSpace(rest), true
}
