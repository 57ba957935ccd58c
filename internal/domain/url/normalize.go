// Package url provides URL detection and composition utilities for the omnibox.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultScheme is prefixed to direct URLs typed without a scheme.
const DefaultScheme = "http://"

var (
	// directURLRegex matches an optional http(s) scheme, a host with at least
	// one dot, an optional port and an optional path.
	directURLRegex = regexp.MustCompile(`(?i)^((https?://)?[\w-]+(\.[\w-]+)+\.?(:\d+)?(/\S*)?)$`)

	schemeRegex = regexp.MustCompile(`^[a-zA-Z]+://`)
)

// LooksLikeURL reports whether the input should be opened directly instead of
// being matched against commands.
//
// Examples:
//
//	"example.com"             → true
//	"https://example.com/x"   → true
//	"localhost:8080"          → false (no dot)
//	"g'golang"                → false
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	return directURLRegex.MatchString(input)
}

// HasScheme reports whether the input starts with "<letters>://".
func HasScheme(input string) bool {
	return schemeRegex.MatchString(input)
}

// Normalize prefixes DefaultScheme when the input has no scheme.
// Returns the input unchanged if it already has one.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	return DefaultScheme + input
}

// ExtractHost returns the lower-cased hostname (without port) of a URL.
// Returns an empty string when the URL cannot be parsed or has no host.
func ExtractHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// Origin returns scheme://host[:port] of a URL, dropping path, query and fragment.
// Returns the input unchanged when it cannot be parsed as an absolute URL.
func Origin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return rawURL
	}
	return parsed.Scheme + "://" + parsed.Host
}

// HostMatches reports whether candidateHost is a suffix of host, so a
// command on "google.com" matches a destination on "mail.google.com".
func HostMatches(host, candidateHost string) bool {
	if host == "" || candidateHost == "" {
		return false
	}
	return strings.HasSuffix(host, candidateHost)
}

// IsAbsolute reports whether rawURL parses with both a scheme and a host.
func IsAbsolute(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
