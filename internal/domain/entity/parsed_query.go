package entity

import "fmt"

// MatchKind describes how an input was resolved.
type MatchKind int

const (
	// MatchNone is the empty-input result.
	MatchNone MatchKind = iota
	// MatchDirectURL is an input that already is a URL ("example.com").
	MatchDirectURL
	// MatchExactKey is an input equal to a command or script key ("g").
	MatchExactKey
	// MatchSearch is a key followed by the search delimiter ("g'golang").
	MatchSearch
	// MatchPath is a key followed by the path delimiter ("r/r/golang").
	MatchPath
	// MatchFallback is an unmatched input searched with the wildcard command.
	MatchFallback
)

// String returns a string representation of MatchKind.
func (k MatchKind) String() string {
	switch k {
	case MatchNone:
		return "none"
	case MatchDirectURL:
		return "direct_url"
	case MatchExactKey:
		return "exact_key"
	case MatchSearch:
		return "search"
	case MatchPath:
		return "path"
	case MatchFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *MatchKind) UnmarshalText(text []byte) error {
	for kind := MatchNone; kind <= MatchFallback; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown match kind %q", text)
}

// ParsedQuery is the result of resolving raw input against the command and script tables.
// A value is built fresh for every input and never mutated afterwards.
type ParsedQuery struct {
	// Raw is the trimmed input.
	Raw string `json:"raw"`
	// Query is the working value: the search term after a search delimiter, Raw otherwise.
	Query string `json:"query"`
	// Lower is Query in lower case.
	Lower string `json:"lower"`
	// Key is the matched command or script key.
	Key string `json:"key,omitempty"`
	// Kind is how the input matched.
	Kind MatchKind `json:"kind"`
	// Split is the delimiter that separated Key from the rest, empty when none.
	Split string `json:"split,omitempty"`
	// Path is the remainder after the path delimiter for MatchPath.
	Path string `json:"path,omitempty"`
	// Redirect is the composed destination. Empty for scripts and empty input.
	Redirect string `json:"redirect,omitempty"`
	// Color is inherited from the command whose host matches Redirect.
	Color string `json:"color,omitempty"`
	// Children holds one resolution per command of a matched script.
	Children []*ParsedQuery `json:"children,omitempty"`
}

// IsEmpty reports whether the input was empty after trimming.
func (q *ParsedQuery) IsEmpty() bool {
	return q == nil || q.Raw == ""
}

// IsScript reports whether the query fans out to several destinations.
func (q *ParsedQuery) IsScript() bool {
	return q != nil && len(q.Children) > 0
}

// IsKey reports whether the input exactly matched a key.
func (q *ParsedQuery) IsKey() bool {
	return q != nil && q.Kind == MatchExactKey
}

// IsSearch reports whether the input was a key plus a search term.
func (q *ParsedQuery) IsSearch() bool {
	return q != nil && q.Kind == MatchSearch
}

// IsPath reports whether the input was a key plus a path.
func (q *ParsedQuery) IsPath() bool {
	return q != nil && q.Kind == MatchPath
}

// SearchPrefix returns "key"+"split" for search queries so suggestions
// can re-insert the command key when accepted. Empty otherwise.
func (q *ParsedQuery) SearchPrefix() string {
	if !q.IsSearch() {
		return ""
	}
	return q.Key + q.Split
}

// Redirects returns every destination of the query in order: the children's
// redirects for a script, the single redirect otherwise.
func (q *ParsedQuery) Redirects() []string {
	if q == nil {
		return nil
	}
	if len(q.Children) == 0 {
		if q.Redirect == "" {
			return nil
		}
		return []string{q.Redirect}
	}
	redirects := make([]string, 0, len(q.Children))
	for _, child := range q.Children {
		redirects = append(redirects, child.Redirects()...)
	}
	return redirects
}
