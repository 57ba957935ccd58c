package entity

// WildcardKey is the key of the fallback command used when nothing else matches.
const WildcardKey = "*"

// SearchPlaceholder is the token replaced by the encoded query inside a search template.
const SearchPlaceholder = "{}"

// Command is a configured destination reachable by a short key.
type Command struct {
	// Key is typed by the user (e.g. "g", "yt"). "*" marks the fallback.
	Key string `json:"key"`
	// Name is optional; commands with a name are listed in help.
	Name string `json:"name,omitempty"`
	// URL is the absolute base URL opened on an exact key match.
	URL string `json:"url"`
	// Search is an optional template appended to the origin of URL,
	// with SearchPlaceholder substituted by the encoded query.
	Search string `json:"search,omitempty"`
	// Color is the display colour. Derived from Hues when empty.
	Color string `json:"color,omitempty"`
	// Hues are HSL hues used to derive Color and Gradient.
	Hues []float64 `json:"hues,omitempty"`
	// Gradient holds one colour per hue when more than one hue is configured.
	Gradient []string `json:"gradient,omitempty"`
}

// IsWildcard reports whether the command is the fallback command.
func (c Command) IsWildcard() bool {
	return c.Key == WildcardKey
}

// IsListed reports whether the command shows up in help listings.
func (c Command) IsListed() bool {
	return c.Name != ""
}

// HasSearch reports whether the command supports search queries.
func (c Command) HasSearch() bool {
	return c.Search != ""
}

// Script fans a single trigger key out to several command keys.
type Script struct {
	Key         string   `json:"key"`
	CommandKeys []string `json:"command_keys"`
}
