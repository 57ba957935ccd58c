package config

import "time"

// Config represents the complete configuration for tilde.
type Config struct {
	// HelpKey toggles the command listing when it is the whole input.
	HelpKey     string              `mapstructure:"help_key" toml:"help_key" json:"help_key"`
	Query       QueryConfig         `mapstructure:"query" toml:"query" json:"query"`
	Commands    []CommandConfig     `mapstructure:"commands" toml:"commands" json:"commands" validate:"required,min=1,dive"`
	Scripts     map[string][]string `mapstructure:"scripts" toml:"scripts" json:"scripts,omitempty"`
	Suggestions SuggestionsConfig   `mapstructure:"suggestions" toml:"suggestions" json:"suggestions"`
	Appearance  AppearanceConfig    `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Remote      RemoteConfig        `mapstructure:"remote" toml:"remote" json:"remote"`
	History     HistoryConfig       `mapstructure:"history" toml:"history" json:"history"`
	Database    DatabaseConfig      `mapstructure:"database" toml:"database" json:"database"`
	Server      ServerConfig        `mapstructure:"server" toml:"server" json:"server"`
	Logging     LoggingConfig       `mapstructure:"logging" toml:"logging" json:"logging"`
}

// QueryConfig controls how input is split and submitted.
type QueryConfig struct {
	// SearchDelimiter separates a key from a search term ("g'golang").
	SearchDelimiter string `mapstructure:"search_delimiter" toml:"search_delimiter" json:"search_delimiter" validate:"required"`
	// PathDelimiter separates a key from a path ("r/r/golang").
	PathDelimiter string `mapstructure:"path_delimiter" toml:"path_delimiter" json:"path_delimiter" validate:"required"`
	// InstantRedirect submits as soon as the input equals a key.
	// Prefix the input with a space to opt out.
	InstantRedirect bool `mapstructure:"instant_redirect" toml:"instant_redirect" json:"instant_redirect"`
	// NewTab opens single destinations in a new tab. Scripts always do.
	NewTab bool `mapstructure:"new_tab" toml:"new_tab" json:"new_tab"`
}

// CommandConfig is one entry of the command table.
type CommandConfig struct {
	Key string `mapstructure:"key" toml:"key" json:"key" validate:"required"`
	// Name lists the command in help when set.
	Name string `mapstructure:"name" toml:"name,omitempty" json:"name,omitempty"`
	URL  string `mapstructure:"url" toml:"url" json:"url" validate:"required"`
	// Search is appended to the origin of URL; {} is replaced by the query.
	Search string `mapstructure:"search" toml:"search,omitempty" json:"search,omitempty"`
	// Color is used as-is when set (#rrggbb).
	Color string `mapstructure:"color" toml:"color,omitempty" json:"color,omitempty" validate:"omitempty,hexcolor"`
	// Hues derive the colour when Color is empty.
	Hues []float64 `mapstructure:"hues" toml:"hues,omitempty" json:"hues,omitempty" validate:"dive,gte=0,lt=360"`
}

// SuggestionsConfig controls the suggestion list.
type SuggestionsConfig struct {
	// Limit caps the merged list.
	Limit int `mapstructure:"limit" toml:"limit" json:"limit" validate:"gte=0"`
	// Sources are queried in this order; the merged list keeps it.
	Sources []SourceConfig `mapstructure:"sources" toml:"sources" json:"sources" validate:"dive"`
	// Defaults maps an exact input to fixed suggestions.
	Defaults map[string][]string `mapstructure:"defaults" toml:"defaults" json:"defaults,omitempty"`
}

// SourceConfig configures one suggestion source.
type SourceConfig struct {
	Name     string `mapstructure:"name" toml:"name" json:"name" validate:"required,oneof=Default History DuckDuckGo Commands"`
	Limit    int    `mapstructure:"limit" toml:"limit" json:"limit" validate:"gte=0"`
	MinChars int    `mapstructure:"min_chars" toml:"min_chars" json:"min_chars" validate:"gte=0"`
}

// AppearanceConfig holds the HSL parameters for hue-derived colours.
type AppearanceConfig struct {
	Saturation float64 `mapstructure:"saturation" toml:"saturation" json:"saturation" validate:"gte=0,lte=1"`
	Lightness  float64 `mapstructure:"lightness" toml:"lightness" json:"lightness" validate:"gte=0,lte=1"`
}

// RemoteConfig configures the remote phrase suggestion endpoint.
type RemoteConfig struct {
	// Endpoint is queried as Endpoint?q=<query>&type=list.
	Endpoint string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint" validate:"required,url"`
	// TimeoutMilliseconds bounds one request.
	TimeoutMilliseconds int `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" validate:"gt=0"`
	// RatePerSecond throttles outgoing requests; 0 disables throttling.
	RatePerSecond float64 `mapstructure:"rate_per_second" toml:"rate_per_second" json:"rate_per_second" validate:"gte=0"`
	Burst         int     `mapstructure:"burst" toml:"burst" json:"burst" validate:"gte=1"`
	// CacheTTLSeconds keeps responses per query; 0 disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" toml:"cache_ttl_seconds" json:"cache_ttl_seconds" validate:"gte=0"`
}

// HistoryBackend selects where submitted queries are remembered.
type HistoryBackend string

const (
	HistoryBackendSQLite HistoryBackend = "sqlite"
	HistoryBackendFile   HistoryBackend = "file"
)

// HistoryConfig configures query history persistence.
type HistoryConfig struct {
	Backend HistoryBackend `mapstructure:"backend" toml:"backend" json:"backend" validate:"oneof=sqlite file"`
	// Path is the JSON history file for the file backend.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// ServerConfig configures `tilde serve`.
type ServerConfig struct {
	Listen string `mapstructure:"listen" toml:"listen" json:"listen" validate:"required,hostname_port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=console json"`
	// File enables a rotated log file at this path.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" validate:"gte=0"`
}

// Timeout returns the request timeout as a duration.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutMilliseconds) * time.Millisecond
}

// CacheTTL returns the response cache lifetime as a duration.
func (r RemoteConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}
