package config

// Default configuration constants
const (
	defaultHelpKey         = "?"
	defaultSearchDelimiter = "'"
	defaultPathDelimiter   = "/"

	defaultSuggestionLimit = 5

	// Appearance defaults match the start page's command colours.
	defaultSaturation = 0.6
	defaultLightness  = 0.55

	// Remote defaults
	defaultRemoteEndpoint     = "https://duckduckgo.com/ac/"
	defaultRemoteTimeoutMs    = 3000
	defaultRemoteRate         = 5.0 // requests per second
	defaultRemoteBurst        = 3
	defaultRemoteCacheSeconds = 300

	defaultServerListen = "127.0.0.1:7373"

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HelpKey: defaultHelpKey,
		Query: QueryConfig{
			SearchDelimiter: defaultSearchDelimiter,
			PathDelimiter:   defaultPathDelimiter,
			InstantRedirect: false,
			NewTab:          false,
		},
		Commands: DefaultCommands(),
		Scripts: map[string][]string{
			"q": {"bin", "yah", "eco", "ddg", "*"},
		},
		Suggestions: SuggestionsConfig{
			Limit: defaultSuggestionLimit,
			Sources: []SourceConfig{
				{Name: "Default", Limit: 4},
				{Name: "History", Limit: 4, MinChars: 1},
				{Name: "DuckDuckGo", Limit: 6, MinChars: 1},
			},
			Defaults: map[string][]string{
				"g": {"g/hH-13/tilde"},
				"i": {"inbox.google.com/"},
				"l": {"l/editor", "l/paste"},
				"r": {"r/r/golang"},
				"y": {"y/playlist?list=WL"},
			},
		},
		Appearance: AppearanceConfig{
			Saturation: defaultSaturation,
			Lightness:  defaultLightness,
		},
		Remote: RemoteConfig{
			Endpoint:            defaultRemoteEndpoint,
			TimeoutMilliseconds: defaultRemoteTimeoutMs,
			RatePerSecond:       defaultRemoteRate,
			Burst:               defaultRemoteBurst,
			CacheTTLSeconds:     defaultRemoteCacheSeconds,
		},
		History: HistoryConfig{
			Backend: HistoryBackendSQLite,
		},
		Server: ServerConfig{
			Listen: defaultServerListen,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}

// DefaultCommands returns the built-in command table: the wildcard and the
// other search engines used by the "q" script, then the listed shortcuts.
func DefaultCommands() []CommandConfig {
	return []CommandConfig{
		{Key: "*", URL: "https://www.google.com", Search: "/search?q={}"},
		{Key: "bin", URL: "https://www.bing.com", Search: "/search?q={}"},
		{Key: "ddg", URL: "https://duckduckgo.com", Search: "/?q={}"},
		{Key: "eco", URL: "https://www.ecosia.org", Search: "/search?q={}"},
		{Key: "yah", URL: "https://search.yahoo.com", Search: "/search?p={}"},

		{Key: "m", Name: "GMail", URL: "https://inbox.google.com/", Search: "/mail/u/0/?q={}#search/{}", Hues: []float64{338, 11}},
		{Key: "y", Name: "YouTube", URL: "https://youtube.com/", Search: "/results?search_query={}", Hues: []float64{2, 35}},
		{Key: "s", Name: "Spotify", URL: "https://open.spotify.com", Search: "/search/{}", Hues: []float64{26, 59}},
		{Key: "o", Name: "Outlook", URL: "https://outlook.office.com/", Hues: []float64{50, 83}},
		{Key: "g", Name: "GitHub", URL: "https://github.com/", Hues: []float64{74, 107}},
		{Key: "n", Name: "LinkedIn", URL: "https://www.linkedin.com/jobs/", Hues: []float64{98, 131}},
		{Key: "i", Name: "Instagram", URL: "https://www.instagram.com", Hues: []float64{122, 155}},
		{Key: "f", Name: "Facebook", URL: "https://www.facebook.com/", Search: "/search/?q={}", Hues: []float64{146, 179}},
		{Key: "r", Name: "Reddit", URL: "https://www.reddit.com", Search: "/search?q={}", Hues: []float64{170, 203}},
		{Key: "d", Name: "Discord", URL: "https://discord.com/app", Search: "/guild-discovery?query={}", Hues: []float64{194, 227}},
		{Key: "w", Name: "Whatsapp", URL: "https://web.whatsapp.com", Hues: []float64{218, 251}},
		{Key: "t", Name: "Teams", URL: "https://teams.microsoft.com/v2/", Hues: []float64{242, 275}},
		{Key: "k", Name: "Keep", URL: "https://keep.google.com/u/0", Search: "/u/0/#search/text={}", Hues: []float64{266, 299}},
		{Key: "l", Name: "lichess", URL: "https://lichess.org/", Hues: []float64{290, 323}},
		{Key: "c", Name: "Chess", URL: "https://chess.com/", Hues: []float64{314, 347}},
	}
}
