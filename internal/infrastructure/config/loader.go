package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	reloadTimer    *time.Timer
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory, or from the current directory during development.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Dir(configFile))
	v.AddConfigPath(".")

	return newManager(v, configFile)
}

// NewManagerWithFile creates a configuration manager for an explicit file.
// The file is created from defaults when it does not exist.
func NewManagerWithFile(path string) (*Manager, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, path)
}

func newManager(v *viper.Viper, configFile string) (*Manager, error) {
	// Most variables map automatically with the TILDE_ prefix
	// (TILDE_QUERY_SEARCH_DELIMITER, TILDE_SERVER_LISTEN, ...).
	v.SetEnvPrefix("TILDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TILDE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILDE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TILDE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TILDE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// decode unmarshals, completes and validates what viper currently holds.
func (m *Manager) decode() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensurePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	m.viper.SetConfigFile(m.configFile)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.History.Path == "" && strings.EqualFold(string(config.History.Backend), string(HistoryBackendFile)) {
		historyPath, err := GetHistoryFile()
		if err != nil {
			return fmt.Errorf("failed to get history path: %w", err)
		}
		config.History.Path = historyPath
	}
	return nil
}

var sourceNames = []entity.SourceName{
	entity.SourceDefault,
	entity.SourceHistory,
	entity.SourceDuckDuckGo,
	entity.SourceCommands,
}

func normalizeConfig(config *Config) {
	config.Query.SearchDelimiter = strings.TrimSpace(config.Query.SearchDelimiter)
	config.Query.PathDelimiter = strings.TrimSpace(config.Query.PathDelimiter)

	for i := range config.Commands {
		cmd := &config.Commands[i]
		cmd.Key = strings.TrimSpace(cmd.Key)
		cmd.URL = strings.TrimSpace(cmd.URL)
		cmd.Color = strings.ToLower(strings.TrimSpace(cmd.Color))
		cmd.Search = normalizePlaceholder(cmd.Search)
	}

	for i := range config.Suggestions.Sources {
		src := &config.Suggestions.Sources[i]
		for _, name := range sourceNames {
			if strings.EqualFold(strings.TrimSpace(src.Name), string(name)) {
				src.Name = string(name)
				break
			}
		}
	}

	switch strings.ToLower(strings.TrimSpace(string(config.History.Backend))) {
	case string(HistoryBackendFile):
		config.History.Backend = HistoryBackendFile
	default:
		config.History.Backend = HistoryBackendSQLite
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// normalizePlaceholder accepts "{ }" and similar spellings of the search
// placeholder.
func normalizePlaceholder(search string) string {
	var b strings.Builder
	for {
		open := strings.Index(search, "{")
		if open < 0 {
			break
		}
		closing := strings.Index(search[open:], "}")
		if closing < 0 || strings.TrimSpace(search[open+1:open+closing]) != "" {
			b.WriteString(search[:open+1])
			search = search[open+1:]
			continue
		}
		b.WriteString(search[:open])
		b.WriteString(entity.SearchPlaceholder)
		search = search[open+closing+1:]
	}
	b.WriteString(search)
	return b.String()
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		m.skipNextReload = false
		return err
	}

	m.config = cfg
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", m.configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
// Map-valued sections (scripts, suggestions.defaults) are not defaulted:
// viper merges maps key by key, so removed entries would come back.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("help_key", defaults.HelpKey)
	m.setQueryDefaults(defaults)
	m.viper.SetDefault("commands", defaults.Commands)
	m.setSuggestionDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setRemoteDefaults(defaults)
	m.setHistoryDefaults(defaults)
	m.setServerDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setQueryDefaults(defaults *Config) {
	m.viper.SetDefault("query.search_delimiter", defaults.Query.SearchDelimiter)
	m.viper.SetDefault("query.path_delimiter", defaults.Query.PathDelimiter)
	m.viper.SetDefault("query.instant_redirect", defaults.Query.InstantRedirect)
	m.viper.SetDefault("query.new_tab", defaults.Query.NewTab)
}

func (m *Manager) setSuggestionDefaults(defaults *Config) {
	m.viper.SetDefault("suggestions.limit", defaults.Suggestions.Limit)
	m.viper.SetDefault("suggestions.sources", defaults.Suggestions.Sources)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.saturation", defaults.Appearance.Saturation)
	m.viper.SetDefault("appearance.lightness", defaults.Appearance.Lightness)
}

func (m *Manager) setRemoteDefaults(defaults *Config) {
	m.viper.SetDefault("remote.endpoint", defaults.Remote.Endpoint)
	m.viper.SetDefault("remote.timeout_ms", defaults.Remote.TimeoutMilliseconds)
	m.viper.SetDefault("remote.rate_per_second", defaults.Remote.RatePerSecond)
	m.viper.SetDefault("remote.burst", defaults.Remote.Burst)
	m.viper.SetDefault("remote.cache_ttl_seconds", defaults.Remote.CacheTTLSeconds)
}

func (m *Manager) setHistoryDefaults(defaults *Config) {
	m.viper.SetDefault("history.backend", string(defaults.History.Backend))
	m.viper.SetDefault("history.path", defaults.History.Path)
	m.viper.SetDefault("database.path", defaults.Database.Path)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.listen", defaults.Server.Listen)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

// New returns a new default configuration instance.
func New() *Config {
	return DefaultConfig()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager. An empty path uses
// the XDG location.
func Init(path string) error {
	var err error
	globalManagerOnce.Do(func() {
		if path != "" {
			globalManager, err = NewManagerWithFile(path)
		} else {
			globalManager, err = NewManager()
		}
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
