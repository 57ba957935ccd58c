// Package cli wires configuration, storage and use cases for the tilde commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/afero"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/cli/styles"
	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/repository"
	"github.com/hH-13/tilde/internal/infrastructure/config"
	"github.com/hH-13/tilde/internal/infrastructure/duckduckgo"
	"github.com/hH-13/tilde/internal/infrastructure/navigator"
	"github.com/hH-13/tilde/internal/infrastructure/persistence/file"
	"github.com/hH-13/tilde/internal/infrastructure/persistence/sqlite"
	"github.com/hH-13/tilde/internal/logging"
)

// Navigator kinds accepted by NewNavigator.
const (
	NavigatorBrowser = "browser"
	NavigatorPrint   = "print"
	NavigatorCopy    = "copy"
)

// App holds CLI dependencies.
type App struct {
	Theme *styles.Theme

	// History is the configured store, shared by every rebuild.
	History repository.HistoryRepository

	mu        sync.RWMutex
	config    *config.Config
	parser    *usecase.QueryParser
	suggester *usecase.SuggestionAggregator
	history   *usecase.HistorySource

	ctx        context.Context
	closers    []func() error
	logCleanup func()
}

// NewApp loads the configuration at configFile (the XDG location when empty)
// and builds the parser, history store and suggestion sources from it.
func NewApp(configFile string) (*App, error) {
	if err := config.Init(configFile); err != nil {
		return nil, err
	}
	cfg := config.Get()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logging.ConsoleTimeFormat,
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.File != "",
			Path:          cfg.Logging.File,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			WriteToStderr: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	a := &App{
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		logCleanup: logCleanup,
	}

	a.History = a.openHistory(cfg)

	if err := a.apply(cfg); err != nil {
		_ = a.Close()
		return nil, err
	}

	logger.Debug().Str("config", config.GetManager().GetConfigFile()).Msg("app ready")
	return a, nil
}

// openHistory returns the store selected by [history].backend.
func (a *App) openHistory(cfg *config.Config) repository.HistoryRepository {
	if cfg.History.Backend == config.HistoryBackendFile {
		return file.NewHistoryStore(afero.NewOsFs(), cfg.History.Path)
	}

	lazy := sqlite.NewLazyDB(cfg.Database.Path)
	a.closers = append(a.closers, lazy.Close)
	return sqlite.NewLazyHistoryRepository(lazy)
}

// apply builds the parser and sources for cfg and swaps them in.
func (a *App) apply(cfg *config.Config) error {
	parser, err := usecase.NewQueryParser(a.ctx, usecase.ParserConfig{
		Commands:        cfg.CommandTable(),
		Scripts:         cfg.ScriptTable(),
		SearchDelimiter: cfg.Query.SearchDelimiter,
		PathDelimiter:   cfg.Query.PathDelimiter,
	})
	if err != nil {
		return err
	}

	sources, history, err := a.buildSources(cfg, parser)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = cfg
	a.parser = parser
	a.suggester = usecase.NewSuggestionAggregator(sources, cfg.Suggestions.Limit)
	a.history = history
	return nil
}

func (a *App) buildSources(cfg *config.Config, parser *usecase.QueryParser) ([]port.SuggestionSource, *usecase.HistorySource, error) {
	var (
		sources []port.SuggestionSource
		history *usecase.HistorySource
	)

	for _, spec := range cfg.SourceSpecs() {
		switch spec.Name {
		case entity.SourceDefault:
			sources = append(sources, usecase.NewDefaultSource(spec, cfg.Suggestions.Defaults))
		case entity.SourceHistory:
			history = usecase.NewHistorySource(spec, a.History)
			sources = append(sources, history)
		case entity.SourceDuckDuckGo:
			client, err := duckduckgo.NewClient(duckduckgo.Config{
				Endpoint:      cfg.Remote.Endpoint,
				Timeout:       cfg.Remote.Timeout(),
				RatePerSecond: cfg.Remote.RatePerSecond,
				Burst:         cfg.Remote.Burst,
				CacheTTL:      cfg.Remote.CacheTTL(),
			})
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create suggestion client: %w", err)
			}
			sources = append(sources, usecase.NewRemoteSource(spec, client))
		case entity.SourceCommands:
			sources = append(sources, usecase.NewCommandsSource(spec, parser.Commands()))
		default:
			return nil, nil, fmt.Errorf("unknown suggestion source %q", spec.Name)
		}
	}
	return sources, history, nil
}

// Omnibox creates the omnibox use case over the current configuration.
// nav may be nil when destinations are only resolved.
func (a *App) Omnibox(nav port.Navigator) *usecase.OmniboxUseCase {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return usecase.NewOmniboxUseCase(a.parser, a.suggester, nav, usecase.OmniboxOptions{
		HelpKey:         a.config.HelpKey,
		InstantRedirect: a.config.Query.InstantRedirect,
		NewTab:          a.config.Query.NewTab,
	})
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Lint returns the command table warnings of the active configuration.
func (a *App) Lint() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.parser.Lint()
}

// Watch follows external changes for long-running commands: a history file
// written by another process drops the cached history, and an edited config
// file is rebuilt, after which onReload runs so callers can fetch a fresh
// Omnibox. A config that fails validation is logged and the previous one
// stays active.
func (a *App) Watch(onReload func()) error {
	log := logging.FromContext(a.ctx)

	cfg := a.Config()
	if cfg.History.Backend == config.HistoryBackendFile {
		w, err := file.NewWatcher(cfg.History.Path, file.DefaultDebounce, a.invalidateHistory)
		if err != nil {
			return err
		}
		go w.Run(a.ctx)
		a.closers = append(a.closers, w.Close)
	}

	config.OnConfigChange(func(next *config.Config) {
		if next.History != cfg.History || next.Database != cfg.Database {
			log.Warn().Msg("history settings changed, restart to apply")
		}
		if err := a.apply(next); err != nil {
			log.Warn().Err(err).Msg("failed to apply config change")
			return
		}
		log.Info().Msg("config reloaded")
		if onReload != nil {
			onReload()
		}
	})
	return config.Watch()
}

func (a *App) invalidateHistory() {
	a.mu.RLock()
	history := a.history
	a.mu.RUnlock()

	if history != nil {
		history.Invalidate()
		logging.FromContext(a.ctx).Debug().Msg("history file changed, cache dropped")
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewNavigator returns the navigator for kind. out receives printed URLs.
func NewNavigator(kind string, out io.Writer) (port.Navigator, error) {
	switch kind {
	case "", NavigatorBrowser:
		return navigator.NewOpener(), nil
	case NavigatorPrint:
		return navigator.NewWriter(out), nil
	case NavigatorCopy:
		return navigator.NewClipboard(), nil
	default:
		return nil, fmt.Errorf("unknown navigator %q (want %s, %s or %s)", kind, NavigatorBrowser, NavigatorPrint, NavigatorCopy)
	}
}
