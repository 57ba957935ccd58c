package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/hH-13/tilde/internal/logging"
)

// reloadDebounce collapses the events of one editor save (truncate, write,
// chmod, rename) into a single reload.
const reloadDebounce = 150 * time.Millisecond

// Watch follows the config file. After a burst of changes settles the file
// is decoded and validated again; an invalid file is logged and the active
// config is kept. Callbacks run only when the decoded config differs.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.watchLogger().Debug().Str("op", e.Op.String()).Msg("config file event")
		m.scheduleReload()
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) watchLogger() zerolog.Logger {
	return logging.NewFromEnv().With().
		Str("component", "config").
		Str("file", m.configFile).
		Logger()
}

func (m *Manager) scheduleReload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reloadTimer != nil {
		m.reloadTimer.Stop()
	}
	m.reloadTimer = time.AfterFunc(reloadDebounce, m.applyFileChange)
}

func (m *Manager) applyFileChange() {
	log := m.watchLogger()

	m.mu.Lock()
	if m.skipNextReload {
		// Save already put the written config in memory.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync config after save")
		}
		m.notifyCallbacksLocked()
		return
	}

	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to read changed config, keeping the active one")
		return
	}
	next, err := m.decode()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("changed config is invalid, keeping the active one")
		return
	}
	if reflect.DeepEqual(next, m.config) {
		m.mu.Unlock()
		log.Debug().Msg("config unchanged")
		return
	}

	m.config = next
	log.Info().Int("commands", len(next.Commands)).Int("scripts", len(next.Scripts)).Msg("config reloaded")
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked releases m.mu, then hands the active config to every
// callback.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := append([]func(*Config)(nil), m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback for reloaded configurations.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Watch starts watching the global configuration.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback on the global configuration.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
