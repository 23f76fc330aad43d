package config

import (
	"context"
	"slices"

	"github.com/bnema/quadspace/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// OnConfigChange registers fn to receive every successfully reloaded config.
// Each callback gets its own copy.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// Watch reloads the config file whenever it changes on disk. An edit that
// fails to parse or validate is logged and the previous config stays active.
// Calling Watch twice is harmless.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	already := m.watching
	m.watching = true
	m.mu.Unlock()
	if already {
		return nil
	}

	ctx = logging.WithComponent(ctx, "config-watcher")
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleFileEvent(ctx, e)
	})
	m.viper.WatchConfig()
	return nil
}

func (m *Manager) handleFileEvent(ctx context.Context, e fsnotify.Event) {
	log := logging.FromContext(ctx)
	log.Debug().Str("file", e.Name).Stringer("op", e.Op).Msg("config file changed")

	next, fns, err := m.reload()
	if err != nil {
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return
	}
	for _, fn := range fns {
		c := next
		fn(&c)
	}
}

// reload swaps in the file's current contents and returns a copy of the new
// config together with the callbacks to notify. Callbacks run unlocked.
func (m *Manager) reload() (Config, []func(*Config), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return Config{}, nil, err
	}
	next, err := m.decode()
	if err != nil {
		return Config{}, nil, err
	}
	m.config = next
	return *next, slices.Clone(m.callbacks), nil
}
