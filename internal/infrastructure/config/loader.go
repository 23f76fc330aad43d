// Package config loads quadspace settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// QUADSPACE_LAYOUT_SIDEBAR_WIDTH=80 overrides layout.sidebar_width, and so on.
	v.SetEnvPrefix("QUADSPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "QUADSPACE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind QUADSPACE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "QUADSPACE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind QUADSPACE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration, writing a default file first if none exists.
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

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, fills derived values, normalizes and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.History.DatabasePath != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.History.DatabasePath = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Window.Label = strings.TrimSpace(config.Window.Label)
	if config.Window.Label == "" {
		config.Window.Label = DefaultWindowLabel
	}

	config.Layout.PlaceholderURL = strings.TrimSpace(config.Layout.PlaceholderURL)
	if config.Layout.PlaceholderURL == "" {
		config.Layout.PlaceholderURL = defaultPlaceholderURL
	}

	config.Workspaces.Path = strings.TrimSpace(config.Workspaces.Path)
	config.Session.StartupWorkspace = strings.TrimSpace(config.Session.StartupWorkspace)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults as an ordered TOML file.
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
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.label", defaults.Window.Label)

	m.viper.SetDefault("layout.sidebar_width", defaults.Layout.SidebarWidth)
	m.viper.SetDefault("layout.settle_delay_ms", defaults.Layout.SettleDelayMs)
	m.viper.SetDefault("layout.placeholder_url", defaults.Layout.PlaceholderURL)

	m.viper.SetDefault("workspaces.path", defaults.Workspaces.Path)
	m.viper.SetDefault("workspaces.watch", defaults.Workspaces.Watch)

	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.database_path", defaults.History.DatabasePath)
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)

	m.viper.SetDefault("session.restore_last_workspace", defaults.Session.RestoreLastWorkspace)
	m.viper.SetDefault("session.startup_workspace", defaults.Session.StartupWorkspace)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.to_file", defaults.Logging.ToFile)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("debug.enable_devtools", defaults.Debug.EnableDevTools)
}

// SettleDelay returns layout.settle_delay_ms as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Layout.SettleDelayMs) * time.Millisecond
}
