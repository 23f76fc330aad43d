package config

const (
	defaultWindowTitle  = "quadspace"
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	// DefaultWindowLabel names the main window.
	DefaultWindowLabel = "quadspace_main"

	defaultSidebarWidth   = 64.0
	defaultSettleDelayMs  = 50
	defaultPlaceholderURL = "about:blank"

	defaultWorkspacesFile = "workspaces.json"

	defaultMaxHistoryEntries = 500

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultLogMaxMB  = 10
	defaultLogFiles  = 3
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Label:  DefaultWindowLabel,
		},
		Layout: LayoutConfig{
			SidebarWidth:   defaultSidebarWidth,
			SettleDelayMs:  defaultSettleDelayMs,
			PlaceholderURL: defaultPlaceholderURL,
		},
		Workspaces: WorkspacesConfig{
			Path:  defaultWorkspacesFile,
			Watch: true,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: defaultMaxHistoryEntries,
			// DatabasePath is resolved in Load.
		},
		Session: SessionConfig{
			RestoreLastWorkspace: true,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxMB,
			MaxBackups: defaultLogFiles,
		},
		Debug: DebugConfig{
			EnableDevTools: false,
		},
	}
}
