package config

// Config represents the complete configuration for quadspace.
type Config struct {
	// Window sizes and names the main window.
	Window WindowConfig `mapstructure:"window" toml:"window" json:"window"`
	// Layout controls the sidebar and the quadrant grid.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Workspaces locates the workspace file.
	Workspaces WorkspacesConfig `mapstructure:"workspaces" toml:"workspaces" json:"workspaces"`
	// History controls the workspace activation history database.
	History HistoryConfig `mapstructure:"history" toml:"history" json:"history"`
	// Session controls which workspace is loaded on start.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	Debug   DebugConfig   `mapstructure:"debug" toml:"debug" json:"debug"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title" toml:"title" json:"title" jsonschema:"description=Window title"`
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1,description=Initial width in pixels"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1,description=Initial height in pixels"`
	// Label identifies the window to the layout code.
	Label string `mapstructure:"label" toml:"label" json:"label"`
}

// LayoutConfig holds pane layout settings.
type LayoutConfig struct {
	SidebarWidth float64 `mapstructure:"sidebar_width" toml:"sidebar_width" json:"sidebar_width" jsonschema:"minimum=0,description=Initial sidebar width in pixels"`
	// SettleDelayMs is the pause after a fullscreen toggle, letting the compositor catch up.
	SettleDelayMs int `mapstructure:"settle_delay_ms" toml:"settle_delay_ms" json:"settle_delay_ms" jsonschema:"minimum=0,maximum=1000"`
	// PlaceholderURL is loaded into new panes that have no usable URL.
	PlaceholderURL string `mapstructure:"placeholder_url" toml:"placeholder_url" json:"placeholder_url"`
}

// WorkspacesConfig holds workspace file settings.
type WorkspacesConfig struct {
	// Path to the workspace file. Relative paths resolve against the working directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// Watch pushes external edits of the file to the control pane.
	Watch bool `mapstructure:"watch" toml:"watch" json:"watch"`
}

// HistoryConfig holds activation history settings.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// DatabasePath defaults to the XDG data directory when empty.
	DatabasePath string `mapstructure:"database_path" toml:"database_path" json:"database_path"`
	MaxEntries   int    `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=0"`
}

// SessionConfig holds startup behaviour.
type SessionConfig struct {
	RestoreLastWorkspace bool `mapstructure:"restore_last_workspace" toml:"restore_last_workspace" json:"restore_last_workspace"`
	// StartupWorkspace wins over RestoreLastWorkspace when set.
	StartupWorkspace string `mapstructure:"startup_workspace" toml:"startup_workspace" json:"startup_workspace"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// ToFile also writes JSON logs to quadspace.log in the XDG state directory.
	ToFile     bool   `mapstructure:"to_file" toml:"to_file" json:"to_file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// DebugConfig holds developer options.
type DebugConfig struct {
	EnableDevTools bool `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}
