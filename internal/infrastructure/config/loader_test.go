package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 64.0, mgr.viper.GetFloat64("layout.sidebar_width"))
	assert.Equal(t, 50, mgr.viper.GetInt("layout.settle_delay_ms"))
	assert.Equal(t, "workspaces.json", mgr.viper.GetString("workspaces.path"))
	assert.Equal(t, "quadspace_main", mgr.viper.GetString("window.label"))
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "config", "quadspace", "config.toml")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(configFile)
	require.NoError(t, err, "default config file should be written")

	cfg := mgr.Get()
	assert.Equal(t, 1200, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 64.0, cfg.Layout.SidebarWidth)
	assert.Equal(t, "about:blank", cfg.Layout.PlaceholderURL)
	assert.Equal(t, filepath.Join(root, "data", "quadspace", "history.sqlite"), cfg.History.DatabasePath)
}

func TestManager_Load_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[layout]
sidebar_width = 96.0
settle_delay_ms = 0

[logging]
level = "DEBUG"
`), 0o644))
	t.Setenv("QUADSPACE_WINDOW_TITLE", "from env")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 96.0, cfg.Layout.SidebarWidth)
	assert.Zero(t, cfg.SettleDelay())
	assert.Equal(t, "debug", cfg.Logging.Level, "level is normalized")
	assert.Equal(t, "from env", cfg.Window.Title)
	assert.Equal(t, 1200, cfg.Window.Width, "missing keys fall back to defaults")
}

func TestManager_Load_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "bad.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[layout]
sidebar_width = -5.0
settle_delay_ms = 5000
`), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.sidebar_width")
	assert.Contains(t, err.Error(), "layout.settle_delay_ms")
}

func TestManager_Get_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = " JSON "
	cfg.Window.Label = ""
	cfg.Layout.PlaceholderURL = "  "

	normalizeConfig(cfg)

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DefaultWindowLabel, cfg.Window.Label)
	assert.Equal(t, "about:blank", cfg.Layout.PlaceholderURL)
}

func TestManager_Reload_NotifiesCallbacksWithCopy(t *testing.T) {
	root := isolateXDG(t)
	file := filepath.Join(root, "quadspace.toml")
	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsidebar_width = 80\n"), 0o600))

	mgr, err := NewManagerForFile(file)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []float64
	mgr.OnConfigChange(func(c *Config) {
		got = append(got, c.Layout.SidebarWidth)
		c.Layout.SidebarWidth = -1
	})

	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsidebar_width = 120\n"), 0o600))
	mgr.handleFileEvent(context.Background(), fsnotify.Event{Name: file, Op: fsnotify.Write})

	assert.Equal(t, []float64{120}, got)
	assert.Equal(t, 120.0, mgr.Get().Layout.SidebarWidth, "callbacks cannot mutate the live config")
}

func TestManager_Reload_KeepsPreviousOnInvalidEdit(t *testing.T) {
	root := isolateXDG(t)
	file := filepath.Join(root, "quadspace.toml")
	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsidebar_width = 80\n"), 0o600))

	mgr, err := NewManagerForFile(file)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(file, []byte("[layout\nbroken"), 0o600))
	mgr.handleFileEvent(context.Background(), fsnotify.Event{Name: file, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, 80.0, mgr.Get().Layout.SidebarWidth)
}

func TestManager_Reload_CallbackSnapshotIsTakenBeforeNotifying(t *testing.T) {
	root := isolateXDG(t)
	file := filepath.Join(root, "quadspace.toml")
	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsidebar_width = 80\n"), 0o600))

	mgr, err := NewManagerForFile(file)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var first, late int
	mgr.OnConfigChange(func(*Config) {
		first++
		mgr.OnConfigChange(func(*Config) { late++ })
	})

	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsidebar_width = 90\n"), 0o600))
	mgr.handleFileEvent(context.Background(), fsnotify.Event{Name: file, Op: fsnotify.Write})
	assert.Equal(t, 1, first)
	assert.Zero(t, late, "callbacks added during a notification wait for the next reload")

	mgr.handleFileEvent(context.Background(), fsnotify.Event{Name: file, Op: fsnotify.Write})
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, late)
}
