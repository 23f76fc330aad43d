package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirs_UsesXDGVariables(t *testing.T) {
	root := isolateXDG(t)

	d, err := ResolveDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "quadspace"), d.Config)
	assert.Equal(t, filepath.Join(root, "data", "quadspace"), d.Data)
	assert.Equal(t, filepath.Join(root, "state", "quadspace"), d.State)

	dbPath, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "quadspace", "history.sqlite"), dbPath)
}

func TestResolveDirs_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	d, err := ResolveDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "quadspace"), d.Config)
	assert.Equal(t, filepath.Join(home, ".local", "share", "quadspace"), d.Data)
	assert.Equal(t, filepath.Join(home, ".local", "state", "quadspace"), d.State)
}
