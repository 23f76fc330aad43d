package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "quadspace"
	databaseName = "history.sqlite"
	configName   = "config.toml"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Dirs are quadspace's per-user directories following the XDG base
// directory layout.
type Dirs struct {
	Config string
	Data   string
	State  string
}

// ResolveDirs reads the XDG variables, falling back to the usual locations
// under $HOME. ENV=dev keeps everything in ./.dev/quadspace.
func ResolveDirs() (Dirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return Dirs{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return Dirs{Config: dev, Data: dev, State: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, err
	}
	base := func(env string, fallback ...string) string {
		if v := os.Getenv(env); v != "" {
			return filepath.Join(v, appName)
		}
		return filepath.Join(append(append([]string{home}, fallback...), appName)...)
	}
	return Dirs{
		Config: base("XDG_CONFIG_HOME", ".config"),
		Data:   base("XDG_DATA_HOME", ".local", "share"),
		State:  base("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

func resolveIn(pick func(Dirs) string) (string, error) {
	d, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return pick(d), nil
}

// GetConfigFile is the default config.toml location.
func GetConfigFile() (string, error) {
	return resolveIn(func(d Dirs) string { return filepath.Join(d.Config, configName) })
}

// GetLogDir is where quadspace.log is rotated.
func GetLogDir() (string, error) {
	return resolveIn(func(d Dirs) string { return d.State })
}

// GetDatabaseFile is the default activation history database.
func GetDatabaseFile() (string, error) {
	return resolveIn(func(d Dirs) string { return filepath.Join(d.Data, databaseName) })
}

// EnsureDirectories creates all three directories.
func EnsureDirectories() error {
	d, err := ResolveDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{d.Config, d.Data, d.State} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
