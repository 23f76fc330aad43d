// Package cli holds the shared state of quadspace's commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bnema/quadspace/internal/bootstrap"
	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/build"
	"github.com/bnema/quadspace/internal/infrastructure/config"
	"github.com/bnema/quadspace/internal/logging"
)

// Options selects how the app is set up.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// Verbose forces debug logging.
	Verbose bool
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx        context.Context
	logCleanup func()

	servicesOnce sync.Once
	services     *bootstrap.Services
	servicesErr  error
}

// NewApp loads the config and sets up logging. Stores are opened on demand
// by Services.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerForFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if opts.Verbose {
		logCfg.Level = logging.ParseLevel("debug")
	}
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = opts.LogOutput
	if logCfg.Output == nil {
		logCfg.Output = os.Stderr
	}

	cleanup := func() {}
	if cfg.Logging.ToFile {
		dir, dirErr := config.GetLogDir()
		if dirErr != nil {
			return nil, fmt.Errorf("resolve log dir: %w", dirErr)
		}
		rotator, rotErr := logging.NewLogRotator(dir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		if rotErr != nil {
			return nil, fmt.Errorf("open log file: %w", rotErr)
		}
		logCfg.File = rotator
		cleanup = func() { _ = rotator.Close() }
	}

	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("config loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		logCleanup: cleanup,
	}, nil
}

// Services opens the workspace store and history database once.
func (a *App) Services() (*bootstrap.Services, error) {
	a.servicesOnce.Do(func() {
		a.services, a.servicesErr = bootstrap.Init(a.ctx, a.Config)
	})
	return a.services, a.servicesErr
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.services != nil {
		err = a.services.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
