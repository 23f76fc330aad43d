// Package bootstrap assembles quadspace's stores, use cases and commands.
package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/infrastructure/config"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/bnema/quadspace/internal/ui/command"
)

// Services holds everything that does not depend on a window.
type Services struct {
	State       *entity.LayoutState
	Store       *jsonstore.Store
	DB          *sqlite.LazyDB
	Activations repository.ActivationRepository
	Workspaces  *usecase.ManageWorkspacesUseCase
	History     *usecase.ActivationHistoryUseCase
	Timer       *StartupTimer

	// cfg is swapped by ApplyConfigChange from the config watcher goroutine.
	cfgMu sync.RWMutex
	cfg   *config.Config
}

// Config returns the config currently in effect.
func (s *Services) Config() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// swapConfig installs next and returns the config it replaced.
func (s *Services) swapConfig(next *config.Config) *config.Config {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	prev := s.cfg
	s.cfg = next
	return prev
}

// Init opens the workspace file and, when history is enabled, the history
// database. Both run in parallel; the first failure wins.
func Init(ctx context.Context, cfg *config.Config) (*Services, error) {
	log := logging.FromContext(ctx)

	s := &Services{
		State: entity.NewLayoutState(cfg.Layout.SidebarWidth),
		Timer: NewStartupTimer(),
		cfg:   cfg,
	}

	store, err := jsonstore.New(cfg.Workspaces.Path)
	if err != nil {
		return nil, err
	}
	s.Store = store
	s.Workspaces = usecase.NewManageWorkspacesUseCase(store)

	if cfg.History.Enabled {
		s.DB = sqlite.NewLazyDB(cfg.History.DatabasePath)
		s.Activations = sqlite.NewLazyActivationRepository(s.DB)
		s.History = usecase.NewActivationHistoryUseCase(s.Activations, store, cfg.History.MaxEntries)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer s.Timer.Track("workspaces")()
		// Reading once seeds a missing file and surfaces parse errors early.
		all, err := store.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("open workspace file: %w", err)
		}
		log.Debug().Str("path", store.Path()).Int("count", len(all)).Msg("workspace file ready")
		return nil
	})
	if s.DB != nil && cfg.Session.RestoreLastWorkspace {
		g.Go(func() error {
			defer s.Timer.Track("history_db")()
			// History is optional: LazyDB logs the failure and restore finds nothing.
			_, _ = s.DB.DB(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the history database.
func (s *Services) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Runtime is the window-bound half: reconciler, fullscreen controller and commands.
type Runtime struct {
	Loader     *usecase.LoadWorkspaceUseCase
	Fullscreen *usecase.FullscreenUseCase
	Commands   *command.Commands
}

// Wire builds the runtime against a window resolver and registers the
// control pane commands on router.
func (s *Services) Wire(
	ctx context.Context,
	windows port.WindowResolver,
	sink port.EventSink,
	router *messaging.Router,
) (*Runtime, error) {
	cfg := s.Config()

	loader := usecase.NewLoadWorkspaceUseCase(s.Store, s.State, windows, sink, usecase.LoadWorkspaceOptions{
		WindowLabel:    cfg.Window.Label,
		PlaceholderURL: cfg.Layout.PlaceholderURL,
		Activations:    s.Activations,
	})
	fullscreen := usecase.NewFullscreenUseCase(s.State, windows, cfg.Window.Label, cfg.SettleDelay())

	rt := &Runtime{
		Loader:     loader,
		Fullscreen: fullscreen,
		Commands:   command.New(s.Workspaces, loader, fullscreen),
	}
	if router != nil {
		if err := command.Register(ctx, router, rt.Commands); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// StartupWorkspace picks the workspace to load at launch: the configured
// one, else the last restorable one, else none.
func (s *Services) StartupWorkspace(ctx context.Context, override string) string {
	log := logging.FromContext(ctx)

	if override != "" {
		return override
	}
	session := s.Config().Session
	if session.StartupWorkspace != "" {
		return session.StartupWorkspace
	}
	if !session.RestoreLastWorkspace || s.History == nil {
		return ""
	}

	name, err := s.History.LastRestorable(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read last workspace")
		return ""
	}
	return name
}

// Restore loads the startup workspace, if any, and prunes history.
func (s *Services) Restore(ctx context.Context, rt *Runtime, override string) (*usecase.ReconcileTask, error) {
	log := logging.FromContext(ctx)

	if s.History != nil {
		if _, err := s.History.Prune(ctx); err != nil {
			log.Warn().Err(err).Msg("history prune failed")
		}
	}

	name := s.StartupWorkspace(ctx, override)
	if name == "" {
		log.Debug().Msg("no startup workspace")
		return nil, nil
	}
	log.Info().Str("workspace", name).Msg("restoring workspace")
	return rt.Commands.LoadWorkspace(ctx, name)
}
