package bootstrap

import (
	"context"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/infrastructure/config"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/quadspace/internal/logging"
)

// WatchWorkspaces emits EventWorkspacesChanged when another process edits
// the workspace file. It returns once the watcher is running.
func (s *Services) WatchWorkspaces(ctx context.Context, sink port.EventSink) error {
	if !s.Config().Workspaces.Watch {
		return nil
	}
	return s.Store.Watch(ctx, jsonstore.DefaultDebounce, func() {
		logging.FromContext(ctx).Info().Str("path", s.Store.Path()).Msg("workspace file changed on disk")
		sink.Emit(ctx, port.Event{Kind: port.EventWorkspacesChanged})
	})
}

// ApplyConfigChange reacts to a live config reload: the sidebar width is
// applied through the fullscreen controller, everything else needs a restart.
func (s *Services) ApplyConfigChange(ctx context.Context, rt *Runtime, next *config.Config) {
	log := logging.FromContext(ctx)

	prev := s.swapConfig(next)

	if next.Layout.SidebarWidth != prev.Layout.SidebarWidth {
		if err := rt.Fullscreen.UpdateSidebarWidth(ctx, next.Layout.SidebarWidth); err != nil {
			log.Warn().Err(err).Msg("failed to apply sidebar width from config")
		}
	}
	if next.Logging.Level != prev.Logging.Level {
		log.Info().Str("level", next.Logging.Level).Msg("log level changes apply on restart")
	}
}
