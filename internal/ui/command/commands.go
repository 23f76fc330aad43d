// Package command exposes the control pane's verbs on top of the use cases.
package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/logging"
)

// Commands is the surface the control pane talks to.
type Commands struct {
	workspaces *usecase.ManageWorkspacesUseCase
	loader     *usecase.LoadWorkspaceUseCase
	fullscreen *usecase.FullscreenUseCase
}

// New creates the command surface.
func New(
	workspaces *usecase.ManageWorkspacesUseCase,
	loader *usecase.LoadWorkspaceUseCase,
	fullscreen *usecase.FullscreenUseCase,
) *Commands {
	return &Commands{
		workspaces: workspaces,
		loader:     loader,
		fullscreen: fullscreen,
	}
}

// GetAllWorkspaces returns every stored workspace document keyed by name.
func (c *Commands) GetAllWorkspaces(ctx context.Context) (map[string]json.RawMessage, error) {
	return c.workspaces.GetAll(ctx)
}

// SaveWorkspace inserts or replaces a workspace.
func (c *Commands) SaveWorkspace(ctx context.Context, name string, config json.RawMessage) error {
	return c.workspaces.Save(ctx, name, config)
}

// DeleteWorkspace removes a workspace. Unknown names are a no-op.
func (c *Commands) DeleteWorkspace(ctx context.Context, name string) error {
	return c.workspaces.Delete(ctx, name)
}

// LoadWorkspace starts reconciling the window with the named workspace and
// returns once the work is submitted. Lookup failures are returned; pane
// level failures arrive later as events.
func (c *Commands) LoadWorkspace(ctx context.Context, name string) (*usecase.ReconcileTask, error) {
	log := logging.FromContext(ctx)

	task, err := c.loader.Execute(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace %q: %w", name, err)
	}
	log.Debug().Str("workspace", name).Msg("workspace load submitted")
	return task, nil
}

// UpdateSidebarWidth changes the sidebar width, deferring layout while fullscreen.
func (c *Commands) UpdateSidebarWidth(ctx context.Context, width float64) error {
	return c.fullscreen.UpdateSidebarWidth(ctx, width)
}

// ToggleFullscreen enters or leaves fullscreen.
func (c *Commands) ToggleFullscreen(ctx context.Context, fullscreen bool) error {
	return c.fullscreen.SetFullscreen(ctx, fullscreen)
}
