package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/infrastructure/memhost"
	"github.com/bnema/quadspace/internal/ui/command"
)

const previewLabel = "preview"

var (
	previewWidth      float64
	previewHeight     float64
	previewSidebar    float64
	previewFullscreen bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect pane geometry",
}

var layoutPreviewCmd = &cobra.Command{
	Use:   "preview [workspace]",
	Short: "Reconcile a workspace in a headless window and print the geometry",
	Long: `Run the same reconciliation the window does against an in-memory window
and print where each pane ends up. Nothing is recorded in history.

Examples:
  quadspace layout preview
  quadspace layout preview "Math Layout" --width 1920 --height 1080 --sidebar 80
  quadspace layout preview Work --fullscreen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutPreview,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutPreviewCmd)

	layoutPreviewCmd.Flags().Float64Var(&previewWidth, "width", 0, "window width (default window.width)")
	layoutPreviewCmd.Flags().Float64Var(&previewHeight, "height", 0, "window height (default window.height)")
	layoutPreviewCmd.Flags().Float64Var(&previewSidebar, "sidebar", -1, "sidebar width (default layout.sidebar_width)")
	layoutPreviewCmd.Flags().BoolVar(&previewFullscreen, "fullscreen", false, "preview fullscreen mode")
}

func runLayoutPreview(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	svc, err := app.Services()
	if err != nil {
		return err
	}
	cfg := app.Config

	size := entity.Size{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	if previewWidth > 0 {
		size.W = previewWidth
	}
	if previewHeight > 0 {
		size.H = previewHeight
	}
	sidebar := cfg.Layout.SidebarWidth
	if previewSidebar >= 0 {
		sidebar = previewSidebar
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), 10*time.Second)
	defer cancel()

	panes, err := previewLayout(ctx, svc.Store, size, sidebar, previewFullscreen, name)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), app.Theme.RenderLayoutPreview(size, sidebar, previewFullscreen, panes))
	return nil
}

// previewLayout reconciles name (if any) into a memhost window and returns
// the resulting quadrant geometry.
func previewLayout(
	ctx context.Context,
	workspaces repository.WorkspaceRepository,
	size entity.Size,
	sidebar float64,
	fullscreen bool,
	name string,
) ([]styles.PaneGeometry, error) {
	win := memhost.NewWindow(previewLabel, size)
	if _, err := win.CreatePane(ctx, entity.PaneControl, "quadspace://control/", entity.FullRect(size)); err != nil {
		return nil, err
	}
	resolver := memhost.NewResolver(win)

	state := entity.NewLayoutState(sidebar)
	state.SetFullscreen(fullscreen)

	if name != "" {
		loader := usecase.NewLoadWorkspaceUseCase(workspaces, state, resolver, command.LogSink{},
			usecase.LoadWorkspaceOptions{WindowLabel: previewLabel})
		task, err := loader.Execute(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := task.Wait(ctx); err != nil {
			return nil, err
		}
	}

	geometry := win.Geometry()
	panes := make([]styles.PaneGeometry, 0, len(entity.QuadrantRoles()))
	for i, role := range entity.QuadrantRoles() {
		p := styles.PaneGeometry{Role: role}
		if pane, ok := win.Lookup(role); ok {
			p.Rect = geometry[role]
			p.URL = pane.URL()
		} else {
			// No workspace loaded: show where the pane would go.
			p.Rect = entity.ComputeQuadrants(size, sidebar)[i]
			if fullscreen {
				p.Rect = entity.HiddenRect()
			}
		}
		panes = append(panes, p)
	}
	return panes, nil
}
