package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/assets"
	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/infrastructure/config"
	"github.com/bnema/quadspace/internal/infrastructure/gtkhost"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/bnema/quadspace/internal/ui/command"
)

var runWorkspace string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the quadspace window",
	Long: `Open the GTK window with the control sidebar and the four quadrant panes.

The workspace to show first is, in order: --workspace, session.startup_workspace,
then the last workspace activated when session.restore_last_workspace is set.

Examples:
  quadspace run
  quadspace run --workspace "Programming Layout"`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runWorkspace, "workspace", "w", "", "workspace to load on start")
}

func runWindow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	log.Info().Str("version", app.BuildInfo.Short()).Msg("starting quadspace")

	svc, err := app.Services()
	if err != nil {
		return err
	}
	svc.Timer.Mark("services")
	cfg := app.Config

	router := messaging.NewRouter()
	host := gtkhost.New(gtkhost.Options{
		Title:          cfg.Window.Title,
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		Label:          cfg.Window.Label,
		SidebarWidth:   svc.State.SidebarWidth(),
		ControlHTML:    assets.ControlPage(svc.State.SidebarWidth()),
		EnableDevTools: cfg.Debug.EnableDevTools,
	}, router)

	sink := command.FanOut(command.LogSink{}, command.ScriptSink{Runner: host})
	rt, err := svc.Wire(ctx, host, sink, router)
	if err != nil {
		return err
	}

	if err := svc.WatchWorkspaces(ctx, sink); err != nil {
		log.Warn().Err(err).Msg("workspace file watcher disabled")
	}
	app.Manager.OnConfigChange(func(next *config.Config) {
		svc.ApplyConfigChange(ctx, rt, next)
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watcher disabled")
	}

	svc.Timer.Mark("wiring")

	return host.Run(ctx, func(ctx context.Context, _ port.HostWindow) error {
		svc.Timer.Mark("window")
		svc.Timer.Log(ctx)

		task, err := svc.Restore(ctx, rt, runWorkspace)
		if err != nil {
			log.Warn().Err(err).Msg("startup workspace not loaded")
			return nil
		}
		if task != nil {
			log.Debug().Str("workspace", task.Workspace()).Msg("startup reconcile started")
		}
		return nil
	})
}
