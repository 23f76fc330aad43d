// Package cmd holds the quadspace command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/cli"
	"github.com/bnema/quadspace/internal/domain/build"
)

// standalone marks commands that run without loading config or logging.
const standalone = "standalone"

var (
	app       *cli.App
	buildInfo build.Info

	rootFlags struct {
		config  string
		verbose bool
	}
)

var rootCmd = &cobra.Command{
	Use:   "quadspace",
	Short: "Four web apps in one window, switched by workspace",
	Long: `quadspace shows four web panes in a 2x2 grid next to a sidebar listing
saved workspaces. A workspace assigns a URL to each quadrant; switching reuses
the open panes and only navigates those whose URL differs.

Start the window with 'quadspace run'. The other commands edit workspaces,
preview layouts, read activation history and maintain the config file.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
	PersistentPostRun: func(*cobra.Command, []string) {
		if app != nil {
			_ = app.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.config, "config", "", "config file (default $XDG_CONFIG_HOME/quadspace/config.toml)")
	flags.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "log at debug level")
}

func loadApp(cmd *cobra.Command, _ []string) error {
	if !needsApp(cmd) {
		return nil
	}
	a, err := cli.NewApp(cli.Options{ConfigFile: rootFlags.config, Verbose: rootFlags.verbose})
	if err != nil {
		return fmt.Errorf("failed to start quadspace: %w", err)
	}
	a.BuildInfo = buildInfo
	app = a
	return nil
}

// needsApp is false for cobra's generated commands and anything annotated
// as standalone.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch {
		case c.Annotations[standalone] != "":
			return false
		case c.Name() == "help" || c.Name() == cobra.ShellCompRequestCmd || c.Name() == "completion":
			return false
		}
	}
	return true
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the app loaded for the running command.
func GetApp() *cli.App {
	return app
}

// SetBuildInfo records ldflags-provided build metadata.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
