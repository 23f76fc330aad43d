package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/infrastructure/config"
)

var (
	configDryRun bool
	configYes    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where quadspace keeps its files, print the effective config, and migrate old config files.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, workspace and history file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		history := ""
		if app.Config.History.Enabled {
			history = app.Config.History.DatabasePath
		}
		r := styles.NewConfigRenderer(app.Theme)
		fmt.Fprint(cmd.OutOrStdout(), r.RenderPaths(app.Manager.GetConfigFile(), app.Config.Workspaces.Path, history))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as TOML",
	Long:  `Print the config after defaults, the config file and QUADSPACE_* environment variables are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		data, err := config.EncodeTOML(app.Config)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing settings and drop unknown ones",
	Long: `Compare your config file with the current defaults. Missing keys are added
with their default value, unknown keys are removed, existing values are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configMigrateCmd)

	configMigrateCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "show the changes without writing")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	out := cmd.OutOrStdout()

	renderer := styles.NewConfigRenderer(app.Theme)
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(app.Manager.GetConfigFile()))

	detected, err := uc.DetectChanges(ctx)
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprint(out, renderer.RenderChanges(app.Manager.GetConfigFile(), detected.Changes))
	if !detected.HasChanges {
		return nil
	}
	if configDryRun {
		fmt.Fprint(out, renderer.RenderDryRun())
		return nil
	}

	if !configYes {
		ok, err := confirm(app.Theme, "Apply these changes?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprint(out, renderer.RenderMigrationSuccess(len(result.Applied), result.ConfigFile))
	return nil
}
