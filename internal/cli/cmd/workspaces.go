package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/cli/model"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/url"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
)

var (
	workspacesJSON bool
	saveFile       string
	savePanes      = make(map[entity.PaneRole]*string)
	deleteYes      bool
)

var workspacesCmd = &cobra.Command{
	Use:     "workspaces",
	Aliases: []string{"ws"},
	Short:   "Pick a workspace and open it",
	Long: `Browse saved workspaces interactively. Enter opens the window on the
selected workspace; d deletes it.`,
	RunE: runWorkspacePicker,
}

var workspacesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workspaces",
	Args:  cobra.NoArgs,
	RunE:  runWorkspacesList,
}

var workspacesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the pane URLs of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspacesShow,
}

var workspacesSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or replace a workspace",
	Long: `Create or replace a workspace from pane flags or a JSON document.

Examples:
  quadspace workspaces save Work --main1 github.com --main2 https://chatgpt.com/
  quadspace workspaces save Work --file work.json
  echo '{"main1": {"url": "https://example.com/"}}' | quadspace workspaces save Work --file -`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkspacesSave,
}

var workspacesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspacesDelete,
}

var workspacesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the workspace file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := jsonstore.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.AddCommand(workspacesListCmd, workspacesShowCmd, workspacesSaveCmd, workspacesDeleteCmd, workspacesSchemaCmd)

	workspacesListCmd.Flags().BoolVar(&workspacesJSON, "json", false, "print the raw workspace file")

	workspacesSaveCmd.Flags().StringVarP(&saveFile, "file", "f", "", "read the workspace document from a file (- for stdin)")
	for _, role := range entity.QuadrantRoles() {
		savePanes[role] = workspacesSaveCmd.Flags().String(role.Label(), "", fmt.Sprintf("URL of the %s pane", role.Label()))
	}
	workspacesSaveCmd.MarkFlagsMutuallyExclusive("file", "main1")
	workspacesSaveCmd.MarkFlagsMutuallyExclusive("file", "main2")
	workspacesSaveCmd.MarkFlagsMutuallyExclusive("file", "main3")
	workspacesSaveCmd.MarkFlagsMutuallyExclusive("file", "main4")

	workspacesDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "do not ask for confirmation")
}

func workspacesUseCase() (*usecase.ManageWorkspacesUseCase, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	svc, err := app.Services()
	if err != nil {
		return nil, err
	}
	return svc.Workspaces, nil
}

func runWorkspacePicker(cmd *cobra.Command, args []string) error {
	uc, err := workspacesUseCase()
	if err != nil {
		return err
	}
	app := GetApp()

	p := tea.NewProgram(model.NewPickerModel(app.Ctx(), app.Theme, uc), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	picker, ok := final.(model.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if picker.Err() != nil {
		return picker.Err()
	}
	if picker.Selected() == "" {
		return nil
	}

	runWorkspace = picker.Selected()
	return runWindow(cmd, args)
}

func runWorkspacesList(cmd *cobra.Command, _ []string) error {
	uc, err := workspacesUseCase()
	if err != nil {
		return err
	}
	all, err := uc.GetAll(GetApp().Ctx())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if workspacesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runWorkspacesShow(cmd *cobra.Command, args []string) error {
	uc, err := workspacesUseCase()
	if err != nil {
		return err
	}
	doc, err := uc.Get(GetApp().Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), GetApp().Theme.RenderWorkspace(args[0], entity.ParseWorkspaceConfig(doc)))
	return nil
}

func runWorkspacesSave(cmd *cobra.Command, args []string) error {
	uc, err := workspacesUseCase()
	if err != nil {
		return err
	}
	ctx := GetApp().Ctx()
	name := args[0]

	if saveFile != "" {
		doc, err := readDocument(cmd.InOrStdin(), saveFile)
		if err != nil {
			return err
		}
		err = uc.Save(ctx, name, doc)
		if err != nil {
			return err
		}
	} else {
		cfg := make(entity.WorkspaceConfig)
		for role, value := range savePanes {
			if value != nil && cmd.Flags().Changed(role.Label()) {
				cfg[role] = url.Normalize(*value)
			}
		}
		if len(cfg) == 0 {
			return fmt.Errorf("nothing to save: pass --file or at least one of --main1..--main4")
		}
		if err := uc.SaveConfig(ctx, name, cfg); err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), GetApp().Theme.RenderWorkspaceSaved(name))
	return nil
}

func readDocument(stdin io.Reader, path string) (json.RawMessage, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func runWorkspacesDelete(cmd *cobra.Command, args []string) error {
	uc, err := workspacesUseCase()
	if err != nil {
		return err
	}
	app := GetApp()
	name := args[0]

	if !deleteYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("Delete workspace %q?", name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := uc.Delete(app.Ctx(), name); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), app.Theme.RenderWorkspaceDeleted(name))
	return nil
}
