package cmd

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/cli/model"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent workspace switches",
	Long:  `Show the workspaces activated most recently, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	svc, err := app.Services()
	if err != nil {
		return err
	}
	if svc.History == nil {
		return fmt.Errorf("history is disabled (history.enabled = false)")
	}

	if historyJSON {
		entries, err := svc.History.Recent(app.Ctx(), historyMax)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	m := model.NewHistoryModel(app.Ctx(), app.Theme, svc.History, historyMax)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run history: %w", err)
	}
	if hm, ok := final.(model.HistoryModel); ok && hm.Err() != nil {
		return hm.Err()
	}
	return nil
}
