package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/quadspace/internal/cli/styles"
)

// promptModel runs a styles.ConfirmModel as its own program.
type promptModel struct {
	dialog styles.ConfirmModel
}

func (m promptModel) Init() tea.Cmd { return nil }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.dialog, _ = m.dialog.Update(msg)
	if m.dialog.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) View() string {
	if m.dialog.Done() {
		return ""
	}
	return m.dialog.View()
}

// confirm asks a yes/no question on the terminal.
func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(promptModel{dialog: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return final.(promptModel).dialog.Result(), nil
}
