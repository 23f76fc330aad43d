package model

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/entity"
)

// HistoryModel shows recent workspace activations in a table.
type HistoryModel struct {
	table table.Model
	quit  key.Binding

	entries []*entity.WorkspaceActivation
	err     error
	loaded  bool

	ctx   context.Context
	uc    *usecase.ActivationHistoryUseCase
	limit int
	now   func() time.Time
	theme *styles.Theme
}

// NewHistoryModel creates the history browser.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, uc *usecase.ActivationHistoryUseCase, limit int) HistoryModel {
	return HistoryModel{
		table: styles.NewStyledTable(theme, styles.HistoryTableColumns(), nil, 15),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ctx:   ctx,
		uc:    uc,
		limit: limit,
		now:   time.Now,
		theme: theme,
	}
}

type historyLoadedMsg struct {
	entries []*entity.WorkspaceActivation
	err     error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.uc.Recent(m.ctx, m.limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.entries = msg.entries
		now := m.now()
		rows := make([]table.Row, 0, len(msg.entries))
		for _, e := range msg.entries {
			rows = append(rows, styles.ActivationRow(e, now))
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-4, 3))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.err != nil {
		return m.theme.RenderError(m.err)
	}
	if !m.loaded {
		return m.theme.Subtle.Render("Loading history...")
	}
	if len(m.entries) == 0 {
		return m.theme.Subtle.Render("No workspace activations yet.")
	}
	footer := m.theme.Subtle.Render(fmt.Sprintf("%d activations • q to quit", len(m.entries)))
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), footer)
}

// Entries returns the loaded activations.
func (m HistoryModel) Entries() []*entity.WorkspaceActivation {
	return m.entries
}

// Err returns the load error, if any.
func (m HistoryModel) Err() error {
	return m.err
}
