// Package model holds the Bubble Tea models behind the interactive commands.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/entity"
)

// PickerModel lists workspaces and lets the user pick or delete one.
type PickerModel struct {
	list    list.Model
	help    help.Model
	keys    styles.PickerKeyMap
	confirm *styles.ConfirmModel

	selected string
	status   string
	err      error
	width    int
	height   int

	ctx   context.Context
	uc    *usecase.ManageWorkspacesUseCase
	theme *styles.Theme
}

// NewPickerModel creates the picker.
func NewPickerModel(ctx context.Context, theme *styles.Theme, uc *usecase.ManageWorkspacesUseCase) PickerModel {
	l := list.New(nil, styles.NewWorkspaceDelegate(theme), 80, 20)
	l.Title = "Workspaces"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return PickerModel{
		list:   l,
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultPickerKeyMap(),
		ctx:    ctx,
		uc:     uc,
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// workspacesLoadedMsg is sent when the store has been read.
type workspacesLoadedMsg struct {
	items []list.Item
	err   error
}

// workspaceDeletedMsg is sent after a delete.
type workspaceDeletedMsg struct {
	name string
	err  error
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return m.load
}

func (m PickerModel) load() tea.Msg {
	all, err := m.uc.GetAll(m.ctx)
	if err != nil {
		return workspacesLoadedMsg{err: err}
	}
	return workspacesLoadedMsg{items: WorkspaceItems(all)}
}

// WorkspaceItems converts stored documents to sorted list items.
func WorkspaceItems(all map[string]json.RawMessage) []list.Item {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, styles.WorkspaceItem{
			Name:   name,
			Config: entity.ParseWorkspaceConfig(all[name]),
		})
	}
	return items
}

func (m PickerModel) deleteWorkspace(name string) tea.Cmd {
	return func() tea.Msg {
		return workspaceDeletedMsg{name: name, err: m.uc.Delete(m.ctx, name)}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height-4, 4))
		return m, nil

	case workspacesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		return m, m.list.SetItems(msg.items)

	case workspaceDeletedMsg:
		if msg.err != nil {
			m.status = m.theme.ErrorStyle.Render(msg.err.Error())
			return m, nil
		}
		m.status = m.theme.SuccessStyle.Render(fmt.Sprintf("%s deleted %s", styles.IconCheck, msg.name))
		return m, m.load

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(styles.WorkspaceItem); ok {
				m.selected = item.Name
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(styles.WorkspaceItem); ok {
				c := styles.NewConfirm(m.theme, fmt.Sprintf("Delete workspace %q?", item.Name))
				m.confirm = &c
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, _ := m.confirm.Update(msg)
	if !c.Done() {
		m.confirm = &c
		return m, nil
	}
	m.confirm = nil
	if !c.Result() {
		return m, nil
	}
	item, ok := m.list.SelectedItem().(styles.WorkspaceItem)
	if !ok {
		return m, nil
	}
	return m, m.deleteWorkspace(item.Name)
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.err != nil {
		return m.theme.RenderError(m.err)
	}
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	parts := []string{m.list.View()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Selected returns the picked workspace, or "" if the picker was quit.
func (m PickerModel) Selected() string {
	return m.selected
}

// Err returns the load error, if any.
func (m PickerModel) Err() error {
	return m.err
}
