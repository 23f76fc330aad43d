package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// WorkspaceItem is a workspace entry in the picker list.
type WorkspaceItem struct {
	Name   string
	Config entity.WorkspaceConfig
}

// FilterValue implements list.Item.
func (i WorkspaceItem) FilterValue() string {
	return i.Name
}

// Summary lists the configured pane hosts, e.g. "main1 github.com · main2 -".
func (i WorkspaceItem) Summary() string {
	parts := make([]string, 0, len(entity.QuadrantRoles()))
	for _, role := range entity.QuadrantRoles() {
		u, ok := i.Config.URL(role)
		if !ok || u == "" {
			u = "-"
		}
		parts = append(parts, role.Label()+" "+shortURL(u))
	}
	return strings.Join(parts, " · ")
}

func shortURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	if i := strings.IndexAny(u, "/?#"); i > 0 {
		u = u[:i]
	}
	return u
}

// WorkspaceDelegate renders workspace items with theme styling.
type WorkspaceDelegate struct {
	Theme *Theme
}

// NewWorkspaceDelegate creates a themed workspace list delegate.
func NewWorkspaceDelegate(theme *Theme) WorkspaceDelegate {
	return WorkspaceDelegate{Theme: theme}
}

// Height returns the height of each item.
func (WorkspaceDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (WorkspaceDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (WorkspaceDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d WorkspaceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ws, ok := item.(WorkspaceItem)
	if !ok {
		return
	}

	title := d.Theme.ListItem.Render(ws.Name)
	if index == m.Index() {
		title = d.Theme.ListItemSelected.Render(IconCursor + " " + ws.Name)
	}
	fmt.Fprintf(w, "%s\n%s", title, d.Theme.ListItemDesc.Render(ws.Summary()))
}

// RenderWorkspace renders one workspace with its four pane URLs.
func (t *Theme) RenderWorkspace(name string, cfg entity.WorkspaceConfig) string {
	var sb strings.Builder
	sb.WriteString(t.BoxHeader.Render(IconGrid + " " + name))
	sb.WriteString("\n")
	for _, role := range entity.QuadrantRoles() {
		u, ok := cfg.URL(role)
		value := t.Normal.Render(u)
		if !ok {
			value = t.Subtle.Render("(unset)")
		}
		fmt.Fprintf(&sb, "%s %s\n", t.Badge.Render(role.Label()), value)
	}
	return t.Box.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderWorkspaceSaved renders the confirmation after a save.
func (t *Theme) RenderWorkspaceSaved(name string) string {
	return fmt.Sprintf("\n  %s Saved workspace %s\n", t.SuccessStyle.Render(IconCheck), t.Highlight.Render(name))
}

// RenderWorkspaceDeleted renders the confirmation after a delete.
func (t *Theme) RenderWorkspaceDeleted(name string) string {
	return fmt.Sprintf("\n  %s Deleted workspace %s\n", t.SuccessStyle.Render(IconCheck), t.Highlight.Render(name))
}

// RenderError renders an error line.
func (t *Theme) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %v\n", t.ErrorStyle.Render(IconX), err)
}
