package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
// The width fits all columns plus cell padding.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, height int) table.Model {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the activation history table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Workspace", Width: 28},
		{Title: "When", Width: 12},
		{Title: "Sidebar", Width: 8},
		{Title: "Fullscreen", Width: 10},
		{Title: "Created", Width: 8},
	}
}

// ActivationRow converts an activation to a table row.
func ActivationRow(a *entity.WorkspaceActivation, now time.Time) table.Row {
	fs := "no"
	if a.Fullscreen {
		fs = "yes"
	}
	return table.Row{
		a.Workspace,
		RelativeTime(a.ActivatedAt, now),
		fmt.Sprintf("%.0f", a.SidebarWidth),
		fs,
		fmt.Sprintf("%d", a.PanesCreated),
	}
}

// RelativeTime formats t relative to now, e.g. "5m ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
