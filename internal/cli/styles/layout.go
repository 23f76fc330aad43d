package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// previewColumns is the terminal width the window is scaled to.
const previewColumns = 72

// PaneGeometry is one pane's placement in a layout preview.
type PaneGeometry struct {
	Role entity.PaneRole
	Rect entity.Rect
	URL  string
}

// RenderLayoutPreview draws the window scaled to the terminal and lists
// each pane's rect.
func (t *Theme) RenderLayoutPreview(window entity.Size, sidebar float64, fullscreen bool, panes []PaneGeometry) string {
	scaleX := window.W / previewColumns
	if scaleX <= 0 {
		scaleX = 1
	}
	// Terminal cells are roughly twice as tall as wide.
	scaleY := scaleX * 2

	cols := func(px float64) int { return max(int(math.Round(px/scaleX)), 0) }
	rows := func(px float64) int { return max(int(math.Round(px/scaleY)), 0) }

	var drawing string
	if fullscreen {
		drawing = t.Sidebar.
			Width(cols(window.W)).
			Height(rows(window.H)).
			Render("control (fullscreen)")
	} else {
		byRole := make(map[entity.PaneRole]PaneGeometry, len(panes))
		for _, p := range panes {
			byRole[p.Role] = p
		}
		cell := func(role entity.PaneRole) string {
			r, _ := entity.QuadrantRect(role, window, sidebar)
			label := role.Label()
			if p, ok := byRole[role]; ok && p.URL != "" {
				label += "\n" + shortURL(p.URL)
			}
			// Border takes two cells each way.
			return t.Pane.
				Width(max(cols(r.W)-2, 1)).
				Height(max(rows(r.H)-2, 1)).
				Render(label)
		}
		grid := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cell(entity.PaneMain1), cell(entity.PaneMain2)),
			lipgloss.JoinHorizontal(lipgloss.Top, cell(entity.PaneMain3), cell(entity.PaneMain4)),
		)
		side := t.Sidebar.
			Width(cols(sidebar)).
			Height(lipgloss.Height(grid)).
			Render("")
		if cols(sidebar) == 0 {
			drawing = grid
		} else {
			drawing = lipgloss.JoinHorizontal(lipgloss.Top, side, grid)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n\n", t.Title.Render(fmt.Sprintf("%.0fx%.0f", window.W, window.H)),
		t.Subtle.Render(fmt.Sprintf("sidebar %.0f, fullscreen %t", sidebar, fullscreen)))
	sb.WriteString(drawing)
	sb.WriteString("\n\n")
	for _, p := range panes {
		fmt.Fprintf(&sb, "%s %s %s\n",
			t.Badge.Render(fmt.Sprintf("%-7s", p.Role.Label())),
			t.Normal.Render(formatRect(p.Rect)),
			t.Subtle.Render(p.URL))
	}
	return sb.String()
}

func formatRect(r entity.Rect) string {
	return fmt.Sprintf("x=%-6.0f y=%-6.0f w=%-6.0f h=%-6.0f", r.X, r.Y, r.W, r.H)
}
