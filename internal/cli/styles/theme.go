// Package styles renders quadspace's terminal output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a Theme is built from. The dark defaults
// mirror the control pane stylesheet so the CLI and the window match.
type Palette struct {
	Background, Surface, SurfaceVariant lipgloss.Color
	Text, Muted, Accent, Border         lipgloss.Color
	Error, Warning, Success             lipgloss.Color
}

// DarkPalette is the palette used by NewTheme.
var DarkPalette = Palette{
	Background:     "#0f1115",
	Surface:        "#181b21",
	SurfaceVariant: "#242830",
	Text:           "#e6e6e6",
	Muted:          "#8a8f98",
	Accent:         "#5fb3f9",
	Border:         "#2f343d",
	Error:          "#ef4444",
	Warning:        "#f59e0b",
	Success:        "#4ade80",
}

// Theme exposes the palette colors plus the styles every command shares.
type Theme struct {
	Palette

	Title, Subtitle, Normal, Subtle, Highlight lipgloss.Style
	ErrorStyle, WarningStyle, SuccessStyle     lipgloss.Style

	ActiveButton, InactiveButton lipgloss.Style
	Badge, BadgeMuted            lipgloss.Style

	ListItem, ListItemSelected, ListItemDesc lipgloss.Style
	HelpKey, HelpDesc                        lipgloss.Style

	// Box frames a section; BoxHeader underlines its heading.
	Box, BoxHeader lipgloss.Style
	// Pane and Sidebar draw the layout preview cells.
	Pane, Sidebar  lipgloss.Style
}

// NewTheme returns the dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DarkPalette)
}

// NewThemeFromPalette derives every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	chip := func(text, bg lipgloss.Color, pad int) lipgloss.Style {
		return fg(text).Background(bg).Padding(0, pad)
	}

	return &Theme{
		Palette: p,

		Title:        fg(p.Text).Bold(true),
		Subtitle:     fg(p.Muted).Bold(true),
		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),

		ActiveButton:   chip(p.Background, p.Accent, 2).Bold(true),
		InactiveButton: chip(p.Muted, p.Surface, 2),
		Badge:          chip(p.Background, p.Accent, 1),
		BadgeMuted:     chip(p.Text, p.SurfaceVariant, 1),

		ListItem:         fg(p.Text).PaddingLeft(2),
		ListItemSelected: fg(p.Accent).Background(p.SurfaceVariant).PaddingLeft(2).Bold(true),
		ListItemDesc:     fg(p.Muted).PaddingLeft(4),
		HelpKey:          fg(p.Accent),
		HelpDesc:         fg(p.Muted),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		BoxHeader: fg(p.Text).Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border).
			MarginBottom(1),
		Pane: fg(p.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border),
		Sidebar: fg(p.Accent).Background(p.Surface),
	}
}
