package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadspace/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config, workspace and history file locations.
func (r *ConfigRenderer) RenderPaths(configFile, workspacesFile, historyDB string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Subtitle.Width(12)
	pathStyle := r.theme.Normal

	var sb strings.Builder
	sb.WriteString("\n")
	row := func(icon, label, path string) {
		if path == "" {
			path = r.theme.Subtle.Render("(disabled)")
		} else {
			path = pathStyle.Render(path)
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", iconStyle.Render(icon), labelStyle.Render(label), path)
	}
	row(IconConfig, "config", configFile)
	row(IconFolder, "workspaces", workspacesFile)
	row(IconDatabase, "history", historyDB)
	return sb.String()
}

// RenderChanges renders detected config changes as a +/- list.
func (r *ConfigRenderer) RenderChanges(path string, changes []port.KeyChange) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	addStyle := r.theme.SuccessStyle
	removeStyle := r.theme.WarningStyle
	valueStyle := r.theme.Subtle

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	if len(changes) == 0 {
		fmt.Fprintf(&sb, "  %s Config is up to date\n", r.theme.SuccessStyle.Render(IconCheck))
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n  Changes (%d):\n", len(changes))
	for _, c := range changes {
		switch c.Type {
		case port.KeyChangeAdded:
			fmt.Fprintf(&sb, "    %s %s = %s\n",
				addStyle.Render(IconPlus), addStyle.Render(c.Key), valueStyle.Render(c.Value))
		case port.KeyChangeRemoved:
			fmt.Fprintf(&sb, "    %s %s = %s %s\n",
				removeStyle.Render(IconMinus), removeStyle.Render(c.Key), valueStyle.Render(c.Value),
				valueStyle.Render("(unknown)"))
		}
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Applied %s changes to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderDryRun renders the footer shown when nothing was written.
func (r *ConfigRenderer) RenderDryRun() string {
	return fmt.Sprintf("\n  %s Dry run, nothing written\n", r.theme.Subtle.Render(IconInfo))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
