package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version information",
	Annotations: map[string]string{standalone: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderVersion(styles.NewTheme(), buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func renderVersion(t *styles.Theme, info build.Info) string {
	label := t.Subtle.Width(8)
	row := func(icon, name, value string) string {
		return fmt.Sprintf("%s %s %s", t.Highlight.Render(icon), label.Render(name), t.Normal.Render(value))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("quadspace"),
		row(styles.IconVersion, "version", info.Version),
		row(styles.IconInfo, "commit", info.Commit),
		row(styles.IconClock, "built", info.BuildDate),
		row(styles.IconGo, "go", info.GoVersion),
		t.Subtle.Render(build.RepoURL()),
	)
}
