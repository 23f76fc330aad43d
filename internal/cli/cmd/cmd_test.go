package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadspace/internal/cli/styles"
	"github.com/bnema/quadspace/internal/domain/build"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/quadspace/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.New(filepath.Join(t.TempDir(), "workspaces.json"), jsonstore.WithSeed(map[string]json.RawMessage{
		"Work": json.RawMessage(`{
			"main1": {"url": "https://github.com/"},
			"main2": {"url": "https://chatgpt.com/"}
		}`),
	}))
	require.NoError(t, err)
	return store
}

func TestPreviewLayout_ReconcilesWorkspace(t *testing.T) {
	size := entity.Size{W: 1264, H: 800}
	panes, err := previewLayout(testContext(), newStore(t), size, 64, false, "Work")
	require.NoError(t, err)
	require.Len(t, panes, 4)

	assert.Equal(t, entity.PaneMain1, panes[0].Role)
	assert.Equal(t, "https://github.com/", panes[0].URL)
	assert.Equal(t, entity.Rect{X: 64, Y: 0, W: 600, H: 400}, panes[0].Rect)
	assert.Equal(t, entity.Rect{X: 664, Y: 400, W: 600, H: 400}, panes[3].Rect)
}

func TestPreviewLayout_FullscreenHidesQuadrants(t *testing.T) {
	size := entity.Size{W: 1264, H: 800}
	panes, err := previewLayout(testContext(), newStore(t), size, 64, true, "Work")
	require.NoError(t, err)

	for _, p := range panes {
		assert.Zero(t, p.Rect.Area(), "%s should be hidden", p.Role)
	}
}

func TestPreviewLayout_NoWorkspace(t *testing.T) {
	size := entity.Size{W: 1000, H: 600}
	panes, err := previewLayout(testContext(), newStore(t), size, 0, false, "")
	require.NoError(t, err)

	assert.Equal(t, entity.Rect{X: 500, Y: 300, W: 500, H: 300}, panes[3].Rect)
	assert.Empty(t, panes[3].URL)
}

func TestPreviewLayout_UnknownWorkspace(t *testing.T) {
	_, err := previewLayout(testContext(), newStore(t), entity.Size{W: 800, H: 600}, 64, false, "Missing")
	assert.ErrorIs(t, err, entity.ErrWorkspaceNotFound)
}

func TestReadDocument(t *testing.T) {
	doc, err := readDocument(strings.NewReader(`{"main1": {"url": "https://x/"}}`), "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"main1": {"url": "https://x/"}}`, string(doc))

	path := filepath.Join(t.TempDir(), "ws.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	doc, err = readDocument(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(doc))

	_, err = readDocument(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRenderVersion(t *testing.T) {
	out := renderVersion(styles.NewTheme(), build.Info{Version: "1.2.3", Commit: "abc123", GoVersion: "go1.25"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "workspaces", "layout", "config", "history", "version"})
}

func TestNeedsApp(t *testing.T) {
	assert.False(t, needsApp(versionCmd))
	assert.True(t, needsApp(runCmd))
	assert.True(t, needsApp(layoutPreviewCmd))

	help := &cobra.Command{Use: "help"}
	assert.False(t, needsApp(help))
}
