package command_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/infrastructure/memhost"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/bnema/quadspace/internal/ui/command"
)

const testWindow = "quadspace_test"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fixture struct {
	store  *jsonstore.Store
	state  *entity.LayoutState
	win    *memhost.Window
	cmds   *command.Commands
	router *messaging.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := jsonstore.New(filepath.Join(t.TempDir(), "workspaces.json"), jsonstore.WithSeed(nil))
	require.NoError(t, err)

	f := &fixture{
		store: store,
		state: entity.NewLayoutState(64),
		win:   memhost.NewWindow(testWindow, entity.Size{W: 1200, H: 800}),
	}
	_, err = f.win.CreatePane(context.Background(), entity.PaneControl, "quadspace://control", entity.Rect{})
	require.NoError(t, err)

	resolver := memhost.NewResolver(f.win)
	f.cmds = command.New(
		usecase.NewManageWorkspacesUseCase(store),
		usecase.NewLoadWorkspaceUseCase(store, f.state, resolver, command.LogSink{},
			usecase.LoadWorkspaceOptions{WindowLabel: testWindow}),
		usecase.NewFullscreenUseCase(f.state, resolver, testWindow, 0),
	)
	f.router = messaging.NewRouter()
	require.NoError(t, command.Register(testContext(), f.router, f.cmds))
	return f
}

func (f *fixture) send(t *testing.T, msgType string, payload any) messaging.Response {
	t.Helper()
	req := map[string]any{"id": "req-1", "type": msgType}
	if payload != nil {
		req["payload"] = payload
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	resp := f.router.Dispatch(testContext(), raw)
	assert.Equal(t, "req-1", resp.ID)
	return resp
}

func TestRegister_AllVerbs(t *testing.T) {
	f := newFixture(t)

	assert.ElementsMatch(t, []string{
		"getAllWorkspaces", "saveWorkspace", "deleteWorkspace",
		"loadWorkspace", "updateSidebarWidth", "toggleFullscreen",
	}, f.router.Types())
}

func TestCommands_SaveGetDelete(t *testing.T) {
	f := newFixture(t)

	resp := f.send(t, command.TypeGetAllWorkspaces, nil)
	require.True(t, resp.OK, resp.Error)
	assert.Empty(t, resp.Result)

	resp = f.send(t, command.TypeSaveWorkspace, map[string]any{
		"name":   "Work",
		"config": map[string]any{"main1": map[string]string{"url": "https://a.test"}},
	})
	require.True(t, resp.OK, resp.Error)

	resp = f.send(t, command.TypeGetAllWorkspaces, nil)
	require.True(t, resp.OK, resp.Error)
	all, ok := resp.Result.(map[string]json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"main1":{"url":"https://a.test"}}`, string(all["Work"]))

	resp = f.send(t, command.TypeDeleteWorkspace, map[string]string{"name": "Work"})
	require.True(t, resp.OK, resp.Error)
	resp = f.send(t, command.TypeDeleteWorkspace, map[string]string{"name": "Work"})
	assert.True(t, resp.OK, "deleting a missing workspace is a no-op")

	_, err := f.store.Get(testContext(), "Work")
	assert.ErrorIs(t, err, entity.ErrWorkspaceNotFound)
}

func TestCommands_SaveWorkspace_Invalid(t *testing.T) {
	f := newFixture(t)

	resp := f.send(t, command.TypeSaveWorkspace, map[string]any{"name": " ", "config": map[string]any{}})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "invalid workspace")

	resp = f.send(t, command.TypeSaveWorkspace, map[string]any{"name": "Work", "config": []int{1}})
	assert.False(t, resp.OK)

	resp = f.send(t, command.TypeSaveWorkspace, nil)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "missing payload")
}

func TestCommands_LoadWorkspace(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Save(testContext(), "Work",
		json.RawMessage(`{"main1":{"url":"https://a.test"},"main2":{"url":"https://b.test"}}`)))

	task, err := f.cmds.LoadWorkspace(testContext(), "Work")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, task.Wait(ctx))

	geo := f.win.Geometry()
	assert.Equal(t, entity.Rect{X: 64, Y: 0, W: 568, H: 400}, geo[entity.PaneMain1])
	assert.Equal(t, entity.Rect{X: 632, Y: 400, W: 568, H: 400}, geo[entity.PaneMain4])
	assert.Equal(t, entity.Rect{W: 1200, H: 800}, geo[entity.PaneControl])
}

func TestCommands_LoadWorkspace_ViaRouter(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Save(testContext(), "Work", json.RawMessage(`{"main3":{"url":"https://c.test"}}`)))

	resp := f.send(t, command.TypeLoadWorkspace, map[string]string{"name": "Work"})
	require.True(t, resp.OK, resp.Error)

	require.Eventually(t, func() bool {
		p, ok := f.win.Lookup(entity.PaneMain3)
		return ok && p.URL() == "https://c.test" && f.win.HasResizeHandler()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestCommands_LoadWorkspace_NotFound(t *testing.T) {
	f := newFixture(t)

	resp := f.send(t, command.TypeLoadWorkspace, map[string]string{"name": "Missing"})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "workspace not found")

	_, err := f.cmds.LoadWorkspace(testContext(), "Missing")
	assert.True(t, errors.Is(err, entity.ErrWorkspaceNotFound))
}

func TestCommands_UpdateSidebarWidth(t *testing.T) {
	f := newFixture(t)
	for _, role := range entity.QuadrantRoles() {
		_, err := f.win.CreatePane(context.Background(), role, "about:blank", entity.PlaceholderRect())
		require.NoError(t, err)
	}

	resp := f.send(t, command.TypeUpdateSidebarWidth, map[string]float64{"width": 100})
	require.True(t, resp.OK, resp.Error)

	assert.Equal(t, 100.0, f.state.SidebarWidth())
	geo := f.win.Geometry()
	assert.Equal(t, entity.Rect{X: 100, Y: 0, W: 550, H: 400}, geo[entity.PaneMain1])
	assert.Equal(t, entity.Rect{W: 1200, H: 800}, geo[entity.PaneControl])

	resp = f.send(t, command.TypeUpdateSidebarWidth, map[string]float64{"width": -1})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "invalid sidebar width")

	resp = f.send(t, command.TypeUpdateSidebarWidth, map[string]any{})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "width is required")
}

func TestCommands_ToggleFullscreen(t *testing.T) {
	f := newFixture(t)
	for _, role := range entity.QuadrantRoles() {
		_, err := f.win.CreatePane(context.Background(), role, "about:blank", entity.PlaceholderRect())
		require.NoError(t, err)
	}

	resp := f.send(t, command.TypeToggleFullscreen, map[string]bool{"fullscreen": true})
	require.True(t, resp.OK, resp.Error)
	assert.True(t, f.state.Fullscreen())
	for _, role := range entity.QuadrantRoles() {
		assert.Equal(t, entity.HiddenRect(), f.win.Geometry()[role])
	}

	resp = f.send(t, command.TypeToggleFullscreen, map[string]bool{"fullscreen": false})
	require.True(t, resp.OK, resp.Error)
	assert.False(t, f.state.Fullscreen())
	assert.Equal(t, entity.Rect{X: 64, Y: 0, W: 568, H: 400}, f.win.Geometry()[entity.PaneMain1])

	resp = f.send(t, command.TypeToggleFullscreen, map[string]any{"enabled": true})
	assert.False(t, resp.OK)
}

func TestFanOut(t *testing.T) {
	var got []string
	a := port.EventSinkFunc(func(_ context.Context, e port.Event) { got = append(got, "a:"+string(e.Kind)) })
	b := port.EventSinkFunc(func(_ context.Context, e port.Event) { got = append(got, "b:"+string(e.Kind)) })

	sink := command.FanOut(a, nil, b, command.LogSink{})
	sink.Emit(testContext(), port.Event{Kind: port.EventReconcileCompleted, Workspace: "Work"})

	assert.Equal(t, []string{"a:reconcile_completed", "b:reconcile_completed"}, got)
}

func TestNewEventMessage(t *testing.T) {
	role := entity.PaneMain2
	msg := command.NewEventMessage(port.Event{
		Kind:      port.EventNavigationFailed,
		Workspace: "Work",
		Pane:      &role,
		URL:       "not a url",
		Err:       errors.New("contains whitespace"),
	})

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "navigation_failed",
		"workspace": "Work",
		"pane": "main2",
		"url": "not a url",
		"error": "contains whitespace"
	}`, string(data))
}

type scriptRecorder struct {
	scripts []string
}

func (r *scriptRecorder) RunScript(_ context.Context, script string) {
	r.scripts = append(r.scripts, script)
}

func TestScriptSink(t *testing.T) {
	rec := &scriptRecorder{}
	sink := command.ScriptSink{Runner: rec}

	sink.Emit(testContext(), port.Event{Kind: port.EventWorkspacesChanged})

	require.Len(t, rec.scripts, 1)
	assert.Contains(t, rec.scripts[0], `window.__quadspaceEvent({"kind":"workspaces_changed"})`)
}
