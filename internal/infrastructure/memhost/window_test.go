package memhost_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/infrastructure/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_CreatePane_TracksBoundsAndURL(t *testing.T) {
	win := memhost.NewWindow("main", entity.Size{W: 800, H: 600})

	p, err := win.CreatePane(context.Background(), entity.PaneMain1, "https://a.test", entity.PlaceholderRect())
	require.NoError(t, err)
	assert.Equal(t, entity.PaneMain1, p.Role())
	assert.Equal(t, "https://a.test", p.URL())

	got, ok := win.Lookup(entity.PaneMain1)
	require.True(t, ok)
	assert.Equal(t, entity.PlaceholderRect(), got.Bounds())
	assert.Empty(t, got.Navigations())
}

func TestWindow_CreatePane_RejectsDuplicate(t *testing.T) {
	win := memhost.NewWindow("main", entity.Size{W: 800, H: 600})

	_, err := win.CreatePane(context.Background(), entity.PaneMain2, "about:blank", entity.Rect{})
	require.NoError(t, err)

	_, err = win.CreatePane(context.Background(), entity.PaneMain2, "about:blank", entity.Rect{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrPaneCreation)
}

func TestWindow_CreateHook_RejectsPane(t *testing.T) {
	win := memhost.NewWindow("main", entity.Size{W: 800, H: 600})
	win.SetCreateHook(func(_ context.Context, role entity.PaneRole, _ string) error {
		if role == entity.PaneMain3 {
			return errors.New("no gpu")
		}
		return nil
	})

	_, err := win.CreatePane(context.Background(), entity.PaneMain3, "about:blank", entity.Rect{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrPaneCreation)

	_, ok := win.Pane(entity.PaneMain3)
	assert.False(t, ok)
}

func TestWindow_Resize_CallsCurrentHandlerOnly(t *testing.T) {
	win := memhost.NewWindow("main", entity.Size{W: 800, H: 600})

	var first, second []entity.Size
	win.SetResizeHandler(func(s entity.Size) { first = append(first, s) })
	win.SetResizeHandler(func(s entity.Size) { second = append(second, s) })

	win.Resize(entity.Size{W: 1024, H: 768})

	assert.Empty(t, first)
	assert.Equal(t, []entity.Size{{W: 1024, H: 768}}, second)
	assert.Equal(t, 2, win.HandlerInstalls())

	size, err := win.InnerSize()
	require.NoError(t, err)
	assert.Equal(t, entity.Size{W: 1024, H: 768}, size)
}

func TestResolver_Window(t *testing.T) {
	win := memhost.NewWindow("main", entity.Size{})
	r := memhost.NewResolver(win)

	got, ok := r.Window("main")
	require.True(t, ok)
	assert.Equal(t, "main", got.Label())

	r.Remove("main")
	_, ok = r.Window("main")
	assert.False(t, ok)
}
