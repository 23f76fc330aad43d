//go:build webkit_cgo

package gtkhost

import (
	"runtime"
	"testing"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadspace/internal/domain/entity"
)

func initGTK(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	if !gtk.InitCheck() {
		t.Skip("no display available")
	}
}

func TestPaneContainer_ChildRequestsDoNotPinWindowSize(t *testing.T) {
	initGTK(t)

	scroller, fixed := newPaneContainer()
	control := gtk.NewBox(gtk.OrientationVertical, 0)
	control.SetSizeRequest(1200, 800)
	fixed.Put(control, 0, 0)
	quadrant := gtk.NewBox(gtk.OrientationVertical, 0)
	quadrant.SetSizeRequest(568, 400)
	fixed.Put(quadrant, 632, 400)

	fixedMinW, _, _, _ := fixed.Measure(gtk.OrientationHorizontal, -1)
	assert.GreaterOrEqual(t, fixedMinW, 1200, "the Fixed itself still encloses its children")

	minW, _, _, _ := scroller.Measure(gtk.OrientationHorizontal, -1)
	minH, _, _, _ := scroller.Measure(gtk.OrientationVertical, -1)
	assert.Less(t, minW, 1200)
	assert.Less(t, minH, 800)
}

func TestWindow_AdoptPublishesURL(t *testing.T) {
	initGTK(t)

	_, fixed := newPaneContainer()
	w := &Window{fixed: fixed, panes: make(map[entity.PaneRole]*Pane)}

	w.adopt(entity.PaneMain2, webkit.NewWebView(), "https://b.test", entity.Rect{W: 10, H: 10})

	p, ok := w.Pane(entity.PaneMain2)
	require.True(t, ok)
	assert.Equal(t, "https://b.test", p.URL())
	assert.Equal(t, entity.PaneMain2, p.Role())
}
