//go:build webkit_cgo

package gtkhost

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"golang.org/x/sys/unix"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/bnema/quadspace/internal/ui/mainloop"
)

// App owns the GTK application, its single window and the control pane.
type App struct {
	opts       Options
	dispatcher Dispatcher

	mainTID   atomic.Int64
	coalescer *mainloop.Coalescer

	mu     sync.RWMutex
	window *Window
}

// New creates the host. Nothing touches GTK until Run.
func New(opts Options, dispatcher Dispatcher) *App {
	a := &App{opts: opts, dispatcher: dispatcher}
	a.coalescer = mainloop.NewCoalescer(func(fn func()) {
		glib.IdleAdd(func() bool {
			fn()
			return false
		})
	})
	return a
}

// Window implements port.WindowResolver.
func (a *App) Window(label string) (port.HostWindow, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.window == nil || a.window.label != label {
		return nil, false
	}
	return a.window, true
}

// onMainThread reports whether the caller runs on the GTK thread.
func (a *App) onMainThread() bool {
	return int64(unix.Gettid()) == a.mainTID.Load()
}

// invoke runs fn on the GTK thread and waits for it. It runs inline when
// already there so main-loop callbacks cannot deadlock.
func (a *App) invoke(fn func()) {
	if a.onMainThread() {
		fn()
		return
	}
	done := make(chan struct{})
	glib.IdleAdd(func() bool {
		defer close(done)
		fn()
		return false
	})
	<-done
}

// RunScript evaluates script in the control pane without waiting for the result.
func (a *App) RunScript(ctx context.Context, script string) {
	a.mu.RLock()
	win := a.window
	a.mu.RUnlock()
	if win == nil || win.control == nil {
		return
	}
	glib.IdleAdd(func() bool {
		win.control.EvaluateJavascript(ctx, script, -1, "", "", nil)
		return false
	})
}

// Run starts the GTK main loop and blocks until the window closes or ctx ends.
// It must be called from the main goroutine.
func (a *App) Run(ctx context.Context, ready ReadyFunc) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	a.mainTID.Store(int64(unix.Gettid()))

	ctx = logging.WithComponent(ctx, "gtkhost")
	log := logging.FromContext(ctx)

	app := gtk.NewApplication(ApplicationID, gio.ApplicationFlagsNone)

	var readyErr error
	var readyOnce sync.Once
	app.ConnectActivate(func() {
		win, err := a.buildWindow(ctx, app)
		if err != nil {
			readyErr = err
			app.Quit()
			return
		}
		readyOnce.Do(func() {
			go func() {
				if ready == nil {
					return
				}
				if err := ready(ctx, win); err != nil {
					log.Error().Err(err).Msg("startup failed")
				}
			}()
		})
	})

	stop := context.AfterFunc(ctx, func() {
		glib.IdleAdd(func() bool {
			app.Quit()
			return false
		})
	})
	defer stop()

	if code := app.Run([]string{"quadspace"}); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}
	a.coalescer.Destroy()
	return readyErr
}

func (a *App) buildWindow(ctx context.Context, app *gtk.Application) (*Window, error) {
	log := logging.FromContext(ctx)

	gw := gtk.NewApplicationWindow(app)
	gw.SetTitle(a.opts.Title)
	gw.SetDefaultSize(a.opts.Width, a.opts.Height)

	scroller, fixed := newPaneContainer()
	gw.SetChild(scroller)

	win := &Window{
		app:    a,
		label:  a.opts.Label,
		gw:     gw,
		fixed:  fixed,
		panes:  make(map[entity.PaneRole]*Pane),
		width:  a.opts.Width,
		height: a.opts.Height,
	}

	control, err := a.buildControl(ctx)
	if err != nil {
		return nil, err
	}
	win.control = control
	win.adopt(entity.PaneControl, control, ControlBaseURI, entity.SidebarRect(
		entity.Size{W: float64(a.opts.Width), H: float64(a.opts.Height)}, a.opts.SidebarWidth))

	onResize := func() {
		a.coalescer.Post(mainloop.ResizeKey, win.resized)
	}
	gw.NotifyProperty("default-width", onResize)
	gw.NotifyProperty("default-height", onResize)

	a.mu.Lock()
	a.window = win
	a.mu.Unlock()

	gw.Present()
	log.Info().Str("label", win.label).Int("width", a.opts.Width).Int("height", a.opts.Height).Msg("window ready")
	return win, nil
}

// buildControl creates the control pane and routes its script messages.
func (a *App) buildControl(ctx context.Context) (*webkit.WebView, error) {
	log := logging.FromContext(ctx)

	view := webkit.NewWebView()
	if view == nil {
		return nil, fmt.Errorf("failed to create control pane: %w", entity.ErrPaneCreation)
	}
	view.Settings().SetEnableDeveloperExtras(a.opts.EnableDevTools)

	ucm := view.UserContentManager()
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		raw := value.ToJSON(0)
		// Off the main thread: commands may wait for the settle delay.
		go a.handleMessage(ctx, raw)
	})
	if !ucm.RegisterScriptMessageHandler(messaging.HandlerName, "") {
		return nil, fmt.Errorf("failed to register script message handler %q", messaging.HandlerName)
	}

	view.LoadHTML(a.opts.ControlHTML, ControlBaseURI)
	log.Debug().Msg("control pane created")
	return view, nil
}

func (a *App) handleMessage(ctx context.Context, raw string) {
	log := logging.FromContext(ctx)
	if a.dispatcher == nil {
		log.Warn().Msg("no dispatcher for control pane message")
		return
	}

	resp := a.dispatcher.Dispatch(ctx, []byte(raw))
	script, err := messaging.ResponseScript(resp)
	if err != nil {
		log.Warn().Err(err).Str("id", resp.ID).Msg("failed to encode response")
		return
	}
	a.RunScript(ctx, script)
}

// Window implements port.HostWindow over a gtk.Fixed container.
type Window struct {
	app   *App
	label string
	gw    *gtk.ApplicationWindow
	fixed *gtk.Fixed

	control *webkit.WebView

	mu      sync.Mutex
	panes   map[entity.PaneRole]*Pane
	handler port.ResizeHandler
	width   int
	height  int
}

func (w *Window) Label() string { return w.label }

func (w *Window) Pane(role entity.PaneRole) (port.Pane, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.panes[role]
	if !ok {
		return nil, false
	}
	return p, true
}

// newPaneContainer returns the window child and the Fixed the panes live in.
// Pane sizes are size requests, which GTK treats as minimums; the external
// scroll policy keeps them from becoming the window's minimum size, so the
// window can still shrink below the last layout.
func newPaneContainer() (*gtk.ScrolledWindow, *gtk.Fixed) {
	fixed := gtk.NewFixed()
	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyExternal, gtk.PolicyExternal)
	scroller.SetPropagateNaturalWidth(false)
	scroller.SetPropagateNaturalHeight(false)
	scroller.SetHExpand(true)
	scroller.SetVExpand(true)
	scroller.SetChild(fixed)
	return scroller, fixed
}

// adopt puts view into the container at bounds and publishes it with its
// initial URL. Must run on the GTK thread.
func (w *Window) adopt(role entity.PaneRole, view *webkit.WebView, url string, bounds entity.Rect) *Pane {
	p := &Pane{win: w, role: role, view: view, url: url}
	w.fixed.Put(view, bounds.X, bounds.Y)
	p.applySize(bounds.Size())

	w.mu.Lock()
	w.panes[role] = p
	w.mu.Unlock()
	return p
}

func (w *Window) CreatePane(ctx context.Context, role entity.PaneRole, url string, bounds entity.Rect) (port.Pane, error) {
	log := logging.FromContext(ctx)

	if _, exists := w.Pane(role); exists {
		return nil, fmt.Errorf("pane %s already exists: %w", role, entity.ErrPaneCreation)
	}

	var pane *Pane
	var err error
	w.app.invoke(func() {
		view := webkit.NewWebView()
		if view == nil {
			err = fmt.Errorf("webkit returned no view for %s: %w", role, entity.ErrPaneCreation)
			return
		}
		view.Settings().SetEnableDeveloperExtras(w.app.opts.EnableDevTools)
		pane = w.adopt(role, view, url, bounds)
		view.LoadURI(url)
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("pane", role.Label()).Str("url", url).Msg("pane created")
	return pane, nil
}

func (w *Window) InnerSize() (entity.Size, error) {
	var width, height int
	w.app.invoke(func() {
		width, height = w.gw.DefaultSize()
	})
	if width <= 0 || height <= 0 {
		w.mu.Lock()
		width, height = w.width, w.height
		w.mu.Unlock()
	}
	return entity.Size{W: float64(width), H: float64(height)}, nil
}

func (w *Window) SetResizeHandler(handler port.ResizeHandler) {
	w.mu.Lock()
	w.handler = handler
	w.mu.Unlock()
}

// resized runs on the GTK thread once per coalesced burst.
func (w *Window) resized() {
	width, height := w.gw.DefaultSize()

	w.mu.Lock()
	if width == w.width && height == w.height {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height
	handler := w.handler
	w.mu.Unlock()

	if handler != nil {
		handler(entity.Size{W: float64(width), H: float64(height)})
	}
}

// Pane is one WebKit view inside the container.
type Pane struct {
	win  *Window
	role entity.PaneRole
	view *webkit.WebView

	mu  sync.Mutex
	url string
}

func (p *Pane) Role() entity.PaneRole { return p.role }

func (p *Pane) SetPosition(pt entity.Point) error {
	p.win.app.invoke(func() {
		p.win.fixed.Move(p.view, pt.X, pt.Y)
	})
	return nil
}

func (p *Pane) SetSize(s entity.Size) error {
	p.win.app.invoke(func() {
		p.applySize(s)
	})
	return nil
}

// applySize must run on the GTK thread. Zero-area panes are hidden so they
// never take input while parked.
func (p *Pane) applySize(s entity.Size) {
	w := int(math.Round(s.W))
	h := int(math.Round(s.H))
	p.view.SetSizeRequest(w, h)
	p.view.SetVisible(w > 0 && h > 0)
}

func (p *Pane) Navigate(url string) error {
	p.mu.Lock()
	p.url = url
	p.mu.Unlock()

	p.win.app.invoke(func() {
		p.view.LoadURI(url)
	})
	return nil
}

func (p *Pane) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}
