// Package memhost is a headless HostWindow that keeps pane geometry in memory.
// It backs the CLI layout preview and the use case tests.
package memhost

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
)

// Pane is an in-memory pane.
type Pane struct {
	mu          sync.Mutex
	role        entity.PaneRole
	bounds      entity.Rect
	url         string
	navigations []string
}

var _ port.Pane = (*Pane)(nil)

func (p *Pane) Role() entity.PaneRole { return p.role }

func (p *Pane) SetPosition(pt entity.Point) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds.X, p.bounds.Y = pt.X, pt.Y
	return nil
}

func (p *Pane) SetSize(s entity.Size) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds.W, p.bounds.H = s.W, s.H
	return nil
}

func (p *Pane) Navigate(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
	p.navigations = append(p.navigations, url)
	return nil
}

func (p *Pane) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

// Bounds returns the current geometry.
func (p *Pane) Bounds() entity.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds
}

// Navigations lists every Navigate call, oldest first. Creation is not counted.
func (p *Pane) Navigations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.navigations...)
}

// CreateHook runs inside CreatePane before the pane is added.
// Returning an error rejects the pane.
type CreateHook func(ctx context.Context, role entity.PaneRole, url string) error

// Window is an in-memory HostWindow.
type Window struct {
	mu       sync.Mutex
	label    string
	size     entity.Size
	panes    map[entity.PaneRole]*Pane
	handler  port.ResizeHandler
	handlers int
	hook     CreateHook
	sizeErr  error
}

var _ port.HostWindow = (*Window)(nil)

// NewWindow creates an empty window of the given inner size.
func NewWindow(label string, size entity.Size) *Window {
	return &Window{
		label: label,
		size:  size,
		panes: make(map[entity.PaneRole]*Pane),
	}
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

// Lookup is Pane with the concrete type, for inspection.
func (w *Window) Lookup(role entity.PaneRole) (*Pane, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.panes[role]
	return p, ok
}

func (w *Window) CreatePane(ctx context.Context, role entity.PaneRole, url string, bounds entity.Rect) (port.Pane, error) {
	w.mu.Lock()
	hook := w.hook
	w.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, role, url); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrPaneCreation, role, err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.panes[role]; exists {
		return nil, fmt.Errorf("%w: %s already exists", entity.ErrPaneCreation, role)
	}
	p := &Pane{role: role, bounds: bounds, url: url}
	w.panes[role] = p
	return p, nil
}

func (w *Window) InnerSize() (entity.Size, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sizeErr != nil {
		return entity.Size{}, w.sizeErr
	}
	return w.size, nil
}

// FailInnerSize makes InnerSize return err until called again with nil.
func (w *Window) FailInnerSize(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sizeErr = err
}

func (w *Window) SetResizeHandler(handler port.ResizeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handler = handler
	if handler != nil {
		w.handlers++
	}
}

// SetCreateHook installs a hook run on every CreatePane call.
func (w *Window) SetCreateHook(hook CreateHook) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hook = hook
}

// HasResizeHandler reports whether the handler slot is occupied.
func (w *Window) HasResizeHandler() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handler != nil
}

// HandlerInstalls counts how many non-nil handlers were ever installed.
func (w *Window) HandlerInstalls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handlers
}

// Resize changes the inner size and calls the resize handler, if any.
func (w *Window) Resize(size entity.Size) {
	w.mu.Lock()
	w.size = size
	handler := w.handler
	w.mu.Unlock()

	if handler != nil {
		handler(size)
	}
}

// Geometry returns the bounds of every pane.
func (w *Window) Geometry() map[entity.PaneRole]entity.Rect {
	w.mu.Lock()
	panes := make([]*Pane, 0, len(w.panes))
	for _, p := range w.panes {
		panes = append(panes, p)
	}
	w.mu.Unlock()

	out := make(map[entity.PaneRole]entity.Rect, len(panes))
	for _, p := range panes {
		out[p.role] = p.Bounds()
	}
	return out
}

// Roles lists the existing panes in role order.
func (w *Window) Roles() []entity.PaneRole {
	w.mu.Lock()
	defer w.mu.Unlock()
	roles := make([]entity.PaneRole, 0, len(w.panes))
	for r := range w.panes {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Resolver maps labels to in-memory windows.
type Resolver struct {
	mu      sync.RWMutex
	windows map[string]*Window
}

var _ port.WindowResolver = (*Resolver)(nil)

// NewResolver creates a resolver holding the given windows.
func NewResolver(windows ...*Window) *Resolver {
	r := &Resolver{windows: make(map[string]*Window, len(windows))}
	for _, w := range windows {
		r.windows[w.Label()] = w
	}
	return r
}

func (r *Resolver) Window(label string) (port.HostWindow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

// Add registers a window, replacing any with the same label.
func (r *Resolver) Add(w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.Label()] = w
}

// Remove forgets a window.
func (r *Resolver) Remove(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, label)
}
