// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// Pane is a transient handle to one embedded web view owned by the host.
// Callers obtain it by role lookup and must not keep it across operations.
// Implementations marshal every call onto the thread the toolkit requires,
// so methods are safe to call from any goroutine.
type Pane interface {
	Role() entity.PaneRole
	SetPosition(p entity.Point) error
	SetSize(s entity.Size) error
	// Navigate loads an already validated URL.
	Navigate(url string) error
	URL() string
}

// ResizeHandler receives the new inner window size.
type ResizeHandler func(size entity.Size)

// HostWindow is the native window hosting the panes.
// Like Pane, all methods are safe for concurrent use.
type HostWindow interface {
	Label() string
	// Pane looks up an existing pane by role.
	Pane(role entity.PaneRole) (Pane, bool)
	// CreatePane adds a new child pane. Fails with entity.ErrPaneCreation
	// (wrapped) when the host rejects it.
	CreatePane(ctx context.Context, role entity.PaneRole, url string, bounds entity.Rect) (Pane, error)
	InnerSize() (entity.Size, error)
	// SetResizeHandler replaces the single resize handler slot; nil clears it.
	SetResizeHandler(handler ResizeHandler)
}

// WindowResolver finds the outer window by label.
type WindowResolver interface {
	Window(label string) (HostWindow, bool)
}

// PlaceAt moves and resizes a pane in one call.
func PlaceAt(p Pane, r entity.Rect) error {
	if err := p.SetPosition(r.Origin()); err != nil {
		return err
	}
	return p.SetSize(r.Size())
}
