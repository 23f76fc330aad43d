package port

import (
	"context"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// EventKind classifies events emitted by background layout work.
type EventKind string

const (
	EventNavigationFailed   EventKind = "navigation_failed"
	EventPaneCreationFailed EventKind = "pane_creation_failed"
	EventHostWindowMissing  EventKind = "host_window_missing"
	EventLayoutFailed       EventKind = "layout_failed"
	EventReconcileCompleted EventKind = "reconcile_completed"
	EventReconcileCancelled EventKind = "reconcile_cancelled"
	EventWorkspacesChanged  EventKind = "workspaces_changed"
)

// Event is a structured notification about layout work the caller did not wait for.
type Event struct {
	Kind      EventKind
	Workspace string
	Pane      *entity.PaneRole
	URL       string
	Err       error
}

// PaneLabel returns the pane label or "" when the event is not pane-specific.
func (e Event) PaneLabel() string {
	if e.Pane == nil {
		return ""
	}
	return e.Pane.Label()
}

// EventSink receives events. Implementations must not block for long.
type EventSink interface {
	Emit(ctx context.Context, event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ctx context.Context, event Event)

// Emit calls f(ctx, event).
func (f EventSinkFunc) Emit(ctx context.Context, event Event) { f(ctx, event) }
