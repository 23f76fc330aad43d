// Package gtkhost hosts the panes in a GTK4 window with one WebKitGTK view per pane.
// The real implementation needs the webkit_cgo build tag; without it Run
// fails with ErrUnavailable so headless builds and tests still compile.
package gtkhost

import (
	"context"
	"errors"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
)

// ApplicationID is the GApplication id.
const ApplicationID = "io.github.bnema.quadspace"

// ControlBaseURI is the base URI the control pane HTML is loaded under.
const ControlBaseURI = "quadspace://control/"

// ErrUnavailable is returned by Run in builds without GTK support.
var ErrUnavailable = errors.New("gtk host not available: rebuild with -tags webkit_cgo")

// Dispatcher answers control pane messages.
type Dispatcher interface {
	Dispatch(ctx context.Context, raw []byte) messaging.Response
}

// Options configures the host window.
type Options struct {
	Title          string
	Width          int
	Height         int
	Label          string
	SidebarWidth   float64
	ControlHTML    string
	EnableDevTools bool
}

// ReadyFunc runs on a worker goroutine once the window and control pane exist.
type ReadyFunc func(ctx context.Context, win port.HostWindow) error
