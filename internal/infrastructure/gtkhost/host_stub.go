//go:build !webkit_cgo

package gtkhost

import (
	"context"

	"github.com/bnema/quadspace/internal/application/port"
)

// App is a placeholder that never resolves a window.
type App struct {
	opts Options
}

// New creates the placeholder host.
func New(opts Options, _ Dispatcher) *App {
	return &App{opts: opts}
}

// Window never finds a window in this build.
func (a *App) Window(string) (port.HostWindow, bool) { return nil, false }

// RunScript is a no-op in this build.
func (a *App) RunScript(context.Context, string) {}

// Run always fails with ErrUnavailable.
func (a *App) Run(context.Context, ReadyFunc) error { return ErrUnavailable }
