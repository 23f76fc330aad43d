package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/logging"
)

// applyQuadrants places the four content panes in the 2x2 grid.
// Missing panes are skipped; failures on one pane do not stop the others.
func applyQuadrants(ctx context.Context, win port.HostWindow, size entity.Size, sidebarWidth float64) error {
	log := logging.FromContext(ctx)

	rects := entity.ComputeQuadrants(size, sidebarWidth)
	var errs []error
	for i, role := range entity.QuadrantRoles() {
		pane, ok := win.Pane(role)
		if !ok {
			continue
		}
		if err := port.PlaceAt(pane, rects[i]); err != nil {
			log.Warn().Err(err).Str("pane", role.Label()).Msg("failed to place quadrant")
			errs = append(errs, fmt.Errorf("place %s: %w", role, err))
		}
	}

	log.Debug().
		Float64("window_w", size.W).
		Float64("window_h", size.H).
		Float64("sidebar", sidebarWidth).
		Msg("quadrants applied")
	return errors.Join(errs...)
}

// hideQuadrants parks every existing content pane off-screen at zero size.
func hideQuadrants(ctx context.Context, win port.HostWindow) error {
	log := logging.FromContext(ctx)

	var errs []error
	for _, role := range entity.QuadrantRoles() {
		pane, ok := win.Pane(role)
		if !ok {
			continue
		}
		if err := port.PlaceAt(pane, entity.HiddenRect()); err != nil {
			log.Warn().Err(err).Str("pane", role.Label()).Msg("failed to hide quadrant")
			errs = append(errs, fmt.Errorf("hide %s: %w", role, err))
		}
	}
	return errors.Join(errs...)
}

// placeControl moves the control pane, if the window has one.
func placeControl(ctx context.Context, win port.HostWindow, r entity.Rect) error {
	pane, ok := win.Pane(entity.PaneControl)
	if !ok {
		logging.FromContext(ctx).Debug().Msg("no control pane to place")
		return nil
	}
	if err := port.PlaceAt(pane, r); err != nil {
		return fmt.Errorf("place control pane: %w", err)
	}
	return nil
}

// fillControl stretches the control pane over the whole window.
func fillControl(ctx context.Context, win port.HostWindow, size entity.Size) error {
	return placeControl(ctx, win, entity.FullRect(size))
}

// layoutWindow applies the presentation for the given mode at the given size.
func layoutWindow(ctx context.Context, win port.HostWindow, size entity.Size, snap entity.LayoutSnapshot) error {
	if snap.Fullscreen {
		return fillControl(ctx, win, size)
	}
	return errors.Join(
		applyQuadrants(ctx, win, size, snap.SidebarWidth),
		fillControl(ctx, win, size),
	)
}

// NewResizeHandler returns the handler installed in a window's resize slot.
// It re-reads the layout state on every event so a fullscreen toggle between
// two resizes is always honoured.
func NewResizeHandler(ctx context.Context, state *entity.LayoutState, win port.HostWindow) port.ResizeHandler {
	ctx = context.WithoutCancel(ctx)
	return func(size entity.Size) {
		if err := layoutWindow(ctx, win, size, state.Snapshot()); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("resize layout incomplete")
		}
	}
}
