package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/logging"
)

// DefaultSettleDelay is how long SetFullscreen waits for the window system
// to catch up with a presentation change.
const DefaultSettleDelay = 50 * time.Millisecond

// FullscreenUseCase switches between the sidebar + quadrants presentation and
// the control pane alone, and applies sidebar width changes.
type FullscreenUseCase struct {
	state       *entity.LayoutState
	windows     port.WindowResolver
	windowLabel string
	settleDelay time.Duration
}

// NewFullscreenUseCase creates the controller. A negative settleDelay
// selects DefaultSettleDelay; zero disables the wait.
func NewFullscreenUseCase(
	state *entity.LayoutState,
	windows port.WindowResolver,
	windowLabel string,
	settleDelay time.Duration,
) *FullscreenUseCase {
	if settleDelay < 0 {
		settleDelay = DefaultSettleDelay
	}
	return &FullscreenUseCase{
		state:       state,
		windows:     windows,
		windowLabel: windowLabel,
		settleDelay: settleDelay,
	}
}

func (uc *FullscreenUseCase) window() (port.HostWindow, error) {
	win, ok := uc.windows.Window(uc.windowLabel)
	if !ok {
		return nil, fmt.Errorf("window %q: %w", uc.windowLabel, entity.ErrHostWindowMissing)
	}
	return win, nil
}

// SetFullscreen records the mode and applies it to the window.
func (uc *FullscreenUseCase) SetFullscreen(ctx context.Context, enabled bool) error {
	log := logging.FromContext(ctx)
	log.Debug().Bool("enabled", enabled).Msg("setting fullscreen")

	// State first so resize handlers pick up the new mode immediately.
	uc.state.SetFullscreen(enabled)

	win, err := uc.window()
	if err != nil {
		return err
	}
	size, err := win.InnerSize()
	if err != nil {
		return fmt.Errorf("failed to read window size: %w", err)
	}

	if enabled {
		err = errors.Join(
			hideQuadrants(ctx, win),
			fillControl(ctx, win, size),
		)
	} else {
		sidebar := uc.state.SidebarWidth()
		err = errors.Join(
			placeControl(ctx, win, entity.SidebarRect(size, sidebar)),
			applyQuadrants(ctx, win, size, sidebar),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to apply fullscreen=%t: %w", enabled, err)
	}

	if err := uc.settle(ctx); err != nil {
		return err
	}

	log.Info().Bool("enabled", enabled).Msg("fullscreen applied")
	return nil
}

// UpdateSidebarWidth records a new sidebar width. While fullscreen the change
// only takes effect when fullscreen is left.
func (uc *FullscreenUseCase) UpdateSidebarWidth(ctx context.Context, width float64) error {
	log := logging.FromContext(ctx)

	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: %v", entity.ErrInvalidSidebarWidth, width)
	}

	if fullscreen := uc.state.SetSidebarWidth(width); fullscreen {
		log.Debug().Float64("width", width).Msg("sidebar width deferred until fullscreen exits")
		return nil
	}

	win, err := uc.window()
	if err != nil {
		return err
	}
	size, err := win.InnerSize()
	if err != nil {
		return fmt.Errorf("failed to read window size: %w", err)
	}

	err = errors.Join(
		fillControl(ctx, win, size),
		applyQuadrants(ctx, win, size, width),
	)
	if err != nil {
		return fmt.Errorf("failed to apply sidebar width: %w", err)
	}

	log.Debug().Float64("width", width).Msg("sidebar width applied")
	return nil
}

func (uc *FullscreenUseCase) settle(ctx context.Context) error {
	if uc.settleDelay == 0 {
		return nil
	}
	timer := time.NewTimer(uc.settleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
