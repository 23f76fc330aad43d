package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/domain/url"
	"github.com/bnema/quadspace/internal/logging"
)

// ErrReconcileSuperseded is the task error when a newer workspace switch
// cancelled it before it finished.
var ErrReconcileSuperseded = errors.New("reconcile superseded")

// LoadWorkspaceOptions configures LoadWorkspaceUseCase.
type LoadWorkspaceOptions struct {
	// WindowLabel names the outer window the panes live in.
	WindowLabel string
	// PlaceholderURL is loaded into new panes without a usable URL.
	PlaceholderURL string
	// Activations records completed switches. Optional.
	Activations repository.ActivationRepository
}

// LoadWorkspaceUseCase reconciles the host window's panes with a stored workspace.
// Reconciliations for the window are serialized: a new one cancels the
// one in flight and starts after it has exited.
type LoadWorkspaceUseCase struct {
	workspaces  repository.WorkspaceRepository
	activations repository.ActivationRepository
	state       *entity.LayoutState
	windows     port.WindowResolver
	sink        port.EventSink

	windowLabel    string
	placeholderURL string

	mu       sync.Mutex
	inflight *ReconcileTask
}

// NewLoadWorkspaceUseCase creates the reconciler.
func NewLoadWorkspaceUseCase(
	workspaces repository.WorkspaceRepository,
	state *entity.LayoutState,
	windows port.WindowResolver,
	sink port.EventSink,
	opts LoadWorkspaceOptions,
) *LoadWorkspaceUseCase {
	placeholder := opts.PlaceholderURL
	if placeholder == "" {
		placeholder = url.Blank
	}
	if sink == nil {
		sink = port.EventSinkFunc(func(context.Context, port.Event) {})
	}
	return &LoadWorkspaceUseCase{
		workspaces:     workspaces,
		activations:    opts.Activations,
		state:          state,
		windows:        windows,
		sink:           sink,
		windowLabel:    opts.WindowLabel,
		placeholderURL: placeholder,
	}
}

// ReconcileReport summarizes what a reconciliation did to each pane.
type ReconcileReport struct {
	Workspace  string
	Fullscreen bool
	Created    []entity.PaneRole
	Navigated  []entity.PaneRole
	Hidden     []entity.PaneRole
	Failed     []entity.PaneRole
}

// ReconcileTask is a handle on a background reconciliation.
type ReconcileTask struct {
	workspace string
	cancel    context.CancelFunc
	done      chan struct{}

	err    error
	report ReconcileReport
}

func newReconcileTask(workspace string, cancel context.CancelFunc) *ReconcileTask {
	return &ReconcileTask{
		workspace: workspace,
		cancel:    cancel,
		done:      make(chan struct{}),
		report:    ReconcileReport{Workspace: workspace},
	}
}

// Workspace returns the name of the workspace being loaded.
func (t *ReconcileTask) Workspace() string { return t.workspace }

// Done is closed when the task has exited.
func (t *ReconcileTask) Done() <-chan struct{} { return t.done }

// Cancel asks the task to stop at the next pane boundary.
func (t *ReconcileTask) Cancel() { t.cancel() }

// Wait blocks until the task exits or ctx is done.
func (t *ReconcileTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the task result. Only meaningful after Done is closed.
func (t *ReconcileTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Report returns what the task did. Only complete after Done is closed.
func (t *ReconcileTask) Report() ReconcileReport {
	<-t.done
	return t.report
}

func (t *ReconcileTask) finish(err error) {
	t.err = err
	t.cancel()
	close(t.done)
}

// Execute looks the workspace up and starts reconciling it in the background.
// Lookup failures are returned directly; everything after that is reported
// through the event sink and the returned task.
func (uc *LoadWorkspaceUseCase) Execute(ctx context.Context, name string) (*ReconcileTask, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("workspace", name).Msg("loading workspace")

	doc, err := uc.workspaces.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace %q: %w", name, err)
	}
	cfg := entity.ParseWorkspaceConfig(doc)

	// Detach from the caller: the command returns before the work is done.
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(logging.WithWorkspace(ctx, name)))
	task := newReconcileTask(name, cancel)

	uc.mu.Lock()
	prev := uc.inflight
	uc.inflight = task
	uc.mu.Unlock()

	if prev != nil {
		log.Debug().Str("previous", prev.workspace).Msg("superseding in-flight reconcile")
		prev.Cancel()
	}

	go func() {
		if prev != nil {
			<-prev.Done()
		}
		err := uc.reconcile(taskCtx, task, cfg)

		uc.mu.Lock()
		if uc.inflight == task {
			uc.inflight = nil
		}
		uc.mu.Unlock()

		task.finish(err)
	}()

	return task, nil
}

// Current returns the in-flight task, or nil when idle.
func (uc *LoadWorkspaceUseCase) Current() *ReconcileTask {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inflight
}

func (uc *LoadWorkspaceUseCase) reconcile(ctx context.Context, task *ReconcileTask, cfg entity.WorkspaceConfig) error {
	log := logging.FromContext(ctx)
	name := task.workspace

	win, ok := uc.windows.Window(uc.windowLabel)
	if !ok {
		err := fmt.Errorf("window %q: %w", uc.windowLabel, entity.ErrHostWindowMissing)
		log.Error().Err(err).Msg("reconcile aborted")
		uc.sink.Emit(ctx, port.Event{Kind: port.EventHostWindowMissing, Workspace: name, Err: err})
		return err
	}

	fullscreen := uc.state.Fullscreen()
	task.report.Fullscreen = fullscreen

	for _, role := range entity.QuadrantRoles() {
		if ctx.Err() != nil {
			return uc.superseded(ctx, name)
		}
		uc.reconcilePane(ctx, win, role, cfg, fullscreen, &task.report)
	}
	if ctx.Err() != nil {
		return uc.superseded(ctx, name)
	}

	size, err := win.InnerSize()
	if err != nil {
		// The next resize event brings the real size, so the handler still goes in.
		win.SetResizeHandler(NewResizeHandler(ctx, uc.state, win))
		err = fmt.Errorf("failed to read window size: %w", err)
		log.Error().Err(err).Msg("layout skipped")
		uc.sink.Emit(ctx, port.Event{Kind: port.EventLayoutFailed, Workspace: name, Err: err})
		return err
	}
	// Fullscreen may have been toggled while panes were being created; the
	// per-pane pass used the snapshot, the final layout uses the live state.
	snap := uc.state.Snapshot()
	if snap.Fullscreen && !fullscreen {
		if err := hideQuadrants(ctx, win); err != nil {
			log.Warn().Err(err).Msg("failed to hide quadrants")
		}
	}
	if err := layoutWindow(ctx, win, size, snap); err != nil {
		log.Warn().Err(err).Msg("layout incomplete")
	}

	win.SetResizeHandler(NewResizeHandler(ctx, uc.state, win))

	uc.recordActivation(ctx, name, snap, len(task.report.Created))

	log.Info().
		Int("created", len(task.report.Created)).
		Int("navigated", len(task.report.Navigated)).
		Int("failed", len(task.report.Failed)).
		Bool("fullscreen", snap.Fullscreen).
		Msg("workspace loaded")
	uc.sink.Emit(ctx, port.Event{Kind: port.EventReconcileCompleted, Workspace: name})
	return nil
}

func (uc *LoadWorkspaceUseCase) reconcilePane(
	ctx context.Context,
	win port.HostWindow,
	role entity.PaneRole,
	cfg entity.WorkspaceConfig,
	fullscreen bool,
	report *ReconcileReport,
) {
	log := logging.FromContext(ctx).With().Str("pane", role.Label()).Logger()
	raw, hasURL := cfg.URL(role)

	if pane, exists := win.Pane(role); exists {
		if hasURL {
			if uc.navigate(ctx, report.Workspace, pane, raw) {
				report.Navigated = append(report.Navigated, role)
			}
		}
		if fullscreen {
			if err := port.PlaceAt(pane, entity.HiddenRect()); err != nil {
				log.Warn().Err(err).Msg("failed to hide pane")
			} else {
				report.Hidden = append(report.Hidden, role)
			}
		}
		return
	}

	target := uc.placeholderURL
	if hasURL {
		valid, err := url.Validate(raw)
		if err != nil {
			uc.navigationFailed(ctx, report.Workspace, role, raw, err)
		} else {
			target = valid
		}
	}

	bounds := entity.PlaceholderRect()
	if fullscreen {
		bounds = entity.HiddenRect()
	}

	if _, err := win.CreatePane(ctx, role, target, bounds); err != nil {
		if !errors.Is(err, entity.ErrPaneCreation) {
			err = fmt.Errorf("%w: %w", entity.ErrPaneCreation, err)
		}
		log.Error().Err(err).Str("url", target).Msg("pane creation failed, skipping")
		report.Failed = append(report.Failed, role)
		r := role
		uc.sink.Emit(ctx, port.Event{
			Kind:      port.EventPaneCreationFailed,
			Workspace: report.Workspace,
			Pane:      &r,
			URL:       target,
			Err:       err,
		})
		return
	}

	log.Debug().Str("url", target).Bool("hidden", fullscreen).Msg("pane created")
	report.Created = append(report.Created, role)
	if fullscreen {
		report.Hidden = append(report.Hidden, role)
	}
}

// navigate points an existing pane at raw. It reports whether a navigation
// was issued; a pane already showing the target is left alone.
func (uc *LoadWorkspaceUseCase) navigate(ctx context.Context, workspace string, pane port.Pane, raw string) bool {
	role := pane.Role()
	target, err := url.Validate(raw)
	if err != nil {
		uc.navigationFailed(ctx, workspace, role, raw, err)
		return false
	}
	if pane.URL() == target {
		return false
	}
	if err := pane.Navigate(target); err != nil {
		uc.navigationFailed(ctx, workspace, role, target, err)
		return false
	}
	logging.FromContext(ctx).Debug().Str("pane", role.Label()).Str("url", target).Msg("pane navigated")
	return true
}

func (uc *LoadWorkspaceUseCase) navigationFailed(ctx context.Context, workspace string, role entity.PaneRole, raw string, cause error) {
	err := &entity.NavigationError{Pane: role, URL: raw, Err: cause}
	logging.FromContext(ctx).Warn().Err(err).Msg("navigation skipped")
	uc.sink.Emit(ctx, port.Event{
		Kind:      port.EventNavigationFailed,
		Workspace: workspace,
		Pane:      &role,
		URL:       raw,
		Err:       err,
	})
}

func (uc *LoadWorkspaceUseCase) superseded(ctx context.Context, name string) error {
	logging.FromContext(ctx).Info().Msg("reconcile cancelled")
	uc.sink.Emit(context.WithoutCancel(ctx), port.Event{
		Kind:      port.EventReconcileCancelled,
		Workspace: name,
		Err:       ErrReconcileSuperseded,
	})
	return ErrReconcileSuperseded
}

func (uc *LoadWorkspaceUseCase) recordActivation(ctx context.Context, name string, snap entity.LayoutSnapshot, created int) {
	if uc.activations == nil {
		return
	}
	err := uc.activations.Record(ctx, &entity.WorkspaceActivation{
		Workspace:    name,
		ActivatedAt:  time.Now(),
		Fullscreen:   snap.Fullscreen,
		SidebarWidth: snap.SidebarWidth,
		PanesCreated: created,
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record activation")
	}
}
