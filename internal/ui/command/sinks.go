package command

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/logging"
)

// EventMessage is the JSON shape handed to window.__quadspaceEvent.
type EventMessage struct {
	Kind      string `json:"kind"`
	Workspace string `json:"workspace,omitempty"`
	Pane      string `json:"pane,omitempty"`
	URL       string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewEventMessage converts a port event for the control pane.
func NewEventMessage(e port.Event) EventMessage {
	msg := EventMessage{
		Kind:      string(e.Kind),
		Workspace: e.Workspace,
		Pane:      e.PaneLabel(),
		URL:       e.URL,
	}
	if e.Err != nil {
		msg.Error = e.Err.Error()
	}
	return msg
}

// LogSink writes every event to the context logger. Failures log at warn,
// everything else at debug.
type LogSink struct{}

// Emit implements port.EventSink.
func (LogSink) Emit(ctx context.Context, e port.Event) {
	log := logging.FromContext(ctx)

	var ev *zerolog.Event
	switch e.Kind {
	case port.EventNavigationFailed, port.EventPaneCreationFailed, port.EventHostWindowMissing, port.EventLayoutFailed:
		ev = log.Warn().Err(e.Err)
	default:
		ev = log.Debug()
	}
	ev.Str("kind", string(e.Kind)).
		Str("workspace", e.Workspace).
		Str("pane", e.PaneLabel()).
		Str("url", e.URL).
		Msg("layout event")
}

// FanOut forwards each event to every non-nil sink in order.
func FanOut(sinks ...port.EventSink) port.EventSink {
	active := make([]port.EventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return port.EventSinkFunc(func(ctx context.Context, e port.Event) {
		for _, s := range active {
			s.Emit(ctx, e)
		}
	})
}

// ScriptRunner evaluates JavaScript in the control pane.
type ScriptRunner interface {
	RunScript(ctx context.Context, script string)
}

// ScriptSink pushes events to the control pane as window.__quadspaceEvent calls.
type ScriptSink struct {
	Runner ScriptRunner
}

// Emit implements port.EventSink.
func (s ScriptSink) Emit(ctx context.Context, e port.Event) {
	script, err := messaging.EventScript(NewEventMessage(e))
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("kind", string(e.Kind)).Msg("failed to encode event")
		return
	}
	s.Runner.RunScript(ctx, script)
}
