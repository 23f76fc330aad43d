// Package messaging routes control-pane messages to command handlers.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/quadspace/internal/logging"
)

// HandlerName is the script message handler the control pane posts to:
// window.webkit.messageHandlers.quadspace.postMessage(...).
const HandlerName = "quadspace"

// ErrUnknownType is returned for messages without a registered handler.
var ErrUnknownType = errors.New("unknown message type")

// Request is the JS -> Go envelope.
type Request struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is the Go -> JS reply delivered to window.__quadspaceResponse.
type Response struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Handler handles a decoded message payload.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

// Router dispatches messages to registered handlers by type.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// RegisterHandler registers a handler for a message type, replacing any previous one.
func (r *Router) RegisterHandler(msgType string, handler Handler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Types returns the registered message types.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// Dispatch decodes raw, runs the matching handler and builds the response.
// Handler errors are reported in the response, never returned.
func (r *Router) Dispatch(ctx context.Context, raw []byte) Response {
	log := logging.FromContext(ctx).With().Str("component", "message-router").Logger()

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Warn().Err(err).Int("len", len(raw)).Msg("failed to unmarshal message")
		return Response{Error: fmt.Sprintf("invalid message: %v", err)}
	}
	if req.Type == "" {
		log.Warn().Str("id", req.ID).Msg("message missing type")
		return Response{ID: req.ID, Error: "message missing type"}
	}

	r.mu.RLock()
	handler, ok := r.handlers[req.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("type", req.Type).Msg("no handler registered for message type")
		return Response{ID: req.ID, Error: fmt.Sprintf("%v: %s", ErrUnknownType, req.Type)}
	}

	log.Debug().
		Str("type", req.Type).
		Str("id", req.ID).
		Int("payload_len", len(req.Payload)).
		Msg("received message")

	result, err := handler.Handle(ctx, req.Payload)
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("message handler returned error")
		return Response{ID: req.ID, Error: err.Error()}
	}
	return Response{ID: req.ID, OK: true, Result: result}
}

// ResponseScript renders resp as a call to window.__quadspaceResponse.
func ResponseScript(resp Response) (string, error) {
	return callbackScript("__quadspaceResponse", resp)
}

// EventScript renders an event payload as a call to window.__quadspaceEvent.
func EventScript(event any) (string, error) {
	return callbackScript("__quadspaceEvent", event)
}

func callbackScript(callback string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal callback payload: %w", err)
	}
	return fmt.Sprintf(
		`(function(){try{if(window.%[1]s){window.%[1]s(%[2]s);}`+
			`else{console.warn("quadspace callback missing: %[1]s");}}`+
			`catch(e){console.error("quadspace callback %[1]s failed", e);}})();`,
		callback,
		string(data),
	), nil
}
