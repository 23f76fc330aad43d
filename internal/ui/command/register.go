package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/logging"
)

// Message types posted by the control pane.
const (
	TypeGetAllWorkspaces   = "getAllWorkspaces"
	TypeSaveWorkspace      = "saveWorkspace"
	TypeDeleteWorkspace    = "deleteWorkspace"
	TypeLoadWorkspace      = "loadWorkspace"
	TypeUpdateSidebarWidth = "updateSidebarWidth"
	TypeToggleFullscreen   = "toggleFullscreen"
)

type namePayload struct {
	Name string `json:"name"`
}

type savePayload struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

type widthPayload struct {
	Width *float64 `json:"width"`
}

type fullscreenPayload struct {
	Fullscreen *bool `json:"fullscreen"`
}

func decode(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

// Register wires the six verbs into router.
func Register(ctx context.Context, router *messaging.Router, c *Commands) error {
	log := logging.FromContext(ctx).With().Str("component", "commands").Logger()

	handlers := map[string]messaging.HandlerFunc{
		TypeGetAllWorkspaces: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return c.GetAllWorkspaces(ctx)
		},
		TypeSaveWorkspace: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var p savePayload
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			return nil, c.SaveWorkspace(ctx, p.Name, p.Config)
		},
		TypeDeleteWorkspace: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var p namePayload
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			return nil, c.DeleteWorkspace(ctx, p.Name)
		},
		TypeLoadWorkspace: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var p namePayload
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			if _, err := c.LoadWorkspace(ctx, p.Name); err != nil {
				return nil, err
			}
			return nil, nil
		},
		TypeUpdateSidebarWidth: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var p widthPayload
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			if p.Width == nil {
				return nil, fmt.Errorf("invalid payload: width is required")
			}
			return nil, c.UpdateSidebarWidth(ctx, *p.Width)
		},
		TypeToggleFullscreen: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var p fullscreenPayload
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			if p.Fullscreen == nil {
				return nil, fmt.Errorf("invalid payload: fullscreen is required")
			}
			return nil, c.ToggleFullscreen(ctx, *p.Fullscreen)
		},
	}

	for msgType, handler := range handlers {
		if err := router.RegisterHandler(msgType, handler); err != nil {
			return fmt.Errorf("failed to register %s: %w", msgType, err)
		}
	}

	log.Info().Int("count", len(handlers)).Msg("registered control pane commands")
	return nil
}
