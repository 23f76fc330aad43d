package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// WorkspaceConfig maps each quadrant pane to its configured URL.
// A role missing from the map has no URL: an existing pane keeps its
// content, a new pane starts blank.
type WorkspaceConfig map[PaneRole]string

// URL returns the configured URL for a pane, if any.
func (c WorkspaceConfig) URL(role PaneRole) (string, bool) {
	u, ok := c[role]
	return u, ok
}

type paneEntry struct {
	URL *string `json:"url"`
}

// ParseWorkspaceConfig extracts quadrant URLs from a raw workspace object.
// Parsing is tolerant: a document that is not an object yields an empty
// config, and entries without a string "url" are treated as unset.
func ParseWorkspaceConfig(raw json.RawMessage) WorkspaceConfig {
	cfg := make(WorkspaceConfig)

	var panes map[string]json.RawMessage
	if err := json.Unmarshal(raw, &panes); err != nil {
		return cfg
	}

	for _, role := range QuadrantRoles() {
		entryRaw, ok := panes[role.Label()]
		if !ok {
			continue
		}
		var entry paneEntry
		if err := json.Unmarshal(entryRaw, &entry); err != nil || entry.URL == nil {
			continue
		}
		cfg[role] = *entry.URL
	}
	return cfg
}

// MarshalWorkspaceConfig renders a config in the workspace file shape.
func MarshalWorkspaceConfig(cfg WorkspaceConfig) (json.RawMessage, error) {
	doc := make(map[string]paneEntry, len(cfg))
	for role, u := range cfg {
		if !role.IsQuadrant() {
			return nil, fmt.Errorf("%w: %s is not a content pane", ErrInvalidWorkspace, role)
		}
		doc[role.Label()] = paneEntry{URL: &u}
	}
	return json.Marshal(doc)
}

// ValidateWorkspaceName rejects empty or whitespace-only names.
func ValidateWorkspaceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidWorkspace)
	}
	return nil
}

// ValidateWorkspaceDocument checks that raw is a JSON object.
func ValidateWorkspaceDocument(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: config must be a JSON object", ErrInvalidWorkspace)
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("%w: config is not valid JSON", ErrInvalidWorkspace)
	}
	return nil
}
