// Package repository defines persistence ports for domain data.
package repository

import (
	"context"
	"encoding/json"
)

// WorkspaceRepository persists named workspace documents.
// Documents are kept as raw JSON objects so fields the application does not
// understand survive a save/load round trip.
type WorkspaceRepository interface {
	// Get returns one workspace. Fails with entity.ErrWorkspaceNotFound or
	// an *entity.StorageError.
	Get(ctx context.Context, name string) (json.RawMessage, error)
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)
	// Save inserts or replaces a workspace.
	Save(ctx context.Context, name string, doc json.RawMessage) error
	// Delete removes a workspace; deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
