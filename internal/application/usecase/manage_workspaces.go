package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/logging"
)

// ManageWorkspacesUseCase handles workspace CRUD for the control pane and the CLI.
type ManageWorkspacesUseCase struct {
	workspaces repository.WorkspaceRepository
}

// NewManageWorkspacesUseCase creates a new workspace management use case.
func NewManageWorkspacesUseCase(workspaces repository.WorkspaceRepository) *ManageWorkspacesUseCase {
	return &ManageWorkspacesUseCase{workspaces: workspaces}
}

// GetAll returns the whole store.
func (uc *ManageWorkspacesUseCase) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	all, err := uc.workspaces.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}
	return all, nil
}

// Get returns one workspace document.
func (uc *ManageWorkspacesUseCase) Get(ctx context.Context, name string) (json.RawMessage, error) {
	doc, err := uc.workspaces.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return doc, nil
}

// Save inserts or replaces a workspace.
func (uc *ManageWorkspacesUseCase) Save(ctx context.Context, name string, doc json.RawMessage) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("workspace", name).Msg("saving workspace")

	if err := entity.ValidateWorkspaceName(name); err != nil {
		return err
	}
	if err := entity.ValidateWorkspaceDocument(doc); err != nil {
		return err
	}

	if err := uc.workspaces.Save(ctx, name, doc); err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}

	log.Info().Str("workspace", name).Msg("workspace saved")
	return nil
}

// SaveConfig saves a workspace built from typed pane URLs.
func (uc *ManageWorkspacesUseCase) SaveConfig(ctx context.Context, name string, cfg entity.WorkspaceConfig) error {
	doc, err := entity.MarshalWorkspaceConfig(cfg)
	if err != nil {
		return err
	}
	return uc.Save(ctx, name, doc)
}

// Delete removes a workspace. Missing names are not an error.
func (uc *ManageWorkspacesUseCase) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("workspace", name).Msg("deleting workspace")

	if err := uc.workspaces.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	log.Info().Str("workspace", name).Msg("workspace deleted")
	return nil
}
