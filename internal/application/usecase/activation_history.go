package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/logging"
)

// ActivationHistoryUseCase reads and trims the workspace switch history.
type ActivationHistoryUseCase struct {
	activations repository.ActivationRepository
	workspaces  repository.WorkspaceRepository
	maxEntries  int
}

// NewActivationHistoryUseCase creates the use case. maxEntries <= 0 disables pruning.
func NewActivationHistoryUseCase(
	activations repository.ActivationRepository,
	workspaces repository.WorkspaceRepository,
	maxEntries int,
) *ActivationHistoryUseCase {
	return &ActivationHistoryUseCase{
		activations: activations,
		workspaces:  workspaces,
		maxEntries:  maxEntries,
	}
}

// Recent returns up to limit activations, newest first.
func (uc *ActivationHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.WorkspaceActivation, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.activations.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activation history: %w", err)
	}
	return list, nil
}

// LastRestorable returns the name of the most recently activated workspace
// that still exists in the store, or "" when there is none.
func (uc *ActivationHistoryUseCase) LastRestorable(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	last, err := uc.activations.Last(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get last activation: %w", err)
	}
	if last == nil {
		return "", nil
	}

	if _, err := uc.workspaces.Get(ctx, last.Workspace); err != nil {
		if errors.Is(err, entity.ErrWorkspaceNotFound) {
			log.Debug().Str("workspace", last.Workspace).Msg("last workspace no longer exists")
			return "", nil
		}
		return "", fmt.Errorf("failed to check last workspace: %w", err)
	}
	return last.Workspace, nil
}

// Prune drops entries beyond the configured maximum.
func (uc *ActivationHistoryUseCase) Prune(ctx context.Context) (int64, error) {
	if uc.maxEntries <= 0 {
		return 0, nil
	}
	removed, err := uc.activations.Prune(ctx, uc.maxEntries)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activation history: %w", err)
	}
	if removed > 0 {
		logging.FromContext(ctx).Debug().Int64("removed", removed).Msg("activation history pruned")
	}
	return removed, nil
}
