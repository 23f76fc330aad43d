package repository

import (
	"context"

	"github.com/bnema/quadspace/internal/domain/entity"
)

// ActivationRepository records completed workspace switches.
type ActivationRepository interface {
	Record(ctx context.Context, activation *entity.WorkspaceActivation) error
	GetRecent(ctx context.Context, limit int) ([]*entity.WorkspaceActivation, error)
	// Last returns the most recent activation, or nil when there is none.
	Last(ctx context.Context) (*entity.WorkspaceActivation, error)
	// Prune keeps only the newest keep entries and returns how many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
