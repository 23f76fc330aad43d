package sqlite

import (
	"context"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
)

// lazyActivationRepo resolves the connection on every call; the provider
// caches it, so only the first call opens the database.
type lazyActivationRepo struct {
	provider port.DatabaseProvider
}

// NewLazyActivationRepository returns an activation repository that opens
// the database through provider on first use.
func NewLazyActivationRepository(provider port.DatabaseProvider) repository.ActivationRepository {
	return &lazyActivationRepo{provider: provider}
}

func (r *lazyActivationRepo) repo(ctx context.Context) (repository.ActivationRepository, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewActivationRepository(db), nil
}

func (r *lazyActivationRepo) Record(ctx context.Context, a *entity.WorkspaceActivation) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Record(ctx, a)
}

func (r *lazyActivationRepo) GetRecent(ctx context.Context, limit int) ([]*entity.WorkspaceActivation, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetRecent(ctx, limit)
}

func (r *lazyActivationRepo) Last(ctx context.Context) (*entity.WorkspaceActivation, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Last(ctx)
}

func (r *lazyActivationRepo) Prune(ctx context.Context, keep int) (int64, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return 0, err
	}
	return repo.Prune(ctx, keep)
}
