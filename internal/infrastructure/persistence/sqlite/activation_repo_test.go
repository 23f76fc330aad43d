package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newActivationRepo(t *testing.T) repository.ActivationRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewActivationRepository(db)
}

func TestActivationRepository_RecordAndGetRecent(t *testing.T) {
	ctx := testCtx()
	repo := newActivationRepo(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"Math Layout", "Programming Layout", "Swedish Layout"} {
		a := &entity.WorkspaceActivation{
			Workspace:    name,
			ActivatedAt:  base.Add(time.Duration(i) * time.Minute),
			SidebarWidth: 64,
			PanesCreated: 4 - i,
			Fullscreen:   i == 2,
		}
		require.NoError(t, repo.Record(ctx, a))
		assert.NotZero(t, a.ID)
	}

	recent, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Swedish Layout", recent[0].Workspace)
	assert.True(t, recent[0].Fullscreen)
	assert.Equal(t, "Programming Layout", recent[1].Workspace)
	assert.Equal(t, 3, recent[1].PanesCreated)
	assert.Equal(t, 64.0, recent[1].SidebarWidth)
	assert.True(t, recent[1].ActivatedAt.Equal(base.Add(time.Minute)))
}

func TestActivationRepository_Last(t *testing.T) {
	ctx := testCtx()
	repo := newActivationRepo(t)

	last, err := repo.Last(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, repo.Record(ctx, &entity.WorkspaceActivation{Workspace: "A", ActivatedAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, repo.Record(ctx, &entity.WorkspaceActivation{Workspace: "B", ActivatedAt: time.Now()}))

	last, err = repo.Last(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "B", last.Workspace)
}

func TestActivationRepository_Prune(t *testing.T) {
	ctx := testCtx()
	repo := newActivationRepo(t)

	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		require.NoError(t, repo.Record(ctx, &entity.WorkspaceActivation{
			Workspace:   "W",
			ActivatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	removed, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	recent, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestGetMigrationStatus(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
