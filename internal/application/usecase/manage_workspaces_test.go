package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/quadspace/internal/application/usecase"
	"github.com/bnema/quadspace/internal/domain/entity"
	repomocks "github.com/bnema/quadspace/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageWorkspacesUseCase_GetAll(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	all := map[string]json.RawMessage{"Work": workDoc}
	repo.EXPECT().GetAll(mock.Anything).Return(all, nil)

	uc := usecase.NewManageWorkspacesUseCase(repo)

	got, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestManageWorkspacesUseCase_GetAll_WrapsStorageError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(nil, &entity.StorageError{Op: "read", Err: assert.AnError})

	uc := usecase.NewManageWorkspacesUseCase(repo)

	_, err := uc.GetAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStorage)
	assert.Contains(t, err.Error(), "failed to get workspaces")
}

func TestManageWorkspacesUseCase_Save(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	repo.EXPECT().Save(mock.Anything, "Work", workDoc).Return(nil)

	uc := usecase.NewManageWorkspacesUseCase(repo)
	require.NoError(t, uc.Save(ctx, "Work", workDoc))
}

func TestManageWorkspacesUseCase_Save_RejectsInvalidInput(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	uc := usecase.NewManageWorkspacesUseCase(repo)

	tests := []struct {
		name    string
		wsName  string
		doc     json.RawMessage
		wantErr error
	}{
		{name: "empty name", wsName: "  ", doc: workDoc, wantErr: entity.ErrInvalidWorkspace},
		{name: "array document", wsName: "Work", doc: json.RawMessage(`[]`), wantErr: entity.ErrInvalidWorkspace},
		{name: "truncated document", wsName: "Work", doc: json.RawMessage(`{"main1":`), wantErr: entity.ErrInvalidWorkspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Save(ctx, tt.wsName, tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManageWorkspacesUseCase_SaveConfig(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	repo.EXPECT().
		Save(mock.Anything, "Work", mock.MatchedBy(func(doc json.RawMessage) bool {
			cfg := entity.ParseWorkspaceConfig(doc)
			return len(cfg) == 1 && cfg[entity.PaneMain2] == "https://b.test"
		})).
		Return(nil)

	uc := usecase.NewManageWorkspacesUseCase(repo)
	require.NoError(t, uc.SaveConfig(ctx, "Work", entity.WorkspaceConfig{entity.PaneMain2: "https://b.test"}))
}

func TestManageWorkspacesUseCase_Delete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	repo.EXPECT().Delete(mock.Anything, "Missing").Return(nil)

	uc := usecase.NewManageWorkspacesUseCase(repo)
	require.NoError(t, uc.Delete(ctx, "Missing"))
}

func TestManageWorkspacesUseCase_Get_NotFound(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWorkspaceRepository(t)
	repo.EXPECT().Get(mock.Anything, "Nope").Return(nil, entity.WorkspaceNotFound("Nope"))

	uc := usecase.NewManageWorkspacesUseCase(repo)
	_, err := uc.Get(ctx, "Nope")
	assert.ErrorIs(t, err, entity.ErrWorkspaceNotFound)
}
