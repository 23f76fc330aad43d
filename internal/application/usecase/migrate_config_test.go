package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/application/port/mocks"
	"github.com/bnema/quadspace/internal/application/usecase"
)

var sampleChanges = []port.KeyChange{
	{Type: port.KeyChangeAdded, Key: "layout.settle_delay_ms", Value: "50"},
	{Type: port.KeyChangeRemoved, Key: "legacy.theme", Value: `"dark"`},
}

func TestMigrateConfigUseCase_DetectChanges_None(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().DetectChanges().Return(nil, nil)

	out, err := usecase.NewMigrateConfigUseCase(migrator).DetectChanges(testContext())

	require.NoError(t, err)
	assert.False(t, out.HasChanges)
	assert.Equal(t, "No changes detected.", out.DiffText)
}

func TestMigrateConfigUseCase_DetectChanges(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().DetectChanges().Return(sampleChanges, nil)

	out, err := usecase.NewMigrateConfigUseCase(migrator).DetectChanges(testContext())

	require.NoError(t, err)
	assert.True(t, out.HasChanges)
	assert.Len(t, out.Changes, 2)
	assert.Contains(t, out.DiffText, "  + layout.settle_delay_ms = 50")
	assert.Contains(t, out.DiffText, `  - legacy.theme = "dark" (unknown)`)
}

func TestMigrateConfigUseCase_DetectChanges_Error(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().DetectChanges().Return(nil, errors.New("bad toml"))

	_, err := usecase.NewMigrateConfigUseCase(migrator).DetectChanges(testContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad toml")
}

func TestMigrateConfigUseCase_Execute(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().ConfigFile().Return("/tmp/config.toml")
	migrator.EXPECT().Migrate().Return(sampleChanges, nil)

	out, err := usecase.NewMigrateConfigUseCase(migrator).Execute(testContext())

	require.NoError(t, err)
	assert.Equal(t, "/tmp/config.toml", out.ConfigFile)
	assert.Len(t, out.Applied, 2)
}

func TestMigrateConfigUseCase_Execute_Error(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().ConfigFile().Return("/tmp/config.toml")
	migrator.EXPECT().Migrate().Return(nil, errors.New("read-only"))

	_, err := usecase.NewMigrateConfigUseCase(migrator).Execute(testContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate config")
}
