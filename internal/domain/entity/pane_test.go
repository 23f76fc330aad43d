package entity_test

import (
	"testing"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaneRole_Labels(t *testing.T) {
	assert.Equal(t, "main1", entity.PaneMain1.Label())
	assert.Equal(t, "main4", entity.PaneMain4.Label())
	assert.Equal(t, "control", entity.PaneControl.Label())
	assert.Equal(t, "pane(42)", entity.PaneRole(42).Label())
}

func TestPaneRole_ParseRoundTrip(t *testing.T) {
	roles := entity.QuadrantRoles()
	for _, role := range append(roles[:], entity.PaneControl) {
		got, err := entity.ParsePaneRole(role.Label())
		require.NoError(t, err)
		assert.Equal(t, role, got)
	}

	_, err := entity.ParsePaneRole("main5")
	assert.Error(t, err)
}

func TestPaneRole_QuadrantIndex(t *testing.T) {
	for i, role := range entity.QuadrantRoles() {
		idx, ok := role.QuadrantIndex()
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.True(t, role.IsQuadrant())
	}

	_, ok := entity.PaneControl.QuadrantIndex()
	assert.False(t, ok)
	assert.False(t, entity.PaneControl.IsQuadrant())
}
