package entity_test

import (
	"testing"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuadrants_WorkScenario(t *testing.T) {
	rects := entity.ComputeQuadrants(entity.Size{W: 1200, H: 800}, 64)

	assert.Equal(t, entity.Rect{X: 64, Y: 0, W: 568, H: 400}, rects[0])
	assert.Equal(t, entity.Rect{X: 632, Y: 0, W: 568, H: 400}, rects[1])
	assert.Equal(t, entity.Rect{X: 64, Y: 400, W: 568, H: 400}, rects[2])
	assert.Equal(t, entity.Rect{X: 632, Y: 400, W: 568, H: 400}, rects[3])
}

func TestComputeQuadrants_TilesContentArea(t *testing.T) {
	windows := []entity.Size{
		{W: 0, H: 0},
		{W: 1, H: 1},
		{W: 801, H: 601},
		{W: 1200, H: 800},
		{W: 1920, H: 1080},
		{W: 333.5, H: 97.25},
	}
	fractions := []float64{0, 0.05, 0.25, 0.5, 1}

	for _, win := range windows {
		for _, f := range fractions {
			sidebar := win.W * f
			rects := entity.ComputeQuadrants(win, sidebar)

			// equal sizes
			for _, r := range rects[1:] {
				assert.Equal(t, rects[0].Size(), r.Size())
			}

			// area adds up to the content rectangle
			content := (win.W - sidebar) * win.H
			var total float64
			for _, r := range rects {
				total += r.Area()
			}
			assert.InDelta(t, content, total, 1e-6, "window %+v sidebar %v", win, sidebar)

			// no overlaps
			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					assert.False(t, rects[i].Intersects(rects[j]), "quadrants %d and %d overlap", i, j)
				}
			}

			// bounded by content rectangle
			for _, r := range rects {
				assert.GreaterOrEqual(t, r.X, sidebar)
				assert.GreaterOrEqual(t, r.Y, 0.0)
				assert.LessOrEqual(t, r.X+r.W, win.W+1e-9)
				assert.LessOrEqual(t, r.Y+r.H, win.H+1e-9)
			}
		}
	}
}

func TestComputeQuadrants_ClampsWideSidebar(t *testing.T) {
	rects := entity.ComputeQuadrants(entity.Size{W: 100, H: 80}, 150)

	for _, r := range rects {
		assert.Equal(t, 0.0, r.W)
		assert.Equal(t, 40.0, r.H)
		assert.Equal(t, 150.0, r.X)
	}
}

func TestComputeQuadrants_NegativeHeight(t *testing.T) {
	rects := entity.ComputeQuadrants(entity.Size{W: 100, H: -10}, 0)
	for _, r := range rects {
		assert.Equal(t, 0.0, r.H)
		assert.Equal(t, 0.0, r.Y)
	}
}

func TestQuadrantRect(t *testing.T) {
	r, ok := entity.QuadrantRect(entity.PaneMain4, entity.Size{W: 1200, H: 800}, 64)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 632, Y: 400, W: 568, H: 400}, r)

	_, ok = entity.QuadrantRect(entity.PaneControl, entity.Size{W: 1200, H: 800}, 64)
	assert.False(t, ok)
}

func TestHelperRects(t *testing.T) {
	win := entity.Size{W: 1200, H: 800}

	assert.Equal(t, entity.Rect{X: -1000, Y: -1000}, entity.HiddenRect())
	assert.Equal(t, entity.Rect{W: 100, H: 100}, entity.PlaceholderRect())
	assert.Equal(t, entity.Rect{W: 1200, H: 800}, entity.FullRect(win))
	assert.Equal(t, entity.Rect{W: 100, H: 800}, entity.SidebarRect(win, 100))
}
