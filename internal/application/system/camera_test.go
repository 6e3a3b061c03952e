package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arcade/internal/domain/entity"
)

func TestComputeOffset(t *testing.T) {
	mapSize := entity.Vec(2400, 1800)
	view := entity.Vec(800, 600)

	tests := []struct {
		name   string
		player entity.Vector2
		want   entity.Vector2
	}{
		{"centered", entity.Vec(1200, 900), entity.Vec(-800, -600)},
		{"top-left corner", entity.Vec(10, 10), entity.Vec(0, 0)},
		{"bottom-right corner", entity.Vec(2390, 1790), entity.Vec(-1600, -1200)},
		{"left edge only", entity.Vec(100, 900), entity.Vec(0, -600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOffset(tt.player, mapSize, view))
		})
	}
}

func TestComputeOffset_OutOfBoundsMatchesNearestInBounds(t *testing.T) {
	mapSize := entity.Vec(2400, 1800)
	view := entity.Vec(800, 600)

	tests := []struct {
		outside entity.Vector2
		nearest entity.Vector2
	}{
		{entity.Vec(-500, 900), entity.Vec(0, 900)},
		{entity.Vec(3000, -20), entity.Vec(2400, 0)},
		{entity.Vec(1200, 99999), entity.Vec(1200, 1800)},
	}

	for _, tt := range tests {
		got := ComputeOffset(tt.outside, mapSize, view)
		assert.Equal(t, ComputeOffset(tt.nearest, mapSize, view), got)

		// applying the clamp to an already clamped view is a no-op
		center := entity.Vec(view.X/2-got.X, view.Y/2-got.Y)
		assert.Equal(t, got, ComputeOffset(center, mapSize, view))
	}
}

func TestComputeOffset_MapSmallerThanViewport(t *testing.T) {
	got := ComputeOffset(entity.Vec(100, 100), entity.Vec(400, 300), entity.Vec(800, 600))
	assert.Equal(t, entity.Vec(0, 0), got)
}
