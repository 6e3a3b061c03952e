package system

import (
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/spatial"
)

// Mover moves square bodies through the static obstacle field
type Mover struct {
	index  *spatial.Index
	width  float64
	height float64
}

// NewMover creates a mover bounded by a width x height map
func NewMover(index *spatial.Index, width, height float64) *Mover {
	return &Mover{index: index, width: width, height: height}
}

// Resolve applies step to a body centered at pos. Each axis is tried on its
// own: x first, then y from the resolved x. An axis whose candidate footprint
// overlaps any obstacle is rejected. The result is clamped to the map and the
// returned Hit reports what the rejected candidates touched.
func (m *Mover) Resolve(pos, step entity.Vector2, size float64) (entity.Vector2, spatial.Hit) {
	var hit spatial.Hit

	if step.X != 0 {
		candidate := entity.Vec(pos.X+step.X, pos.Y)
		h := m.index.Test(entity.RectAround(candidate, size, size))
		if h.Blocked {
			hit.Blocked = true
			hit.Hazard = hit.Hazard || h.Hazard
		} else {
			pos = candidate
		}
	}

	if step.Y != 0 {
		candidate := entity.Vec(pos.X, pos.Y+step.Y)
		h := m.index.Test(entity.RectAround(candidate, size, size))
		if h.Blocked {
			hit.Blocked = true
			hit.Hazard = hit.Hazard || h.Hazard
		} else {
			pos = candidate
		}
	}

	return m.Clamp(pos, size), hit
}

// Clamp keeps a body's center in [size/2, dim-1.5*size] on each axis.
func (m *Mover) Clamp(pos entity.Vector2, size float64) entity.Vector2 {
	return entity.Vec(
		clamp(pos.X, size/2, m.width-1.5*size),
		clamp(pos.Y, size/2, m.height-1.5*size),
	)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
