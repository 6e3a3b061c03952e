package spatial

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/younwookim/arcade/internal/domain/entity"
)

const (
	cellSize    = 64
	tagObstacle = "obstacle"
	tagProbe    = "probe"
)

// Index answers "which obstacles overlap this box" for a fixed obstacle set.
// resolv's cell grid is the broad phase; Overlaps is the narrow phase.
type Index struct {
	space     *resolv.Space
	probe     *resolv.Object
	obstacles []entity.Obstacle
}

// NewIndex builds an index over obstacles inside a width×height map.
func NewIndex(width, height float64, obstacles []entity.Obstacle) *Index {
	space := resolv.NewSpace(gridSpan(width), gridSpan(height), cellSize, cellSize)

	for i := range obstacles {
		o := obstacles[i]
		obj := resolv.NewObject(o.X, o.Y, o.W, o.H, tagObstacle)
		obj.Data = i
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &Index{
		space:     space,
		probe:     probe,
		obstacles: obstacles,
	}
}

// gridSpan rounds a map dimension up to whole cells plus one spare cell.
// resolv floors span/cellSize, so a partial last strip would have no cells.
func gridSpan(dim float64) int {
	return (int(math.Ceil(dim/cellSize)) + 1) * cellSize
}

// Query returns every obstacle that strictly overlaps r, in generation order
// of discovery.
func (ix *Index) Query(r entity.Rect) []entity.Obstacle {
	var hits []entity.Obstacle
	ix.each(r, func(o entity.Obstacle) bool {
		hits = append(hits, o)
		return true
	})
	return hits
}

// Hit summarizes what a box runs into.
type Hit struct {
	Blocked bool // any obstacle overlaps
	Hazard  bool // at least one overlapping obstacle is hazardous
}

// Test classifies r against the indexed obstacles. Both kinds block.
func (ix *Index) Test(r entity.Rect) Hit {
	var h Hit
	ix.each(r, func(o entity.Obstacle) bool {
		h.Blocked = true
		if o.Kind == entity.ObstacleHazardous {
			h.Hazard = true
			return false
		}
		return true
	})
	return h
}

// Obstacles returns the indexed obstacles.
func (ix *Index) Obstacles() []entity.Obstacle {
	return ix.obstacles
}

func (ix *Index) each(r entity.Rect, fn func(entity.Obstacle) bool) {
	if ix == nil || len(ix.obstacles) == 0 {
		return
	}

	// Grow the probe by one unit so sub-unit overlaps are not lost to the
	// cell rounding of the broad phase.
	ix.probe.X, ix.probe.Y = r.X-1, r.Y-1
	ix.probe.W, ix.probe.H = r.W+2, r.H+2

	check := ix.probe.Check(0, 0, tagObstacle)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		o := ix.obstacles[i]
		if !Overlaps(r, o.Rect) {
			continue
		}
		if !fn(o) {
			return
		}
	}
}
