// Package spatial provides the overlap and distance tests used by every
// gameplay system, plus a broad-phase index over static obstacles.
package spatial

import (
	"math"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Overlaps reports whether two boxes intersect. Edges that merely touch do
// not count.
func Overlaps(a, b entity.Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b entity.Vector2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Contains reports whether inner lies entirely inside outer (edges included).
func Contains(outer, inner entity.Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.W <= outer.X+outer.W && inner.Y+inner.H <= outer.Y+outer.H
}
