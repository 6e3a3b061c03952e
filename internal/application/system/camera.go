package system

import "github.com/younwookim/arcade/internal/domain/entity"

// ComputeOffset returns the translation that centers the viewport on the
// player, clamped per axis to [-(map-view), 0] so nothing past the map edge is
// shown. A map smaller than the viewport pins the offset at 0.
func ComputeOffset(playerPos, mapSize, viewSize entity.Vector2) entity.Vector2 {
	return entity.Vec(
		clampOffset(viewSize.X/2-playerPos.X, mapSize.X-viewSize.X),
		clampOffset(viewSize.Y/2-playerPos.Y, mapSize.Y-viewSize.Y),
	)
}

func clampOffset(v, span float64) float64 {
	lo := -span
	if lo > 0 {
		lo = 0
	}
	return clamp(v, lo, 0)
}
