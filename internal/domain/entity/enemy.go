package entity

// Enemy represents an enemy entity.
// Pos is the center of both the movement footprint and the hit box.
type Enemy struct {
	ID  EntityID
	Pos Vector2
	Vel Vector2

	// Health is carried for completeness; a single player hit destroys
	// an enemy regardless of its value.
	Health int

	Size       float64
	HitboxSize float64
}

// NewEnemy creates a new enemy
func NewEnemy(id EntityID, pos, vel Vector2, health int, size, hitboxSize float64) *Enemy {
	return &Enemy{
		ID:         id,
		Pos:        pos,
		Vel:        vel,
		Health:     health,
		Size:       size,
		HitboxSize: hitboxSize,
	}
}

// FootprintAt returns the movement box the enemy would have at pos.
func (e *Enemy) FootprintAt(pos Vector2) Rect {
	return RectAround(pos, e.Size, e.Size)
}

// Hitbox returns the box the player's attack is tested against.
func (e *Enemy) Hitbox() Rect {
	return RectAround(e.Pos, e.HitboxSize, e.HitboxSize)
}
