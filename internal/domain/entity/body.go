package entity

import (
	"math"
	"time"
)

// Never is a timestamp far enough in the past that every cooldown and
// invulnerability window measured from it has already elapsed.
const Never = time.Duration(math.MinInt64 / 2)

// Player represents the player entity.
// Pos is the center of a Size×Size footprint.
type Player struct {
	ID   EntityID
	Pos  Vector2
	Size float64

	Health    int
	MaxHealth int
	Rupees    int
	Keys      int

	// Facing is the last nonzero movement direction; it aims the attack.
	Facing     Vector2
	Attacking  bool
	LastAttack time.Duration
}

// NewPlayer creates a player at full health facing down.
func NewPlayer(id EntityID, pos Vector2, size float64, maxHealth int) *Player {
	return &Player{
		ID:         id,
		Pos:        pos,
		Size:       size,
		Health:     maxHealth,
		MaxHealth:  maxHealth,
		Facing:     Vector2{0, 1},
		LastAttack: Never,
	}
}

// Footprint returns the collision box of the player.
func (p *Player) Footprint() Rect {
	return RectAround(p.Pos, p.Size, p.Size)
}

// FootprintAt returns the collision box the player would have at pos.
func (p *Player) FootprintAt(pos Vector2) Rect {
	return RectAround(pos, p.Size, p.Size)
}

// IsDead returns true once health has reached zero
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeDamage lowers health, never below zero. It returns true when this
// call brought the player to zero.
func (p *Player) TakeDamage(damage int) bool {
	if p.Health <= 0 {
		return false
	}
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}
