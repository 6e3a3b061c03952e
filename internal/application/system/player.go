package system

import (
	"math"
	"time"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// PlayerSystem turns held actions into player movement and attacks
type PlayerSystem struct {
	config *config.PlayerConfig
	mover  *Mover
	combat *CombatSystem
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PlayerConfig, mover *Mover, combat *CombatSystem) *PlayerSystem {
	return &PlayerSystem{config: cfg, mover: mover, combat: combat}
}

// Direction returns the unit movement step for in. Diagonals are divided by
// sqrt(2) so they cover the same distance as a single axis.
func Direction(in input.State) entity.Vector2 {
	d := in.Direction()
	if d.X != 0 && d.Y != 0 {
		d = d.Scale(1 / math.Sqrt2)
	}
	return d
}

// Update moves the player one frame. prev is the previous frame's input and
// is used to fire attacks on the press edge only.
func (s *PlayerSystem) Update(p *entity.Player, in, prev input.State, now time.Duration) {
	if dir := Direction(in); !dir.IsZero() {
		p.Facing = dir

		pos, hit := s.mover.Resolve(p.Pos, dir.Scale(s.config.Speed), p.Size)
		p.Pos = pos
		if hit.Hazard && !p.Attacking {
			s.combat.DamagePlayer(p, now)
		}
	}

	if in.Pressed(prev, input.ActionAttack) {
		s.combat.StartAttack(p, now)
	}
}
