package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// CombatSystem resolves player attacks and damage taken by the player
type CombatSystem struct {
	config *config.CombatConfig
	store  *entity.Store
	timers *timer.Scheduler
	hooks  *Hooks
	log    *logrus.Entry

	// OnPlayerKilled runs once, on the hit that takes health to zero.
	OnPlayerKilled func()
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.CombatConfig, store *entity.Store, timers *timer.Scheduler, hooks *Hooks) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		store:  store,
		timers: timers,
		hooks:  hooks,
		log:    logger.Component("combat"),
	}
}

// CanAttack reports whether p may start an attack at now
func (s *CombatSystem) CanAttack(p *entity.Player, now time.Duration) bool {
	return !p.Attacking && now-p.LastAttack >= s.config.AttackCooldown.Duration()
}

// StartAttack begins an attack if the cooldown allows it. Every enemy whose
// hit box overlaps the attack region is destroyed at once. The attacking
// flag clears after the attack duration. It reports whether an attack began.
func (s *CombatSystem) StartAttack(p *entity.Player, now time.Duration) bool {
	if !s.CanAttack(p, now) {
		return false
	}

	p.Attacking = true
	p.LastAttack = now
	s.hooks.attackStart()
	s.timers.After(timer.Key{Entity: p.ID, Kind: TimerAttackEnd}, now, s.config.AttackDuration.Duration(), func(time.Duration) {
		p.Attacking = false
	})

	region := s.AttackRegion(p)
	var destroyed []*entity.Enemy
	for _, e := range s.store.Enemies {
		if spatial.Overlaps(region, e.Hitbox()) {
			destroyed = append(destroyed, e)
		}
	}
	for _, e := range destroyed {
		s.store.RemoveEnemy(e.ID)
		s.timers.CancelEntity(e.ID)
		s.log.WithFields(logrus.Fields{
			"enemy": e.ID,
			"x":     e.Pos.X,
			"y":     e.Pos.Y,
		}).Debug("Enemy destroyed")
		s.hooks.enemyDestroyed(e.Pos)
	}
	return true
}

// AttackRegion returns the square hit region placed reach units from the
// player along its facing.
func (s *CombatSystem) AttackRegion(p *entity.Player) entity.Rect {
	center := p.Pos.Add(p.Facing.Scale(s.config.AttackReach))
	return entity.RectAround(center, s.config.AttackSize, s.config.AttackSize)
}

// DamagePlayer applies one point of damage unless the player is inside the
// invulnerability window. The window is measured from LastAttack, and taking
// damage restamps LastAttack, so a recent attack also shields the player and
// a hit restarts the attack cooldown. It reports whether damage was applied.
func (s *CombatSystem) DamagePlayer(p *entity.Player, now time.Duration) bool {
	if p.IsDead() {
		return false
	}
	if now-p.LastAttack < s.config.Invulnerable.Duration() {
		return false
	}

	p.LastAttack = now
	killed := p.TakeDamage(1)
	s.log.WithField("health", p.Health).Debug("Player damaged")
	s.hooks.playerDamaged(p.Health)

	if killed && s.OnPlayerKilled != nil {
		s.OnPlayerKilled()
	}
	return true
}
