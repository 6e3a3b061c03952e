package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// EnemySystem runs enemy AI and the periodic spawner
type EnemySystem struct {
	config  *config.EnemyConfig
	spawner *config.SpawnerConfig
	store   *entity.Store
	mover   *Mover
	combat  *CombatSystem
	timers  *timer.Scheduler
	hooks   *Hooks
	rng     *rand.Rand
	log     *logrus.Entry
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.AdventureConfig, store *entity.Store, mover *Mover, combat *CombatSystem, timers *timer.Scheduler, hooks *Hooks, rng *rand.Rand) *EnemySystem {
	return &EnemySystem{
		config:  &cfg.Enemy,
		spawner: &cfg.Spawner,
		store:   store,
		mover:   mover,
		combat:  combat,
		timers:  timers,
		hooks:   hooks,
		rng:     rng,
		log:     logger.Component("enemy"),
	}
}

// Update moves every enemy one frame. Enemies beyond the aggro radius keep
// their patrol velocity, re-rolling it with a small probability; enemies
// within it head straight for the player. An enemy inside melee range hurts
// a player that is not attacking.
func (s *EnemySystem) Update(p *entity.Player, now time.Duration) {
	for _, e := range s.store.Enemies {
		dist := spatial.Distance(e.Pos, p.Pos)

		if dist > s.config.AggroRadius {
			if s.rng.Float64() < s.config.PatrolChangeProb {
				e.Vel = s.randomVelocity()
			}
		} else {
			e.Vel = p.Pos.Sub(e.Pos).Normalize().Scale(s.config.PursuitSpeed)
		}

		e.Pos, _ = s.mover.Resolve(e.Pos, e.Vel, e.Size)

		if dist < s.config.MeleeRadius && !p.Attacking {
			s.combat.DamagePlayer(p, now)
		}
	}
}

func (s *EnemySystem) randomVelocity() entity.Vector2 {
	return entity.Vec(s.rng.Float64()*2-1, s.rng.Float64()*2-1)
}

// StartSpawner schedules the repeating spawn check, first due one interval
// after now. Later checks stay on the now+k*interval grid however late
// each one actually runs.
func (s *EnemySystem) StartSpawner(p *entity.Player, now time.Duration) {
	key := timer.Key{Kind: TimerSpawn}
	interval := s.spawner.Interval.Duration()
	due := now + interval

	var tick timer.Func
	tick = func(time.Duration) {
		s.Spawn(p)
		due += interval
		s.timers.At(key, due, tick)
	}
	s.timers.At(key, due, tick)
}

// Spawn adds one enemy if the live count is below the cap. It reports
// whether an enemy was added.
func (s *EnemySystem) Spawn(p *entity.Player) bool {
	if len(s.store.Enemies) >= s.spawner.Cap {
		return false
	}

	pos, ok := s.spawnPosition(p.Pos)
	if !ok {
		s.log.WithField("attempts", s.spawner.MaxAttempts).Warn("No spawn position far enough from player")
		return false
	}

	e := entity.NewEnemy(s.store.NewID(), pos, s.randomVelocity(), s.config.Health, s.config.Size, s.config.HitboxSize)
	s.store.AddEnemy(e)
	s.log.WithFields(logrus.Fields{
		"enemy": e.ID,
		"x":     pos.X,
		"y":     pos.Y,
		"live":  len(s.store.Enemies),
	}).Debug("Enemy spawned")
	s.hooks.enemySpawned(pos)
	return true
}

// spawnPosition samples uniformly inside the enemy clamp range until the
// point is at least MinDistance from the player on both axes, giving up
// after MaxAttempts.
func (s *EnemySystem) spawnPosition(player entity.Vector2) (entity.Vector2, bool) {
	size := s.config.Size
	w, h := s.mover.width, s.mover.height
	for i := 0; i < s.spawner.MaxAttempts; i++ {
		pos := entity.Vec(
			size/2+s.rng.Float64()*(w-2*size),
			size/2+s.rng.Float64()*(h-2*size),
		)
		if math.Abs(pos.X-player.X) >= s.spawner.MinDistance && math.Abs(pos.Y-player.Y) >= s.spawner.MinDistance {
			return pos, true
		}
	}
	return entity.Vector2{}, false
}
