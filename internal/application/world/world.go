// Package world owns one adventure session: the entity store, the systems
// that update it and the logical clock that drives deferred actions.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/system"
	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// FirstKeyDialog is shown when the first key is picked up.
const FirstKeyDialog = "A key! Somewhere in these lands a door waits for it."

// World is an adventure session
type World struct {
	cfg *config.AdventureConfig
	rng *rand.Rand
	log *logrus.Entry

	Store  *entity.Store
	Player *entity.Player
	Hooks  *system.Hooks

	index  *spatial.Index
	timers *timer.Scheduler
	gen    *system.Generator

	combat  *system.CombatSystem
	player  *system.PlayerSystem
	enemies *system.EnemySystem
	collect *system.CollectSystem

	state   state.GameState
	prev    input.State
	camera  entity.Vector2
	elapsed time.Duration
}

// New validates cfg and builds a freshly generated world. rng drives every
// random choice, so equal seeds and equal inputs replay identically.
func New(cfg *config.AdventureConfig, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	w := &World{
		cfg:    cfg,
		rng:    rng,
		log:    logger.Component("world"),
		Store:  entity.NewStore(),
		Hooks:  &system.Hooks{},
		timers: timer.New(),
	}
	w.gen = system.NewGenerator(cfg, rng)
	w.combat = system.NewCombatSystem(&cfg.Combat, w.Store, w.timers, w.Hooks)
	w.combat.OnPlayerKilled = w.gameOver
	w.Reset()
	return w, nil
}

// Reset regenerates the map and starts a new run with a fresh player.
func (w *World) Reset() {
	w.Store.Clear()
	w.timers.Clear()

	spawn := entity.Vec(w.cfg.Map.Width/2, w.cfg.Map.Height/2)
	w.gen.Generate(w.Store, entity.RectAround(spawn, 3*w.cfg.Player.Size, 3*w.cfg.Player.Size))

	w.index = spatial.NewIndex(w.cfg.Map.Width, w.cfg.Map.Height, w.Store.Obstacles)
	mover := system.NewMover(w.index, w.cfg.Map.Width, w.cfg.Map.Height)
	w.player = system.NewPlayerSystem(&w.cfg.Player, mover, w.combat)
	w.enemies = system.NewEnemySystem(w.cfg, w.Store, mover, w.combat, w.timers, w.Hooks, w.rng)
	w.collect = system.NewCollectSystem(&w.cfg.Collectibles, w.Store, w.gen, w.timers, w.Hooks)
	w.collect.OnFirstKey = w.openDialog

	w.Player = entity.NewPlayer(w.Store.NewID(), mover.Clamp(spawn, w.cfg.Player.Size), w.cfg.Player.Size, w.cfg.Player.MaxHealth)

	for i := 0; i < w.cfg.Spawner.Initial; i++ {
		w.enemies.Spawn(w.Player)
	}
	w.enemies.StartSpawner(w.Player, 0)

	w.state = state.StatePlaying
	w.prev = 0
	w.elapsed = 0
	w.updateCamera()

	w.log.WithFields(logrus.Fields{
		"enemies": len(w.Store.Enemies),
		"x":       w.Player.Pos.X,
		"y":       w.Player.Pos.Y,
	}).Info("Run started")
}

// Restart is Reset for a run restarted by a key press. held becomes the
// previous input so keys still down do not fire again on the first frame.
func (w *World) Restart(held input.State) {
	w.Reset()
	w.prev = held
}

// Step advances one frame using the world's own clock.
func (w *World) Step(in input.State) {
	w.Tick(in, w.elapsed)
}

// Tick advances one frame at logical time now. Due deferred actions run
// first, then player, enemies, camera, pickups and particle upkeep, and the
// game clock advances by one frame step. In Dialog only the dismiss edge is
// watched; after game over Tick does nothing.
func (w *World) Tick(in input.State, now time.Duration) {
	defer func() { w.prev = in }()

	switch w.state {
	case state.StateGameOver, state.StateMenu:
		return
	case state.StateDialog:
		if in.Pressed(w.prev, input.ActionDismiss) {
			w.state = state.StatePlaying
			w.log.Debug("Dialog dismissed")
		}
		return
	}

	w.timers.Advance(now)

	w.player.Update(w.Player, in, w.prev, now)
	if w.state == state.StateGameOver {
		return
	}
	w.enemies.Update(w.Player, now)
	if w.state == state.StateGameOver {
		return
	}
	w.updateCamera()
	w.collect.Update(w.Player, now)
	w.Hooks.ParticleUpkeep()

	w.elapsed += w.cfg.FrameStep.Duration()
}

func (w *World) updateCamera() {
	w.camera = system.ComputeOffset(
		w.Player.Pos,
		entity.Vec(w.cfg.Map.Width, w.cfg.Map.Height),
		entity.Vec(w.cfg.Viewport.Width, w.cfg.Viewport.Height),
	)
}

func (w *World) gameOver() {
	w.state = state.StateGameOver
	w.log.WithFields(logrus.Fields{
		"rupees":  w.Player.Rupees,
		"keys":    w.Player.Keys,
		"elapsed": w.elapsed,
	}).Info("Game over")
	w.Hooks.GameOver()
}

func (w *World) openDialog() {
	w.state = state.StateDialog
	w.Hooks.Dialog(FirstKeyDialog)
}

// State returns the session state
func (w *World) State() state.GameState {
	return w.state
}

// Camera returns the current camera offset
func (w *World) Camera() entity.Vector2 {
	return w.camera
}

// Elapsed returns the game clock
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// Config returns the world's configuration
func (w *World) Config() *config.AdventureConfig {
	return w.cfg
}

// AttackRegion returns the player's current attack hit region
func (w *World) AttackRegion() entity.Rect {
	return w.combat.AttackRegion(w.Player)
}
