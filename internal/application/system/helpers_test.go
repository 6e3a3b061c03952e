package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/spatial"
)

const ms = time.Millisecond

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestConfig() *config.AdventureConfig {
	return config.DefaultAdventure()
}

// fixture wires the systems over an explicit obstacle list
type fixture struct {
	cfg     *config.AdventureConfig
	store   *entity.Store
	timers  *timer.Scheduler
	hooks   *Hooks
	mover   *Mover
	combat  *CombatSystem
	player  *PlayerSystem
	enemies *EnemySystem
	collect *CollectSystem
	p       *entity.Player
}

func newFixture(cfg *config.AdventureConfig, obstacles ...entity.Obstacle) *fixture {
	store := entity.NewStore()
	store.Obstacles = obstacles
	timers := timer.New()
	hooks := &Hooks{}
	mover := NewMover(spatial.NewIndex(cfg.Map.Width, cfg.Map.Height, obstacles), cfg.Map.Width, cfg.Map.Height)
	combat := NewCombatSystem(&cfg.Combat, store, timers, hooks)
	rng := testRNG()

	f := &fixture{
		cfg:     cfg,
		store:   store,
		timers:  timers,
		hooks:   hooks,
		mover:   mover,
		combat:  combat,
		player:  NewPlayerSystem(&cfg.Player, mover, combat),
		enemies: NewEnemySystem(cfg, store, mover, combat, timers, hooks, rng),
		collect: NewCollectSystem(&cfg.Collectibles, store, NewGenerator(cfg, rng), timers, hooks),
	}
	f.p = entity.NewPlayer(store.NewID(), entity.Vec(cfg.Map.Width/2, cfg.Map.Height/2), cfg.Player.Size, cfg.Player.MaxHealth)
	return f
}

func (f *fixture) addEnemy(pos entity.Vector2) *entity.Enemy {
	e := entity.NewEnemy(f.store.NewID(), pos, entity.Vector2{}, f.cfg.Enemy.Health, f.cfg.Enemy.Size, f.cfg.Enemy.HitboxSize)
	f.store.AddEnemy(e)
	return e
}

func blocking(x, y, w, h float64) entity.Obstacle {
	return entity.Obstacle{Kind: entity.ObstacleBlocking, Rect: entity.Rect{X: x, Y: y, W: w, H: h}}
}

func hazard(x, y, w, h float64) entity.Obstacle {
	return entity.Obstacle{Kind: entity.ObstacleHazardous, Rect: entity.Rect{X: x, Y: y, W: w, H: h}}
}
