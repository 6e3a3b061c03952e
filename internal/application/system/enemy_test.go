package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
)

func TestEnemySystem_PursuesInsideAggroRadius(t *testing.T) {
	f := newFixture(createTestConfig())
	e := f.addEnemy(f.p.Pos.Add(entity.Vec(150, 200))) // distance 250
	e.Vel = entity.Vec(1, 1)
	start := e.Pos

	f.enemies.Update(f.p, 0)

	assert.InDelta(t, -0.9, e.Vel.X, 1e-9)
	assert.InDelta(t, -1.2, e.Vel.Y, 1e-9)
	assert.InDelta(t, 1.5, e.Vel.Len(), 1e-9)
	assert.InDelta(t, start.X-0.9, e.Pos.X, 1e-9)
	assert.InDelta(t, start.Y-1.2, e.Pos.Y, 1e-9)
}

func TestEnemySystem_Patrol(t *testing.T) {
	t.Run("keeps velocity when not re-rolled", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Enemy.PatrolChangeProb = 0
		f := newFixture(cfg)
		e := f.addEnemy(f.p.Pos.Add(entity.Vec(500, 0)))
		e.Vel = entity.Vec(0.5, -0.25)

		for i := 0; i < 10; i++ {
			f.enemies.Update(f.p, 0)
		}

		assert.Equal(t, entity.Vec(0.5, -0.25), e.Vel)
		assert.InDelta(t, f.p.Pos.X+505, e.Pos.X, 1e-9)
		assert.InDelta(t, f.p.Pos.Y-2.5, e.Pos.Y, 1e-9)
	})

	t.Run("re-rolls components in [-1, 1]", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Enemy.PatrolChangeProb = 1
		f := newFixture(cfg)
		e := f.addEnemy(f.p.Pos.Add(entity.Vec(-600, 0)))

		for i := 0; i < 50; i++ {
			f.enemies.Update(f.p, 0)
			assert.LessOrEqual(t, math.Abs(e.Vel.X), 1.0)
			assert.LessOrEqual(t, math.Abs(e.Vel.Y), 1.0)
		}
		assert.False(t, e.Vel.IsZero())
	})
}

func TestEnemySystem_BlockedByObstacles(t *testing.T) {
	cfg := createTestConfig()
	cfg.Enemy.PatrolChangeProb = 0
	wall := blocking(1000, 0, 50, 1800)
	f := newFixture(cfg, wall)
	e := f.addEnemy(entity.Vec(980, 300)) // right edge touching the wall
	e.Vel = entity.Vec(1, 0)

	f.enemies.Update(f.p, 0)
	f.enemies.Update(f.p, 0)

	assert.Equal(t, entity.Vec(980, 300), e.Pos)
}

func TestEnemySystem_MeleeDamage(t *testing.T) {
	t.Run("hurts a nearby player", func(t *testing.T) {
		f := newFixture(createTestConfig())
		f.addEnemy(f.p.Pos.Add(entity.Vec(30, 0)))

		f.enemies.Update(f.p, 0)

		assert.Equal(t, f.p.MaxHealth-1, f.p.Health)
	})

	t.Run("an attacking player is safe", func(t *testing.T) {
		f := newFixture(createTestConfig())
		f.addEnemy(f.p.Pos.Add(entity.Vec(30, 0)))
		f.p.Attacking = true

		f.enemies.Update(f.p, 0)

		assert.Equal(t, f.p.MaxHealth, f.p.Health)
	})

	t.Run("outside melee radius", func(t *testing.T) {
		f := newFixture(createTestConfig())
		f.addEnemy(f.p.Pos.Add(entity.Vec(45, 0)))

		f.enemies.Update(f.p, 0)

		assert.Equal(t, f.p.MaxHealth, f.p.Health)
	})

	t.Run("two enemies in one frame deal one damage", func(t *testing.T) {
		f := newFixture(createTestConfig())
		f.addEnemy(f.p.Pos.Add(entity.Vec(30, 0)))
		f.addEnemy(f.p.Pos.Add(entity.Vec(-30, 0)))

		f.enemies.Update(f.p, 0)

		assert.Equal(t, f.p.MaxHealth-1, f.p.Health)
	})
}

func TestEnemySystem_SpawnCap(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawner.Cap = 2
	f := newFixture(cfg)

	assert.True(t, f.enemies.Spawn(f.p))
	assert.True(t, f.enemies.Spawn(f.p))
	assert.False(t, f.enemies.Spawn(f.p))
	assert.Len(t, f.store.Enemies, 2)
}

func TestEnemySystem_SpawnAwayFromPlayer(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawner.Cap = 200
	f := newFixture(cfg)
	var spawned []entity.Vector2
	f.hooks.OnEnemySpawned = func(pos entity.Vector2) { spawned = append(spawned, pos) }

	for i := 0; i < 200; i++ {
		require.True(t, f.enemies.Spawn(f.p))
	}

	require.Len(t, spawned, 200)
	for _, e := range f.store.Enemies {
		assert.GreaterOrEqual(t, math.Abs(e.Pos.X-f.p.Pos.X), 200.0)
		assert.GreaterOrEqual(t, math.Abs(e.Pos.Y-f.p.Pos.Y), 200.0)
		assert.Equal(t, e.Pos, f.enemies.mover.Clamp(e.Pos, e.Size), "spawns inside the clamp range")
		assert.Equal(t, cfg.Enemy.Health, e.Health)
	}
}

func TestEnemySystem_SpawnGivesUpOnTinyMap(t *testing.T) {
	cfg := createTestConfig()
	cfg.Map.Width, cfg.Map.Height = 300, 300
	f := newFixture(cfg)

	assert.False(t, f.enemies.Spawn(f.p))
	assert.Empty(t, f.store.Enemies)
}

func TestEnemySystem_Spawner(t *testing.T) {
	f := newFixture(createTestConfig())
	f.enemies.StartSpawner(f.p, 0)

	f.timers.Advance(2999 * ms)
	assert.Empty(t, f.store.Enemies)

	f.timers.Advance(3000 * ms)
	assert.Len(t, f.store.Enemies, 1)

	f.timers.Advance(5000 * ms)
	assert.Len(t, f.store.Enemies, 1)

	f.timers.Advance(6016 * ms)
	assert.Len(t, f.store.Enemies, 2)
}

func TestEnemySystem_SpawnerKeepsFixedInterval(t *testing.T) {
	f := newFixture(createTestConfig())
	f.enemies.StartSpawner(f.p, 0)
	key := timer.Key{Kind: TimerSpawn}

	// frames land 8ms past each due time
	for _, now := range []time.Duration{3008 * ms, 6008 * ms, 9008 * ms} {
		f.timers.Advance(now)
	}

	due, ok := f.timers.DueAt(key)
	require.True(t, ok)
	assert.Equal(t, 12000*ms, due)
	assert.Len(t, f.store.Enemies, 3)
}
