package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports every precondition the simulation relies on.
// All problems are returned joined so a bad file can be fixed in one pass.
func (c *AdventureConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, invalid("%s must be > 0, got %v", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, invalid("%s must be >= 0, got %d", name, v))
		}
	}

	positive("map.width", c.Map.Width)
	positive("map.height", c.Map.Height)
	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("frameStepMs", float64(c.FrameStep))

	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, invalid("player.maxHealth must be > 0, got %d", c.Player.MaxHealth))
	}
	// The clamp range [size/2, dim-1.5*size] must not be empty.
	if c.Map.Width < 2*c.Player.Size || c.Map.Height < 2*c.Player.Size {
		errs = append(errs, invalid("map %vx%v too small for player size %v", c.Map.Width, c.Map.Height, c.Player.Size))
	}

	positive("enemy.size", c.Enemy.Size)
	if c.Map.Width < 2*c.Enemy.Size || c.Map.Height < 2*c.Enemy.Size {
		errs = append(errs, invalid("map %vx%v too small for enemy size %v", c.Map.Width, c.Map.Height, c.Enemy.Size))
	}
	positive("enemy.hitboxSize", c.Enemy.HitboxSize)
	positive("enemy.aggroRadius", c.Enemy.AggroRadius)
	positive("enemy.pursuitSpeed", c.Enemy.PursuitSpeed)
	if c.Enemy.PatrolChangeProb < 0 || c.Enemy.PatrolChangeProb > 1 {
		errs = append(errs, invalid("enemy.patrolChangeProb must be in [0,1], got %v", c.Enemy.PatrolChangeProb))
	}

	positive("combat.attackCooldownMs", float64(c.Combat.AttackCooldown))
	positive("combat.attackDurationMs", float64(c.Combat.AttackDuration))
	positive("combat.attackSize", c.Combat.AttackSize)

	for _, region := range []struct {
		name string
		r    RegionConfig
	}{
		{"obstacles.blocking", c.Obstacles.Blocking},
		{"obstacles.hazardous", c.Obstacles.Hazardous},
	} {
		name, r := region.name, region.r
		nonNegative(name+".count", r.Count)
		if r.Count == 0 {
			continue
		}
		positive(name+".minSize", r.MinSize)
		if r.MaxSize < r.MinSize {
			errs = append(errs, invalid("%s.maxSize %v < minSize %v", name, r.MaxSize, r.MinSize))
		}
		if r.MaxSize > c.Map.Width || r.MaxSize > c.Map.Height {
			errs = append(errs, invalid("%s.maxSize %v does not fit the map", name, r.MaxSize))
		}
	}

	nonNegative("collectibles.rupees", c.Collectibles.Rupees)
	nonNegative("collectibles.keys", c.Collectibles.Keys)
	if c.Collectibles.Margin < 0 || 2*c.Collectibles.Margin >= c.Map.Width || 2*c.Collectibles.Margin >= c.Map.Height {
		errs = append(errs, invalid("collectibles.margin %v does not fit the map", c.Collectibles.Margin))
	}
	positive("collectibles.pickupRadius", c.Collectibles.PickupRadius)
	positive("collectibles.size", c.Collectibles.Size)
	nonNegative("collectibles.settleDelayMs", int(c.Collectibles.SettleDelay))

	positive("spawner.intervalMs", float64(c.Spawner.Interval))
	nonNegative("spawner.cap", c.Spawner.Cap)
	nonNegative("spawner.initial", c.Spawner.Initial)
	if c.Spawner.MinDistance < 0 {
		errs = append(errs, invalid("spawner.minDistance must be >= 0, got %v", c.Spawner.MinDistance))
	}
	if c.Spawner.MaxAttempts <= 0 {
		errs = append(errs, invalid("spawner.maxAttempts must be > 0, got %d", c.Spawner.MaxAttempts))
	}

	return errors.Join(errs...)
}

// Validate checks the soccer toy's tuning.
func (c *SoccerConfig) Validate() error {
	var errs []error
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.size", c.Player.Size},
		{"player.speed", c.Player.Speed},
		{"player.dashSpeed", c.Player.DashSpeed},
		{"ball.radius", c.Ball.Radius},
	} {
		if f.v <= 0 {
			errs = append(errs, invalid("%s must be > 0, got %v", f.name, f.v))
		}
	}
	if c.Player.DashCooldown < 0 {
		errs = append(errs, invalid("player.dashCooldownMs must be >= 0, got %d", c.Player.DashCooldown))
	}
	if c.Ball.Bounce < 0 || c.Ball.Bounce > 1 {
		errs = append(errs, invalid("ball.bounce must be in [0,1], got %v", c.Ball.Bounce))
	}
	return errors.Join(errs...)
}
