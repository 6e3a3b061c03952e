package config

import "time"

// Millis is a duration written as whole milliseconds in YAML.
type Millis int

// Duration converts m to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// AdventureConfig is the root config for adventure.yaml
type AdventureConfig struct {
	Seed         int64              `yaml:"seed"`
	Map          SizeConfig         `yaml:"map"`
	Viewport     SizeConfig         `yaml:"viewport"`
	FrameStep    Millis             `yaml:"frameStepMs"`
	Player       PlayerConfig       `yaml:"player"`
	Enemy        EnemyConfig        `yaml:"enemy"`
	Combat       CombatConfig       `yaml:"combat"`
	Obstacles    ObstaclesConfig    `yaml:"obstacles"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Spawner      SpawnerConfig      `yaml:"spawner"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"maxHealth"`
}

type EnemyConfig struct {
	Size             float64 `yaml:"size"`
	HitboxSize       float64 `yaml:"hitboxSize"`
	Health           int     `yaml:"health"`
	AggroRadius      float64 `yaml:"aggroRadius"`
	PursuitSpeed     float64 `yaml:"pursuitSpeed"`
	PatrolChangeProb float64 `yaml:"patrolChangeProb"`
	MeleeRadius      float64 `yaml:"meleeRadius"`
}

type CombatConfig struct {
	AttackCooldown Millis  `yaml:"attackCooldownMs"`
	AttackDuration Millis  `yaml:"attackDurationMs"`
	AttackReach    float64 `yaml:"attackReach"`
	AttackSize     float64 `yaml:"attackSize"`
	Invulnerable   Millis  `yaml:"invulnerableMs"`
}

type ObstaclesConfig struct {
	Blocking  RegionConfig `yaml:"blocking"`
	Hazardous RegionConfig `yaml:"hazardous"`
}

// RegionConfig describes how many regions of one kind to generate and
// the range their width and height are drawn from.
type RegionConfig struct {
	Count   int     `yaml:"count"`
	MinSize float64 `yaml:"minSize"`
	MaxSize float64 `yaml:"maxSize"`
}

type CollectiblesConfig struct {
	Rupees       int     `yaml:"rupees"`
	Keys         int     `yaml:"keys"`
	Margin       float64 `yaml:"margin"`
	PickupRadius float64 `yaml:"pickupRadius"`
	Size         float64 `yaml:"size"`
	SettleDelay  Millis  `yaml:"settleDelayMs"`
}

type SpawnerConfig struct {
	Interval    Millis  `yaml:"intervalMs"`
	Cap         int     `yaml:"cap"`
	Initial     int     `yaml:"initial"`
	MinDistance float64 `yaml:"minDistance"`
	MaxAttempts int     `yaml:"maxAttempts"`
}

// SoccerConfig is the root config for soccer.yaml
type SoccerConfig struct {
	Field  SizeConfig        `yaml:"field"`
	Player SoccerPlayerConfig `yaml:"player"`
	Ball   BallConfig        `yaml:"ball"`
	Kick   KickConfig        `yaml:"kick"`
}

type SoccerPlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashCooldown Millis  `yaml:"dashCooldownMs"`
	DashSpark    Millis  `yaml:"dashSparkMs"`
}

type BallConfig struct {
	Radius  float64 `yaml:"radius"`
	Gravity float64 `yaml:"gravity"`
	Bounce  float64 `yaml:"bounce"` // vertical velocity kept (and inverted) on floor contact
}

type KickConfig struct {
	Factor      float64 `yaml:"factor"`
	Power       float64 `yaml:"power"`
	VolleyPower float64 `yaml:"volleyPower"`
	Lift        float64 `yaml:"lift"`
}
