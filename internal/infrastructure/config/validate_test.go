package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdventureConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultAdventure().Validate())

	tests := []struct {
		name   string
		mutate func(c *AdventureConfig)
	}{
		{"zero map", func(c *AdventureConfig) { c.Map.Width = 0 }},
		{"negative viewport", func(c *AdventureConfig) { c.Viewport.Height = -1 }},
		{"negative obstacle count", func(c *AdventureConfig) { c.Obstacles.Blocking.Count = -3 }},
		{"inverted size range", func(c *AdventureConfig) { c.Obstacles.Hazardous.MinSize = 300; c.Obstacles.Hazardous.MaxSize = 100 }},
		{"region larger than map", func(c *AdventureConfig) { c.Obstacles.Blocking.MaxSize = 5000 }},
		{"negative keys", func(c *AdventureConfig) { c.Collectibles.Keys = -1 }},
		{"margin swallows map", func(c *AdventureConfig) { c.Collectibles.Margin = 1200 }},
		{"map smaller than player", func(c *AdventureConfig) { c.Map.Width = 50 }},
		{"zero health", func(c *AdventureConfig) { c.Player.MaxHealth = 0 }},
		{"bad probability", func(c *AdventureConfig) { c.Enemy.PatrolChangeProb = 1.5 }},
		{"no spawn attempts", func(c *AdventureConfig) { c.Spawner.MaxAttempts = 0 }},
		{"fractional negative spawn distance", func(c *AdventureConfig) { c.Spawner.MinDistance = -0.5 }},
		{"zero collectible size", func(c *AdventureConfig) { c.Collectibles.Size = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAdventure()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestAdventureConfig_ValidateZeroCountSkipsSizes(t *testing.T) {
	cfg := DefaultAdventure()
	cfg.Obstacles.Hazardous = RegionConfig{}
	assert.NoError(t, cfg.Validate())
}

func TestAdventureConfig_ValidateErrorOrder(t *testing.T) {
	cfg := DefaultAdventure()
	cfg.Obstacles.Blocking.Count = -1
	cfg.Obstacles.Hazardous.Count = -1

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	blocking := strings.Index(msg, "obstacles.blocking")
	hazardous := strings.Index(msg, "obstacles.hazardous")
	require.NotEqual(t, -1, blocking)
	require.NotEqual(t, -1, hazardous)
	assert.Less(t, blocking, hazardous)

	for i := 0; i < 20; i++ {
		assert.Equal(t, msg, cfg.Validate().Error())
	}
}

func TestSoccerConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultSoccer().Validate())

	cfg := DefaultSoccer()
	cfg.Ball.Radius = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultSoccer()
	cfg.Ball.Bounce = 2
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultSoccer()
	cfg.Field.Width = 0
	cfg.Ball.Radius = 0
	msg := cfg.Validate().Error()
	assert.Less(t, strings.Index(msg, "field.width"), strings.Index(msg, "ball.radius"))
	for i := 0; i < 20; i++ {
		assert.Equal(t, msg, cfg.Validate().Error())
	}
}
