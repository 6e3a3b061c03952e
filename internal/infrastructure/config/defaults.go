package config

// DefaultAdventure returns the stock tuning of the adventure game.
func DefaultAdventure() *AdventureConfig {
	return &AdventureConfig{
		Seed:      0,
		Map:       SizeConfig{Width: 2400, Height: 1800},
		Viewport:  SizeConfig{Width: 800, Height: 600},
		FrameStep: 16,
		Player: PlayerConfig{
			Size:      40,
			Speed:     4,
			MaxHealth: 6,
		},
		Enemy: EnemyConfig{
			Size:             40,
			HitboxSize:       48,
			Health:           3,
			AggroRadius:      300,
			PursuitSpeed:     1.5,
			PatrolChangeProb: 0.02,
			MeleeRadius:      40,
		},
		Combat: CombatConfig{
			AttackCooldown: 500,
			AttackDuration: 300,
			AttackReach:    40,
			AttackSize:     30,
			Invulnerable:   1000,
		},
		Obstacles: ObstaclesConfig{
			Blocking:  RegionConfig{Count: 25, MinSize: 40, MaxSize: 120},
			Hazardous: RegionConfig{Count: 8, MinSize: 80, MaxSize: 220},
		},
		Collectibles: CollectiblesConfig{
			Rupees:       30,
			Keys:         3,
			Margin:       50,
			PickupRadius: 30,
			Size:         20,
			SettleDelay:  500,
		},
		Spawner: SpawnerConfig{
			Interval:    3000,
			Cap:         10,
			Initial:     3,
			MinDistance: 200,
			MaxAttempts: 100,
		},
	}
}

// DefaultSoccer returns the stock tuning of the soccer toy.
func DefaultSoccer() *SoccerConfig {
	return &SoccerConfig{
		Field: SizeConfig{Width: 1280, Height: 720},
		Player: SoccerPlayerConfig{
			Size:         30,
			Speed:        5,
			DashSpeed:    15,
			DashCooldown: 1000,
			DashSpark:    100,
		},
		Ball: BallConfig{
			Radius:  15,
			Gravity: 0.2,
			Bounce:  0.6,
		},
		Kick: KickConfig{
			Factor:      0.2,
			Power:       15,
			VolleyPower: 10,
			Lift:        5,
		},
	}
}
