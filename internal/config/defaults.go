package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Viewport: ViewportConfig{Width: 960, Height: 640},
		TileSize: 48,
		Physics:  PhysicsConfig{Gravity: 0.8},
		Player: PlayerConfig{
			Width:          34,
			Height:         46,
			Speed:          6,
			JumpPower:      -15,
			DoubleJumpMult: 0.95,
			CoyoteFrames:   8,
			JumpBuffer:     8,
			DashSpeed:      18,
			DashCooldown:   45,
			Lives:          3,
			FallMargin:     200,
			Knockback:      60,
			DefaultSpawnX:  96,
			DefaultSpawnY:  288,
		},
		Projectiles: ProjectileConfig{
			Size:        8,
			PlayerSpeed: 12,
			EnemySpeed:  6,
			PlayerCap:   6,
		},
		Enemies: EnemyConfig{
			Width:         36,
			Height:        40,
			ProbeSize:     8,
			ProbeGap:      6,
			AggroRange:    400,
			SpawnSpeedMin: 0.8,
			SpawnSpeedMax: 1.6,
			ShootFirstMin: 30,
			ShootFirstMax: 120,
			ShootRearmMin: 40,
			ShootRearmMax: 120,
			DustChance:    0.01,
		},
		Pickups: PickupConfig{
			CollectibleSize:  20,
			CheckpointWidth:  20,
			CheckpointHeight: 28,
		},
		Scoring: ScoringConfig{
			EnemyKill:   100,
			Collectible: 50,
			StageBonus:  500,
		},
		Lifecycle: LifecycleConfig{
			MaxStage:         6,
			TransitionFrames: 54, // 0.9s at 60 fps
			ClearDebounce:    72, // 1.2s at 60 fps
		},
		Particles: ParticleConfig{
			Lifespan: 40,
			Gravity:  0.3,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Tiers: []DifficultyTier{
				{EnemyCount: 4, EnemySpeed: 1.0},
				{EnemyCount: 6, EnemySpeed: 1.2},
				{EnemyCount: 8, EnemySpeed: 1.5},
				{EnemyCount: 10, EnemySpeed: 1.9},
				{EnemyCount: 12, EnemySpeed: 2.3},
			},
		},
		Render: RenderConfig{
			CellWidth:  12,
			CellHeight: 24,
			HoldTicks:  10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer", "platformer_endless":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
