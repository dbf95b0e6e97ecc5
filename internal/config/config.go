// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all tunables of the platformer simulation.
type PlatformerConfig struct {
	Viewport    ViewportConfig   `yaml:"viewport"`
	TileSize    int              `yaml:"tile_size"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Pickups     PickupConfig     `yaml:"pickups"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Lifecycle   LifecycleConfig  `yaml:"lifecycle"`
	Particles   ParticleConfig   `yaml:"particles"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Levels      LevelsConfig     `yaml:"levels"`
	Render      RenderConfig     `yaml:"render"`
	Debug       DebugConfig      `yaml:"debug"`
}

// ViewportConfig is the size of the visible world area in pixels.
type ViewportConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
}

// PhysicsConfig holds world-wide physics constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Added to vertical velocity every frame
}

// PlayerConfig holds player movement and survival tuning.
type PlayerConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	JumpPower      float64 `yaml:"jump_power"` // Negative: up is -y
	DoubleJumpMult float64 `yaml:"double_jump_mult"`
	CoyoteFrames   int     `yaml:"coyote_frames"`
	JumpBuffer     int     `yaml:"jump_buffer_frames"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashCooldown   int     `yaml:"dash_cooldown"`
	Lives          int     `yaml:"lives"`
	FallMargin     int     `yaml:"fall_margin"` // Below level bottom before a fall kills
	Knockback      int     `yaml:"knockback"`
	DefaultSpawnX  int     `yaml:"default_spawn_x"`
	DefaultSpawnY  int     `yaml:"default_spawn_y"`
}

// ProjectileConfig holds projectile tuning.
type ProjectileConfig struct {
	Size        int     `yaml:"size"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	PlayerCap   int     `yaml:"player_cap"` // Max live player projectiles
}

// EnemyConfig holds enemy sensing and behavior tuning.
type EnemyConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	ProbeSize     int     `yaml:"probe_size"`
	ProbeGap      int     `yaml:"probe_gap"`
	AggroRange    int     `yaml:"aggro_range"`
	SpawnSpeedMin float64 `yaml:"spawn_speed_min"`
	SpawnSpeedMax float64 `yaml:"spawn_speed_max"`
	ShootFirstMin int     `yaml:"shoot_first_min"`
	ShootFirstMax int     `yaml:"shoot_first_max"`
	ShootRearmMin int     `yaml:"shoot_rearm_min"`
	ShootRearmMax int     `yaml:"shoot_rearm_max"`
	DustChance    float64 `yaml:"dust_chance"`
}

// PickupConfig holds collectible and checkpoint sizes.
type PickupConfig struct {
	CollectibleSize  int `yaml:"collectible_size"`
	CheckpointWidth  int `yaml:"checkpoint_width"`
	CheckpointHeight int `yaml:"checkpoint_height"`
}

// ScoringConfig holds score awards.
type ScoringConfig struct {
	EnemyKill   int `yaml:"enemy_kill"`
	Collectible int `yaml:"collectible"`
	StageBonus  int `yaml:"stage_bonus"` // Multiplied by the new stage number
}

// LifecycleConfig holds stage progression timing.
type LifecycleConfig struct {
	MaxStage         int `yaml:"max_stage"`
	TransitionFrames int `yaml:"transition_frames"`
	ClearDebounce    int `yaml:"clear_debounce_frames"`
}

// ParticleConfig holds cosmetic particle tuning.
type ParticleConfig struct {
	Lifespan int     `yaml:"lifespan"`
	Gravity  float64 `yaml:"gravity"`
}

// LevelsConfig optionally replaces the built-in stage templates.
type LevelsConfig struct {
	Templates [][]string `yaml:"templates"`
}

// RenderConfig holds terminal rendering parameters.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`  // World pixels per terminal column
	CellHeight int `yaml:"cell_height"` // World pixels per terminal row
	HoldTicks  int `yaml:"hold_ticks"`  // Ticks a key stays held after its last repeat
}

// DebugConfig holds development switches.
type DebugConfig struct {
	StrictInvariants bool `yaml:"strict_invariants"` // Panic instead of skipping on invariant violations
}

// DifficultyConfig defines the per-stage difficulty table.
type DifficultyConfig struct {
	Tiers  []DifficultyTier `yaml:"tiers"`
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyTier is the difficulty of a single stage.
type DifficultyTier struct {
	EnemyCount int     `yaml:"enemy_count"` // Minimum enemies in the stage
	EnemySpeed float64 `yaml:"enemy_speed"` // Speed of filler patrol/chaser enemies
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield
// the empty preset, which leaves the configuration untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
