package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PlatformerConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodePlatformer(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if cfg, err := decodePlatformer(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodePlatformer(defaultPlatformerYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// An empty preset applies the preset named in the config itself.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	cfg.Difficulty.Preset = preset

	tiers := make([]DifficultyTier, len(cfg.Difficulty.Tiers))
	copy(tiers, cfg.Difficulty.Tiers)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		for i := range tiers {
			tiers[i].EnemyCount = max(0, tiers[i].EnemyCount-2)
			tiers[i].EnemySpeed *= 0.8
		}
	case DifficultyHard:
		cfg.Player.Lives = 2
		for i := range tiers {
			tiers[i].EnemyCount += 2
			tiers[i].EnemySpeed *= 1.25
		}
	case DifficultyFixed:
		if len(tiers) > 0 {
			tiers = tiers[:1]
		}
	}

	cfg.Difficulty.Tiers = tiers
}

// Validate reports the first setting that would make the simulation unplayable.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return errors.New("config: viewport must be positive")
	case c.TileSize <= 0:
		return errors.New("config: tile_size must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("config: player size must be positive")
	case c.Enemies.Width <= 0 || c.Enemies.Height <= 0 || c.Enemies.ProbeSize <= 0:
		return errors.New("config: enemy sizes must be positive")
	case c.Projectiles.Size <= 0:
		return errors.New("config: projectile size must be positive")
	case c.Player.Lives <= 0:
		return errors.New("config: player lives must be positive")
	case c.Lifecycle.MaxStage <= 0:
		return errors.New("config: max_stage must be positive")
	case c.Lifecycle.TransitionFrames < 0 || c.Lifecycle.ClearDebounce < 0:
		return errors.New("config: lifecycle frame counts must not be negative")
	case len(c.Difficulty.Tiers) == 0:
		return errors.New("config: difficulty table has no tiers")
	case c.Enemies.SpawnSpeedMin > c.Enemies.SpawnSpeedMax:
		return errors.New("config: enemy spawn speed range is inverted")
	case c.Enemies.ShootFirstMin > c.Enemies.ShootFirstMax || c.Enemies.ShootRearmMin > c.Enemies.ShootRearmMax:
		return errors.New("config: shooter timer range is inverted")
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return errors.New("config: render cell size must be positive")
	}

	for i, tpl := range c.Levels.Templates {
		if err := ValidateTemplate(tpl); err != nil {
			return fmt.Errorf("config: level template %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateTemplate rejects grids the level builder cannot size: no rows,
// an empty first row, or rows of differing width.
func ValidateTemplate(rows []string) error {
	if len(rows) == 0 {
		return errors.New("template has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return errors.New("template has an empty first row")
	}
	for r, row := range rows {
		if len(row) != width {
			return fmt.Errorf("row %d has width %d, expected %d", r+1, len(row), width)
		}
	}
	return nil
}
