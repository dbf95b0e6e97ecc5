package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := decodePlatformer(defaultPlatformerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if err := embedded.Validate(); err != nil {
		t.Fatalf("embedded defaults are invalid: %v", err)
	}

	def := DefaultPlatformerConfig()
	if embedded.Player != def.Player {
		t.Errorf("player section differs:\n embedded %+v\n default  %+v", embedded.Player, def.Player)
	}
	if embedded.Enemies != def.Enemies {
		t.Errorf("enemies section differs: %+v vs %+v", embedded.Enemies, def.Enemies)
	}
	if embedded.Lifecycle != def.Lifecycle {
		t.Errorf("lifecycle section differs: %+v vs %+v", embedded.Lifecycle, def.Lifecycle)
	}
	if len(embedded.Difficulty.Tiers) != len(def.Difficulty.Tiers) {
		t.Fatalf("tier count = %d, expected %d", len(embedded.Difficulty.Tiers), len(def.Difficulty.Tiers))
	}
	for i := range def.Difficulty.Tiers {
		if embedded.Difficulty.Tiers[i] != def.Difficulty.Tiers[i] {
			t.Errorf("tier %d = %+v, expected %+v", i+1, embedded.Difficulty.Tiers[i], def.Difficulty.Tiers[i])
		}
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
player:
  lives: 7
lifecycle:
  max_stage: 2
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}

	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Lifecycle.MaxStage != 2 {
		t.Errorf("MaxStage = %d, expected 2", cfg.Lifecycle.MaxStage)
	}
	// Keys the file does not name keep their defaults.
	if cfg.Player.Speed != 6 || cfg.TileSize != 48 {
		t.Errorf("partial config should keep defaults, got speed=%v tile=%d", cfg.Player.Speed, cfg.TileSize)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
	}{
		{"missing file", "", false},
		{"malformed yaml", "player: [unclosed", true},
		{"invalid values", "tile_size: 0\n", true},
		{"ragged template", "levels:\n  templates:\n    - [\"##\", \"#\"]\n", true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.create {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatalf("case %d: write failed: %v", i, err)
				}
			}
			if _, err := LoadPlatformer(path); err == nil {
				t.Error("LoadPlatformer() should fail")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
		ok     bool
	}{
		{"defaults", func(*PlatformerConfig) {}, true},
		{"no tiers", func(c *PlatformerConfig) { c.Difficulty.Tiers = nil }, false},
		{"zero lives", func(c *PlatformerConfig) { c.Player.Lives = 0 }, false},
		{"inverted spawn speed", func(c *PlatformerConfig) { c.Enemies.SpawnSpeedMin = 3 }, false},
		{"inverted shooter timer", func(c *PlatformerConfig) { c.Enemies.ShootRearmMin = 500 }, false},
		{"empty template", func(c *PlatformerConfig) { c.Levels.Templates = [][]string{{}} }, false},
		{"custom template", func(c *PlatformerConfig) { c.Levels.Templates = [][]string{{"P..", "###"}} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name    string
		grid    []string
		wantErr string
	}{
		{"valid", []string{"..", "##"}, ""},
		{"no rows", nil, "template has no rows"},
		{"empty first row", []string{""}, "template has an empty first row"},
		{"ragged", []string{"...", ".."}, "row 2 has width 2, expected 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTemplate(tc.grid)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateTemplate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("ValidateTemplate() = %v, expected %q", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset")
	}
}
