package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, "{}\n", args...)
}

func executeWithConfig(t *testing.T, yaml string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "platformer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))
	t.Cleanup(func() { platformer.SetConfigPath("") })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", cfgPath, "--db", filepath.Join(t.TempDir(), "runs.db")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsPreview(t *testing.T) {
	out, err := execute(t, "levels", "1", "--width", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "Stage 1  (2400x480 px, 31 platforms")
	assert.Contains(t, out, "spawn 312,336")
	assert.Contains(t, out, "checkpoint 1896,308")
	assert.NotContains(t, out, "Stage 2")
}

func TestLevelsRejectsBadStage(t *testing.T) {
	_, err := execute(t, "levels", "zero")
	assert.Error(t, err)
}

func TestLevelsRejectsRaggedTemplate(t *testing.T) {
	yaml := "levels:\n  templates:\n    - [\"P..\", \"##\"]\n"
	_, err := executeWithConfig(t, yaml, "levels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level template 1: row 2 has width 2, expected 3")
}

func TestScoresEmpty(t *testing.T) {
	out, err := execute(t, "scores", platformer.EndlessGameID)
	require.NoError(t, err)
	assert.Contains(t, out, "High Scores - Platformer (Endless)")
	assert.Contains(t, out, "No runs recorded yet.")

	_, err = execute(t, "scores", "pong")
	assert.Error(t, err)
}

func TestVariantSummary(t *testing.T) {
	enemies := []platformer.EnemySpawn{
		{Variant: platformer.VariantShooter},
		{Variant: platformer.VariantPatrol},
		{Variant: platformer.VariantPatrol},
	}
	assert.Equal(t, "2 patrol, 1 shooter", variantSummary(enemies))
	assert.Equal(t, "none", variantSummary(nil))
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "bogus", portOf("bogus"))
}
