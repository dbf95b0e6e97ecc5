package platformer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// useEmptyConfig points the loader at an empty file so the defaults apply
// regardless of what is installed on the machine.
func useEmptyConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	useEmptyConfig(t)
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	g.Reset(cfg)
	return g
}

func TestGamesRegistered(t *testing.T) {
	assert.True(t, registry.Exists(GameID))
	assert.True(t, registry.Exists(EndlessGameID))

	g, err := registry.Create(EndlessGameID)
	require.NoError(t, err)
	assert.Equal(t, EndlessGameID, g.ID())
	assert.Equal(t, "Platformer (Endless)", g.Title())
}

func TestGameState(t *testing.T) {
	g := newTestGame(t, New())

	st := g.State()
	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.Score)
	assert.Equal(t, "playing", st.Status)
	assert.False(t, st.Finished())

	res := g.Step(press(core.ActionPause))
	assert.Equal(t, core.SignalNone, res.Signal)
	assert.True(t, res.State.Paused)
	assert.Equal(t, "paused", res.State.Status)
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, New())
	for range 30 {
		g.Step(press(core.ActionRight))
	}
	g.Controller().Player().AddScore(250)

	res := g.Step(press(core.ActionRestart))

	assert.Equal(t, core.SignalRestart, res.Signal)
	assert.Equal(t, 250, res.State.Score, "the result carries the finished run")
	assert.Zero(t, g.State().Score)
	assert.Zero(t, g.Controller().Frame())
	assert.Equal(t, 3, g.State().Lives)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New())
	g.SetHighScore(1234)

	screen := core.NewScreen(80, 27)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Lives: 3  Score: 0")
	assert.Contains(t, hud, "Highscore: 1234  Level: 1/6")
	assert.Contains(t, screen.String(), string(PlayerChar))

	g.Step(press(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), BannerPaused)
	assert.Contains(t, screen.String(), OverlayHint)
}

func TestGameRenderEndlessHUD(t *testing.T) {
	g := newTestGame(t, NewEndless())

	screen := core.NewScreen(80, 27)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Level: 1")
	assert.NotContains(t, hud, "Level: 1/")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New())

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}

func TestDifficultyPresetApplies(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t, New())

	assert.Equal(t, 5, g.State().Lives)
}
