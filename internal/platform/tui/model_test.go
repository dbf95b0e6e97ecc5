package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	platformer.SetConfigPath(path)
	t.Cleanup(func() { platformer.SetConfigPath("") })

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return NewModel(platformer.New(), cfg, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelHeldKeysUseLatch(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey('d'))
	assert.Equal(t, 10, m.latch.left[core.ActionRight])
	assert.False(t, m.inputFrame.Has(core.ActionRight), "held actions reach the frame on tick")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Contains(t, m.latch.left, core.ActionDash)
	assert.Contains(t, m.latch.left, core.ActionLeft)
	assert.NotContains(t, m.latch.left, core.ActionRight)
}

func TestModelMouseAimAndFire(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.inputFrame.Aiming)
	assert.Equal(t, 10*12+6, m.inputFrame.AimX)
	assert.Equal(t, 4*24+12, m.inputFrame.AimY)
	assert.True(t, m.latch.sticky[core.ActionFire])

	m, _ = update(t, m, tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.latch.sticky[core.ActionFire])
	assert.Equal(t, 11*12+6, m.inputFrame.AimX)
}

func TestModelPauseAndBack(t *testing.T) {
	m := newTestModel(t, Options{})

	// Back is ignored while playing
	m, _ = update(t, m, runeKey('b'))
	assert.False(t, m.BackToMenu())

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	require.True(t, m.Session().State().Paused)

	m, cmd := update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd)
}

func TestModelEmbeddedBackKeepsProgram(t *testing.T) {
	m := newTestModel(t, Options{})
	m.embedded = true

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelRestartSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, Options{Store: store})
	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})

	assert.Empty(t, m.latch.left, "restart releases held keys")
	assert.Equal(t, 3, m.Session().State().Lives)

	// A run without points is not recorded.
	runs, err := store.AllScores(platformer.GameID)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg{})

	out := m.View()
	assert.Contains(t, out, "Lives: 3")
	assert.Len(t, strings.Split(out, "\n"), 24)
}

func TestRenderScreenRuns(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "HUD")
	s.DrawTextColor(0, 1, "ab", core.ColorRed)
	s.DrawTextColor(2, 1, "cd", core.ColorRed)

	out := RenderScreen(s, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "HUD")
	assert.Contains(t, lines[1], "abcd")
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name string
		rate int
		want time.Duration
	}{
		{"default rate", 60, time.Second / 60},
		{"zero falls back", 0, time.Second / 60},
		{"capped", 1000, time.Second / maxTickRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tickInterval(tt.rate))
		})
	}
}
