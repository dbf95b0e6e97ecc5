package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func newTestBoard(t *testing.T, width int) (ScoreboardModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveScore(platformer.GameID, 900, 2)
	require.NoError(t, err)
	_, err = store.SaveScore(platformer.GameID, 400, 6)
	require.NoError(t, err)
	_, err = store.SaveScore(platformer.EndlessGameID, 1500, 9)
	require.NoError(t, err)

	return NewScoreboardModel(store, platformer.GameID, width, 30), store
}

func sendBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return out, cmd
}

func TestScoreboardOpensOnMode(t *testing.T) {
	m, _ := newTestBoard(t, 100)

	assert.Equal(t, platformer.GameID, m.Mode())
	require.Len(t, m.runs, 2)
	assert.Equal(t, 900, m.runs[0].Score)
	assert.Equal(t, 2, m.stats.Runs)

	unknown := NewScoreboardModel(nil, "pong", 100, 30)
	assert.Equal(t, platformer.GameID, unknown.Mode())
	assert.Empty(t, unknown.runs)
}

func TestScoreboardModeSwitch(t *testing.T) {
	m, _ := newTestBoard(t, 100)

	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, platformer.EndlessGameID, m.Mode())
	require.Len(t, m.runs, 1)
	assert.Equal(t, 9, m.runs[0].Stage)

	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, platformer.GameID, m.Mode(), "tab wraps around")

	m, _ = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, platformer.EndlessGameID, m.Mode())
}

func TestScoreboardSortCycles(t *testing.T) {
	m, _ := newTestBoard(t, 100)

	m, _ = sendBoard(t, m, runeKey('s'))
	assert.Equal(t, storage.ByStage, m.Order())
	require.Len(t, m.runs, 2)
	assert.Equal(t, 6, m.runs[0].Stage)

	m, _ = sendBoard(t, m, runeKey('s'))
	m, _ = sendBoard(t, m, runeKey('s'))
	assert.Equal(t, storage.ByScore, m.Order())
	assert.Equal(t, 900, m.runs[0].Score)
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
		lacks string
	}{
		{"wide shows panel", 100, "Totals", ""},
		{"narrow shows line", 60, "Runs: 2  Best: 900  Best stage: 6", "Totals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestBoard(t, tt.width)
			view := m.View()
			assert.Contains(t, view, "HIGH SCORES")
			assert.Contains(t, view, "sorted by score")
			assert.Contains(t, view, tt.want)
			if tt.lacks != "" {
				assert.NotContains(t, view, tt.lacks)
			}
		})
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m, _ := newTestBoard(t, 100)

	back, cmd := sendBoard(t, m, runeKey('b'))
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, back.View())

	quit, _ := sendBoard(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
}
