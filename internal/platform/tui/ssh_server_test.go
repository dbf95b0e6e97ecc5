package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func newTestRemote(t *testing.T) RemoteModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	platformer.SetConfigPath(path)
	t.Cleanup(func() { platformer.SetConfigPath("") })

	return NewRemoteModel(nil, core.DefaultConfig(), 6, log.New(io.Discard))
}

func sendRemote(t *testing.T, m RemoteModel, msg tea.Msg) (RemoteModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(RemoteModel)
	require.True(t, ok)
	return out, cmd
}

func TestSSHServerSessionLimit(t *testing.T) {
	s := &SSHServer{config: SSHServerConfig{MaxSessions: 2}}

	assert.True(t, s.admit())
	assert.True(t, s.admit())
	assert.False(t, s.admit(), "third player is over the limit")
	assert.Equal(t, 2, s.Sessions())

	s.release()
	assert.True(t, s.admit())

	unlimited := &SSHServer{}
	for range 100 {
		require.True(t, unlimited.admit())
	}
}

func TestRemoteModelGameAndBack(t *testing.T) {
	m := newTestRemote(t)

	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel, "campaign starts a game")
	assert.True(t, m.gameModel.embedded)
	assert.Contains(t, m.View(), "Lives: 3")

	m, _ = sendRemote(t, m, runeKey('p'))
	m, _ = sendRemote(t, m, TickMsg{})
	m, cmd := sendRemote(t, m, runeKey('b'))

	assert.Nil(t, m.gameModel, "back returns to the menu")
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "Select a mode")
}

func TestRemoteModelStageSelect(t *testing.T) {
	m := newTestRemote(t)

	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.gameModel)
	game, ok := m.gameModel.game.(*platformer.Game)
	require.True(t, ok)
	assert.Equal(t, 2, game.View().Stage)
}

func TestRemoteModelScoreboardAndQuit(t *testing.T) {
	m := newTestRemote(t)

	m, _ = sendRemote(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)
	assert.Contains(t, m.View(), "No runs recorded yet.")

	m, _ = sendRemote(t, m, runeKey('b'))
	assert.Nil(t, m.scoreboard)

	m, cmd := sendRemote(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
