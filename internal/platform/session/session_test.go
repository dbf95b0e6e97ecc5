package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/replay"
	"github.com/vovakirdan/tui-platformer/internal/save"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fakeGame is a scripted game: each step applies the next state.
type fakeGame struct {
	states    []core.GameState
	pos       int
	restartAt int
	highScore int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.pos = 0 }
func (g *fakeGame) Render(*core.Screen)      {}
func (g *fakeGame) State() core.GameState    { return g.states[g.pos] }
func (g *fakeGame) SetHighScore(score int)   { g.highScore = score }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		prev := g.states[g.pos]
		g.pos = 0
		return core.StepResult{State: prev, Signal: core.SignalRestart}
	}
	if g.pos < len(g.states)-1 {
		g.pos++
	}
	return core.StepResult{State: g.states[g.pos]}
}

var _ registry.Game = (*fakeGame)(nil)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestSessionSavesFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{states: []core.GameState{
		{Lives: 3, Level: 1},
		{Score: 150, Lives: 1, Level: 2},
		{Score: 150, Level: 2, GameOver: true},
	}}
	s := New(g, store, nil, nil, nil)

	for range 5 {
		s.Step(press())
	}

	runs, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 150, runs[0].Score)
	assert.Equal(t, 2, runs[0].Stage)
	assert.True(t, s.State().GameOver)
}

func TestSessionSavesAbandonedRunOnRestart(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{states: []core.GameState{
		{Lives: 3, Level: 1},
		{Score: 80, Lives: 3, Level: 1},
	}}
	s := New(g, store, nil, nil, nil)

	s.Step(press())
	res := s.Step(press(core.ActionRestart))
	assert.Equal(t, core.SignalRestart, res.Signal)
	assert.Zero(t, s.State().Score)

	// The new run can be saved again.
	s.Step(press())
	s.Step(press(core.ActionRestart))

	runs, err := store.AllScores("fake")
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSessionSkipsEmptyRuns(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{states: []core.GameState{{Lives: 3, Level: 1}, {Level: 1, GameOver: true}}}
	s := New(g, store, nil, nil, nil)

	s.Step(press())

	runs, err := store.AllScores("fake")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSessionKeeperAndRecorder(t *testing.T) {
	dir := t.TempDir()
	backend := save.FileBackend{Path: filepath.Join(dir, "save_data.json")}
	require.NoError(t, backend.Save(save.Record{HighScore: 40}))
	keeper := save.NewKeeper(backend, nil)
	rec := replay.NewRecorder("fake", 1, 1, "")

	g := &fakeGame{states: []core.GameState{{Level: 1}, {Score: 90, Level: 1}}}
	s := New(g, nil, keeper, rec, nil)
	assert.Equal(t, 40, g.highScore, "the HUD starts from the saved best")

	s.Step(press(core.ActionRight))
	s.Step(press())

	path := filepath.Join(dir, "run.replay")
	require.NoError(t, s.Close(path))

	stored, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, 90, stored.HighScore)

	d, err := replay.Load(path)
	require.NoError(t, err)
	require.Len(t, d.Frames, 2)
	assert.True(t, d.Frames[0].Frame().Has(core.ActionRight))
}
