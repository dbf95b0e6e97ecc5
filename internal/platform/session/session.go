// Package session wraps a running game with the bookkeeping every front-end
// needs: input recording, the high-score keeper and the run history.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/replay"
	"github.com/vovakirdan/tui-platformer/internal/save"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Session drives one game for a front-end. Store, Keeper and Recorder are
// optional.
type Session struct {
	Game     registry.Game
	Store    *storage.Store
	Keeper   *save.Keeper
	Recorder *replay.Recorder
	Log      *log.Logger

	state core.GameState
	saved bool // Whether the current run is already in the history
}

// highScorer is implemented by games that show the saved best in their HUD.
type highScorer interface {
	SetHighScore(score int)
}

// New creates a session. The game must be Reset by the caller.
func New(game registry.Game, store *storage.Store, keeper *save.Keeper, rec *replay.Recorder, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		Game:     game,
		Store:    store,
		Keeper:   keeper,
		Recorder: rec,
		Log:      logger,
	}
	if hs, ok := game.(highScorer); ok && keeper != nil {
		hs.SetHighScore(keeper.HighScore())
	}
	return s
}

// Step feeds one tick of input to the game.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.Recorder != nil {
		s.Recorder.Record(in)
	}

	res := s.Game.Step(in)
	if s.Keeper != nil {
		s.Keeper.Observe(res.State.Score)
	}

	switch {
	case res.Signal == core.SignalRestart:
		// res.State is the run that just ended.
		s.saveRun(res.State)
		s.saved = false
		s.state = s.Game.State()
	case res.State.Finished():
		s.saveRun(res.State)
		s.state = res.State
	default:
		s.state = res.State
	}
	return res
}

// State returns the state after the last step.
func (s *Session) State() core.GameState { return s.state }

// saveRun records a run in the history once. Empty runs are skipped.
func (s *Session) saveRun(st core.GameState) {
	if s.saved || st.Score <= 0 {
		return
	}
	s.saved = true
	if s.Store == nil {
		return
	}
	if _, err := s.Store.SaveScore(s.Game.ID(), st.Score, st.Level); err != nil {
		s.Log.Warn("could not save run", "game", s.Game.ID(), "err", err)
		return
	}
	s.Log.Debug("run saved", "game", s.Game.ID(), "score", st.Score, "stage", st.Level)
}

// Close flushes the high score and saves the recording to path when both
// are set.
func (s *Session) Close(recordPath string) error {
	if s.Keeper != nil {
		//nolint:errcheck // Flush logs its own failure
		s.Keeper.Flush()
	}
	if s.Recorder != nil && recordPath != "" {
		if err := s.Recorder.Save(recordPath); err != nil {
			return err
		}
		s.Log.Info("recording saved", "path", recordPath, "frames", s.Recorder.Len())
	}
	return nil
}
