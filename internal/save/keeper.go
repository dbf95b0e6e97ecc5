package save

import (
	"io"

	"github.com/charmbracelet/log"
)

// Keeper tracks the best score of a session against the saved one.
// The saved value is read once; the HUD keeps showing it until the next
// session even when the current run beats it.
type Keeper struct {
	backend Backend
	log     *log.Logger

	loaded int
	best   int
}

// NewKeeper loads the saved record. An unreadable record counts as zero
// and is reported as a warning.
func NewKeeper(b Backend, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	k := &Keeper{backend: b, log: logger}
	rec, err := b.Load()
	if err != nil {
		logger.Warn("could not read save data, starting from zero", "err", err)
		rec = Record{}
	}
	k.loaded = max(0, rec.HighScore)
	k.best = k.loaded
	return k
}

// HighScore returns the score loaded at startup (or at the last flush).
func (k *Keeper) HighScore() int { return k.loaded }

// Best returns the best score seen so far, saved or not.
func (k *Keeper) Best() int { return k.best }

// Observe records a score reached during play.
func (k *Keeper) Observe(score int) {
	k.best = max(k.best, score)
}

// Flush saves the session best if it beats the saved score. Failures are
// logged and returned; the in-memory state is kept so a later flush can retry.
func (k *Keeper) Flush() error {
	if k.best <= k.loaded {
		return nil
	}
	if err := k.backend.Save(Record{HighScore: k.best}); err != nil {
		k.log.Warn("could not write save data", "err", err)
		return err
	}
	k.log.Debug("high score saved", "score", k.best)
	k.loaded = k.best
	return nil
}
