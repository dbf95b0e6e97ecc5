package replay

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Hasher is implemented by games that can fingerprint their simulation state.
type Hasher interface {
	StateHash() uint64
}

// Result summarizes a headless playback.
type Result struct {
	Frames   int
	Restarts int
	Final    core.GameState
	Hash     uint64 // Zero when the game is not a Hasher
}

// Run resets game with the recording's seed and feeds it every frame.
// The start stage and difficulty must already be configured.
func Run(game registry.Game, d Data) Result {
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     d.Seed,
	})

	var res Result
	p := NewReplayer(d)
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		if game.Step(in).Signal == core.SignalRestart {
			res.Restarts++
		}
		res.Frames++
	}

	res.Final = game.State()
	if h, ok := game.(Hasher); ok {
		res.Hash = h.StateHash()
	}
	return res
}
