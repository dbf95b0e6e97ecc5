// Package tui is the terminal front-end of the platformer: the Bubble Tea
// game model, the mode menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// maxTickRate bounds how often the simulation may be asked to step.
const maxTickRate = 240

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickInterval returns the frame period, falling back to the default rate
// for non-positive values.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(min(tickRate, maxTickRate))
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
