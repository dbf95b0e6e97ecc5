package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "shift+left", "shift+right", "x":
		return core.ActionDash, false
	case "f":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// dashDirection returns the direction a shifted arrow dashes in, so a
// single key event both steers and dashes.
func dashDirection(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "shift+left":
		return core.ActionLeft
	case "shift+right":
		return core.ActionRight
	}
	return core.ActionNone
}

// held reports whether an action lasts while its key is down, as opposed
// to firing once per press.
func held(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionDash, core.ActionFire:
		return true
	}
	return false
}

// HoldLatch emulates held keys on terminals, which report presses and
// auto-repeats but never releases. A held action stays down for a fixed
// number of ticks after its last key event.
type HoldLatch struct {
	ticks  int
	left   map[core.Action]int
	sticky map[core.Action]bool // Held by a source that does report release
}

// NewHoldLatch creates a latch that keeps actions down for ticks ticks.
func NewHoldLatch(ticks int) *HoldLatch {
	return &HoldLatch{
		ticks:  max(1, ticks),
		left:   make(map[core.Action]int),
		sticky: make(map[core.Action]bool),
	}
}

// Press refreshes an action. Pressing one direction releases the other.
func (h *HoldLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}
	h.left[a] = h.ticks
}

// Hold keeps an action down until Release.
func (h *HoldLatch) Hold(a core.Action) { h.sticky[a] = true }

// Release lifts an action held with Hold.
func (h *HoldLatch) Release(a core.Action) { delete(h.sticky, a) }

// Apply sets every held action on the frame and ages the latch by a tick.
func (h *HoldLatch) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	for a := range h.sticky {
		frame.Set(a)
	}
}

// Reset releases everything.
func (h *HoldLatch) Reset() {
	clear(h.left)
	clear(h.sticky)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionLeft
	MenuActionRight
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
