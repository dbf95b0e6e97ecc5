package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"a moves left", runeKey('a'), core.ActionLeft, false},
		{"arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"x dashes", runeKey('x'), core.ActionDash, false},
		{"shift arrow dashes", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionDash, false},
		{"f fires", runeKey('f'), core.ActionFire, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isQuit, isQuit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(runeKey('b')))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(runeKey('h')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}

// =============================================================================
// HoldLatch
// =============================================================================

func applied(h *HoldLatch) core.InputFrame {
	frame := core.NewInputFrame()
	h.Apply(&frame)
	return frame
}

func TestHoldLatchExpires(t *testing.T) {
	h := NewHoldLatch(3)
	h.Press(core.ActionRight)

	for i := range 3 {
		assert.True(t, applied(h).Has(core.ActionRight), "tick %d", i+1)
	}
	assert.False(t, applied(h).Has(core.ActionRight))
}

func TestHoldLatchRepeatRefreshes(t *testing.T) {
	h := NewHoldLatch(2)
	h.Press(core.ActionLeft)
	applied(h)
	h.Press(core.ActionLeft)

	assert.True(t, applied(h).Has(core.ActionLeft))
	assert.True(t, applied(h).Has(core.ActionLeft))
	assert.False(t, applied(h).Has(core.ActionLeft))
}

func TestHoldLatchOppositeReleases(t *testing.T) {
	h := NewHoldLatch(10)
	h.Press(core.ActionRight)
	h.Press(core.ActionDash)
	h.Press(core.ActionLeft)

	frame := applied(h)
	assert.True(t, frame.Has(core.ActionLeft))
	assert.False(t, frame.Has(core.ActionRight))
	assert.True(t, frame.Has(core.ActionDash))
}

func TestHoldLatchSticky(t *testing.T) {
	h := NewHoldLatch(1)
	h.Hold(core.ActionFire)

	for range 5 {
		assert.True(t, applied(h).Has(core.ActionFire))
	}

	h.Release(core.ActionFire)
	assert.False(t, applied(h).Has(core.ActionFire))

	h.Hold(core.ActionFire)
	h.Press(core.ActionRight)
	h.Reset()
	frame := applied(h)
	assert.False(t, frame.Has(core.ActionFire))
	assert.False(t, frame.Has(core.ActionRight))
}

func TestHoldLatchMinimumTicks(t *testing.T) {
	h := NewHoldLatch(0)
	h.Press(core.ActionRight)

	assert.True(t, applied(h).Has(core.ActionRight))
	assert.False(t, applied(h).Has(core.ActionRight))
}
