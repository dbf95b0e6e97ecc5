package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Key bindings. Held actions are sampled every tick, edge actions only on
// the tick the key goes down.
var (
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
		core.ActionDash:  {ebiten.KeyShift, ebiten.KeyX},
		core.ActionFire:  {ebiten.KeyF},
	}
	edgeKeys = map[core.Action][]ebiten.Key{
		core.ActionJump:    {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionRestart: {ebiten.KeyR},
	}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// inputState turns keyboard and mouse state into input frames.
type inputState struct {
	frame core.InputFrame
}

func newInputState() *inputState {
	return &inputState{frame: core.NewInputFrame()}
}

// poll builds this tick's frame. It reports quit when a quit key went down.
func (s *inputState) poll() (core.InputFrame, bool) {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return core.InputFrame{}, true
		}
	}

	s.frame.Clear()
	for action, keys := range heldKeys {
		if anyKey(keys, ebiten.IsKeyPressed) {
			s.frame.Set(action)
		}
	}
	for action, keys := range edgeKeys {
		if anyKey(keys, inpututil.IsKeyJustPressed) {
			s.frame.Set(action)
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.frame.Set(core.ActionFire)
	}

	// Layout pins the logical screen to the viewport, so the cursor is
	// already in viewport pixels.
	x, y := ebiten.CursorPosition()
	s.frame.SetAim(x, y)

	return s.frame.Clone(), false
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
