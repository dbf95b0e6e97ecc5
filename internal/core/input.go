package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move left (held)
	ActionRight             // D, Right arrow - move right (held)
	ActionUp                // Menu navigation up
	ActionDown              // Menu navigation down
	ActionJump              // Space, W, Up - jump (edge, buffered by the game)
	ActionDash              // Shift, X - dash toward facing direction (held)
	ActionFire              // F, mouse button - shoot toward the aim point (held)
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart the session
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionScoreboard        // Tab - open the scoreboard from the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionDash:
		return "Dash"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Edge actions (Jump, Pause, Restart) are present only on the tick they were
// pressed; held actions (Left, Right, Dash, Fire) are present on every tick
// they are held.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// AimX and AimY are the cursor position in viewport pixels.
	// Only meaningful when Aiming is true.
	AimX, AimY int
	Aiming     bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetAim records the cursor position in viewport pixels.
func (f *InputFrame) SetAim(x, y int) {
	f.AimX = x
	f.AimY = y
	f.Aiming = true
}

// Clear resets all actions for the next frame. The aim point is kept since
// the cursor stays where it was.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.AimX = f.AimX
	clone.AimY = f.AimY
	clone.Aiming = f.Aiming
	return clone
}
