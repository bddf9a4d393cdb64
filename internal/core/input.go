package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Held: move left
	ActionRight          // Held: move right
	ActionJump           // Held: jump when standing
	ActionConfirm        // Enter
	ActionBack           // Esc, B
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
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
	case ActionJump:
		return "Jump"
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
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one tick.
// Movement actions are present for every tick the key is held;
// the others only on the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all actions.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
