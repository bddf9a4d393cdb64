package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldDuration is how long a movement key counts as held after its
// last key event. Terminals report presses and auto-repeats but never
// releases, so a key is released when its repeats stop arriving.
const DefaultHoldDuration = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "w", "k", "up":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsMovement reports whether an action is continuous (held) rather than
// a one-shot command.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HeldKeys tracks which movement actions are currently held down.
type HeldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHeldKeys creates a tracker that keeps a key held for hold after each
// press. A non-positive hold uses DefaultHoldDuration.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HeldKeys{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press marks an action as held at now.
// Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.hold)
}

// Held reports whether an action is still held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every action held at now on the frame and forgets the
// expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases all keys.
func (h *HeldKeys) Reset() {
	clear(h.until)
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
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
