package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow - rotate heading counter-clockwise
	ActionTurnRight        // D, Right arrow - rotate heading clockwise
	ActionUp               // W, Up arrow - face north
	ActionDown             // S, Down arrow - face south
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeadingInbox is a single-slot, most-recent-value handoff for headings.
// Producers (tilt sensors, network bridges) overwrite the slot at their own
// cadence; the simulation drains it once per tick.
type HeadingInbox struct {
	mu      sync.Mutex
	heading float64
	fresh   bool
}

// Put stores a heading, replacing any value not yet taken.
func (h *HeadingInbox) Put(angle float64) {
	h.mu.Lock()
	h.heading = angle
	h.fresh = true
	h.mu.Unlock()
}

// Take returns the latest heading if one arrived since the previous Take.
func (h *HeadingInbox) Take() (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.fresh {
		return 0, false
	}
	h.fresh = false
	return h.heading, true
}
