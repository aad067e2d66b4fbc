package core

// Action represents a semantic game action, abstracted from physical key
// presses and button clicks. Frontends translate their input into actions.
type Action int

const (
	ActionNone           Action = iota
	ActionLeft                  // A, Left arrow - move basket left (held)
	ActionRight                 // D, Right arrow - move basket right (held)
	ActionBack                  // Escape - leave the current screen
	ActionMute                  // M - toggle mute
	ActionStartNormal           // "Normal" button, 1 / N
	ActionStartUnlimited        // "Unlimited" button, 2 / U
	ActionInfo                  // "Info" button, I
	ActionConfirm               // Enter - dismiss info / game over
	ActionPause                 // P - pause/unpause a session
	ActionQuit                  // Q, Ctrl+C - exit the process
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
	case ActionBack:
		return "Back"
	case ActionMute:
		return "Mute"
	case ActionStartNormal:
		return "StartNormal"
	case ActionStartUnlimited:
		return "StartUnlimited"
	case ActionInfo:
		return "Info"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is the pointer position of a click this frame, in playfield pixels.
	// Nil when there was no click.
	Click *Vec
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

// ClickAt records a pointer click at p.
func (f *InputFrame) ClickAt(p Vec) {
	f.Click = &p
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		clone.ClickAt(*f.Click)
	}
	return clone
}
