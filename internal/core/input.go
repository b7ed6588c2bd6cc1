package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow - lean forward (frontflip in the air)
	ActionBackward         // S, Down arrow - lean back (backflip in the air)
	ActionLeft             // A, Left arrow - turn or spin left
	ActionRight            // D, Right arrow - turn or spin right
	ActionSpinLeft         // Q - spin boost left
	ActionSpinRight        // E - spin boost right
	ActionJump             // Space - charge while held, launch on release
	ActionCarve            // C - hard edge brake
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart run after it ends
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSpinLeft:
		return "SpinLeft"
	case ActionSpinRight:
		return "SpinRight"
	case ActionJump:
		return "Jump"
	case ActionCarve:
		return "Carve"
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

// ParseAction maps an action name (case-sensitive, as returned by String)
// back to the action. Unknown names yield ActionNone.
func ParseAction(name string) Action {
	for a := ActionForward; a <= ActionPause; a++ {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// InputFrame represents the input state for a single player during one simulation tick.
// Riding actions are present for as long as they are held; menu actions are
// present only on the tick they were pressed.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
