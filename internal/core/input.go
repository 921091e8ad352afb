package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - move grabbed shape up
	ActionDown             // Down arrow, j - move grabbed shape down
	ActionLeft             // Left arrow, h - move grabbed shape left
	ActionRight            // Right arrow, l - move grabbed shape right
	ActionNextShape        // Tab - select the next shape
	ActionPrevShape        // Shift+Tab - select the previous shape
	ActionGrab             // Space, Enter - grab or drop the selected shape
	ActionCancel           // Esc - put the grabbed shape back
	ActionRestart          // R - new puzzle
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNextShape:
		return "NextShape"
	case ActionPrevShape:
		return "PrevShape"
	case ActionGrab:
		return "Grab"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer gesture.
type PointerKind uint8

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a mouse sample in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame collects the input received between two ticks.
type InputFrame struct {
	// Actions are kept in arrival order since grab, move and drop
	// depend on each other.
	Actions []Action
	// Pointer holds mouse samples in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// AddPointer records a pointer sample for this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty returns true if nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets the frame for the next tick, keeping capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Pointer = f.Pointer[:0]
}
