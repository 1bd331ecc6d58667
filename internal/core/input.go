package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSkill          // Q, E, Space - dash
	ActionConfirm        // Enter - start, next round, restart
	ActionPause          // P, Escape
	ActionQuit           // Ctrl+C
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
	case ActionSkill:
		return "Skill"
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

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame collects the actions triggered between two simulation ticks.
// Several key presses may land in one frame; for movement only the most
// recent direction is kept.
type InputFrame struct {
	Actions map[Action]bool
	dir     Action
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
	if a.IsDirection() {
		f.dir = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the last movement action of the frame, or ActionNone.
func (f InputFrame) Direction() Action {
	return f.dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.dir = ActionNone
}
