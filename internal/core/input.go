package core

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionShout        // Space - make noise at the microphone
	ActionAbort        // Esc - abandon the running round
	ActionHelp         // ? - toggle the key help
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShout:
		return "Shout"
	case ActionAbort:
		return "Abort"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the touches and actions gathered between two frames.
type InputFrame struct {
	Touches []Point
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Touch records a touch point for this frame.
func (f *InputFrame) Touch(p Point) {
	f.Touches = append(f.Touches, p)
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

// Drain returns the collected touches and resets the frame.
func (f *InputFrame) Drain() []Point {
	touches := f.Touches
	f.Touches = nil
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	return touches
}
