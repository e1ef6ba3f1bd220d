package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer the raft left
	ActionRight          // D, Right arrow - steer the raft right
	ActionRestart        // R key - new round after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions requested between two advances.
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
// Steering left and right are exclusive: the latest press wins.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	switch a {
	case ActionLeft:
		delete(f.Actions, ActionRight)
	case ActionRight:
		delete(f.Actions, ActionLeft)
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

// Steer returns the raft shift the frame asks for: -1, 0 or +1.
func (f InputFrame) Steer() int {
	switch {
	case f.Has(ActionLeft):
		return -1
	case f.Has(ActionRight):
		return +1
	default:
		return 0
	}
}

// ClearSteering drops queued steering once it has been applied.
func (f *InputFrame) ClearSteering() {
	delete(f.Actions, ActionLeft)
	delete(f.Actions, ActionRight)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
