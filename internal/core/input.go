package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionFlap            // Space, W, Up, mouse press - primary action
	ActionSlowTime        // S, or a mouse hold of the long-press duration
	ActionPause           // P, Escape - pause/unpause game
	ActionRestart         // R key - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionSlowTime:
		return "SlowTime"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Mask packs the frame into a bitmask, one bit per Action value.
func (f InputFrame) Mask() uint8 {
	var m uint8
	for a, on := range f.Actions {
		if on && a > ActionNone && a < 8 {
			m |= 1 << uint(a)
		}
	}
	return m
}

// FrameFromMask is the inverse of Mask.
func FrameFromMask(m uint8) InputFrame {
	f := NewInputFrame()
	for a := ActionFlap; a < 8; a++ {
		if m&(1<<uint(a)) != 0 {
			f.Set(a)
		}
	}
	return f
}
