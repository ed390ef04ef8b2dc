package flutter

import "github.com/vovakirdan/mystic-flutter/internal/config"

// TimeState is the slow-time power state.
type TimeState int

const (
	TimeIdle     TimeState = iota // available, normal speed
	TimeActive                    // dilated
	TimeCooldown                  // normal speed, not yet available
)

// String returns the state name.
func (s TimeState) String() string {
	switch s {
	case TimeIdle:
		return "idle"
	case TimeActive:
		return "active"
	case TimeCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// TimeControl drives Idle -> Active -> Cooldown -> Idle.
//
// The Active phase lasts int(activeFrames * activeScale) frames, i.e. its
// duration is measured in dilated frames. Cooldown counts real frames.
type TimeControl struct {
	state TimeState
	timer int
	scale float64

	activeScale    float64
	activeFrames   int
	cooldownFrames int
}

// NewTimeControl creates an idle time control.
func NewTimeControl(p config.TimeControlConfig) TimeControl {
	return TimeControl{
		state:          TimeIdle,
		scale:          1,
		activeScale:    p.ActiveScale,
		activeFrames:   p.ActiveFrames,
		cooldownFrames: p.CooldownFrames,
	}
}

// Reset returns to Idle with a full charge.
func (t *TimeControl) Reset() {
	t.state = TimeIdle
	t.timer = 0
	t.scale = 1
}

// Trigger activates dilation. It is a no-op unless Idle.
func (t *TimeControl) Trigger() bool {
	if t.state != TimeIdle {
		return false
	}
	t.state = TimeActive
	t.timer = 0
	t.scale = t.activeScale
	return true
}

// Advance moves the state machine one frame and returns the time scale
// to use for that frame.
func (t *TimeControl) Advance() float64 {
	switch t.state {
	case TimeActive:
		t.timer++
		if t.timer > t.activeLimit() {
			t.state = TimeCooldown
			t.timer = 0
			t.scale = 1
		}
	case TimeCooldown:
		t.timer++
		if t.timer > t.cooldownFrames {
			t.state = TimeIdle
			t.timer = 0
		}
	}
	return t.scale
}

func (t *TimeControl) activeLimit() int {
	return int(float64(t.activeFrames) * t.activeScale)
}

// State returns the current state.
func (t *TimeControl) State() TimeState {
	return t.state
}

// Scale returns the current time scale.
func (t *TimeControl) Scale() float64 {
	return t.scale
}

// Timer returns frames spent in the current state.
func (t *TimeControl) Timer() int {
	return t.timer
}

// Available reports whether Trigger would succeed.
func (t *TimeControl) Available() bool {
	return t.state == TimeIdle
}

// CooldownSeconds estimates whole seconds left in Cooldown, 0 otherwise.
func (t *TimeControl) CooldownSeconds(tickRate int) int {
	if t.state != TimeCooldown || tickRate <= 0 {
		return 0
	}
	remain := t.cooldownFrames/tickRate - t.timer/tickRate
	if remain < 0 {
		return 0
	}
	return remain
}
