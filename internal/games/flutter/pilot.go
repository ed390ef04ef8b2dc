package flutter

import "github.com/vovakirdan/mystic-flutter/internal/core"

// Pilot is a simple autopilot used by headless runs. It aims for the middle
// of the next gap and saves slow time for narrow gaps.
type Pilot struct {
	Slack     float64 // how far below the target the entity may sink before flapping
	NarrowGap float64 // gaps below this height trigger slow time
}

// DefaultPilot returns a pilot tuned for the default configuration.
func DefaultPilot() Pilot {
	return Pilot{Slack: 20, NarrowGap: 180}
}

// Decide returns the input for the next frame.
func (p Pilot) Decide(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	e := s.Entity
	if !e.Alive {
		return in
	}

	target := float64(s.Height) / 2
	if next, ok := nextObstacle(s); ok {
		target = next.GapTop + next.GapHeight/2
		if next.GapHeight < p.NarrowGap && s.Time.Available {
			in.Set(core.ActionSlowTime)
		}
	}

	if e.Y > target+p.Slack && e.VelocityY >= 0 {
		in.Set(core.ActionFlap)
	}
	return in
}

// nextObstacle returns the first obstacle the entity has not yet cleared.
func nextObstacle(s Snapshot) (ObstacleView, bool) {
	for _, o := range s.Obstacles {
		if o.X+float64(o.Width) >= s.Entity.X-s.Entity.Radius {
			return o, true
		}
	}
	return ObstacleView{}, false
}
