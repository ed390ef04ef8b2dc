package flutter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// Obstacle is a paired top/bottom barrier with a traversable gap.
// Gap positions are whole pixels; moving gaps step by truncated offsets.
type Obstacle struct {
	X         float64 // leading (left) edge
	Width     int
	GapTop    float64
	GapHeight float64
	Moving    bool
	Phase     float64
	Scored    bool

	speed        float64
	screenH      float64
	minMargin    float64
	amplitude    float64
	angularSpeed float64
}

// NewObstacle places a new obstacle at the right edge of the screen.
// gapRange bounds the random part of the gap height; a non-positive spawn
// range on tiny screens falls back to the configured gap top.
func NewObstacle(screenW, screenH int, speed float64, gapRange int, p config.ObstacleConfig, rng *rand.Rand) Obstacle {
	if gapRange < 1 {
		gapRange = 1
	}
	gapHeight := p.MinGap + rng.Intn(gapRange)
	moving := rng.Intn(2) == 1
	phase := rng.Float64() * 2 * math.Pi

	gapTop := p.FallbackGapTop
	if bound := screenH - gapHeight - p.ReservedMargin; bound > 0 {
		gapTop = p.SpawnMargin + rng.Intn(bound)
	}

	return Obstacle{
		X:            float64(screenW),
		Width:        p.Width,
		GapTop:       float64(gapTop),
		GapHeight:    float64(gapHeight),
		Moving:       moving,
		Phase:        phase,
		speed:        speed,
		screenH:      float64(screenH),
		minMargin:    float64(p.MinMargin),
		amplitude:    p.Amplitude,
		angularSpeed: p.AngularSpeed,
	}
}

// Update scrolls the obstacle left and, if moving, oscillates its gap.
// The gap is clamped rather than reflected, so it can stick at a bound.
func (o *Obstacle) Update(scale float64) {
	o.X -= o.speed * scale
	if !o.Moving {
		return
	}

	o.Phase += o.angularSpeed * scale
	o.GapTop += math.Trunc(math.Sin(o.Phase) * o.amplitude * scale)
	o.GapTop = core.ClampF(o.GapTop, o.minMargin, o.MaxGapTop())
}

// MaxGapTop is the lowest position a moving gap may reach.
func (o *Obstacle) MaxGapTop() float64 {
	return o.screenH - o.GapHeight - o.minMargin
}

// Right returns the trailing edge.
func (o *Obstacle) Right() float64 {
	return o.X + float64(o.Width)
}

// IsOffScreen reports whether the trailing edge has left the view.
func (o *Obstacle) IsOffScreen() bool {
	return o.Right() < 0
}

// Passed reports whether the entity is fully beyond the trailing edge.
func (o *Obstacle) Passed(e *Entity) bool {
	return e.X > o.Right()
}

// CheckCollision tests the entity's bounding box against both barriers.
func (o *Obstacle) CheckCollision(e *Entity) bool {
	if e.X+e.Radius <= o.X || e.X-e.Radius >= o.Right() {
		return false
	}
	return e.Y-e.Radius < o.GapTop || e.Y+e.Radius > o.GapTop+o.GapHeight
}

// TopRect returns the upper barrier in world units.
func (o *Obstacle) TopRect() core.RectF {
	return core.RectF{X: o.X, Y: 0, W: float64(o.Width), H: o.GapTop}
}

// BottomRect returns the lower barrier in world units.
func (o *Obstacle) BottomRect() core.RectF {
	bottom := o.GapTop + o.GapHeight
	return core.RectF{X: o.X, Y: bottom, W: float64(o.Width), H: o.screenH - bottom}
}
