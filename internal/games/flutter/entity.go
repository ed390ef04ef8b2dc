package flutter

import "github.com/vovakirdan/mystic-flutter/internal/config"

// Entity is the player-controlled falling actor.
type Entity struct {
	X, Y        float64
	VelocityY   float64
	Gravity     float64 // effective gravity for the current frame, set by the world
	JumpImpulse float64 // negative = up
	Radius      float64
	Alive       bool
}

// NewEntity creates an entity with the configured radius and jump impulse.
func NewEntity(p config.PhysicsConfig) Entity {
	return Entity{
		Gravity:     p.BaseGravity,
		JumpImpulse: p.JumpImpulse,
		Radius:      p.EntityRadius,
		Alive:       true,
	}
}

// Reset places the entity at (x, y) at rest and alive.
func (e *Entity) Reset(x, y, baseGravity float64) {
	e.X = x
	e.Y = y
	e.VelocityY = 0
	e.Gravity = baseGravity
	e.Alive = true
}

// Update integrates one frame. Gravity is applied unscaled to the velocity
// while the displacement is scaled, so dilation slows both.
func (e *Entity) Update(scale float64) {
	e.VelocityY += e.Gravity
	e.Y += e.VelocityY * scale
}

// TriggerJump sets the upward velocity. There is no ground check; callers
// must route taps on a dead entity to a restart instead.
func (e *Entity) TriggerJump() {
	e.VelocityY = e.JumpImpulse
}

// FellBelow reports whether the entity has dropped fully past the bottom edge.
func (e *Entity) FellBelow(height float64) bool {
	return e.Y > height+e.Radius
}
