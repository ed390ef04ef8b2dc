package flutter

import (
	"math/rand"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// ZoneHint tells the renderer how to color a zone.
type ZoneHint int

const (
	ZoneWeak   ZoneHint = iota // multiplier < 1
	ZoneStrong                 // multiplier >= 1
)

// String returns the hint name.
func (h ZoneHint) String() string {
	if h == ZoneWeak {
		return "weak"
	}
	return "strong"
}

// GravityZone is a shrinking circular region that overrides gravity inside it.
type GravityZone struct {
	X, Y       float64
	Radius     float64
	Multiplier float64
	decayRate  float64
}

// NewGravityZone creates a zone shrinking by decayRate pixels per frame.
func NewGravityZone(x, y, radius, multiplier, decayRate float64) GravityZone {
	return GravityZone{
		X:          x,
		Y:          y,
		Radius:     radius,
		Multiplier: multiplier,
		decayRate:  decayRate,
	}
}

// spawnZone draws zone parameters: mid-screen with horizontal jitter, inside a
// vertical safety band, weak or strong with equal odds.
func spawnZone(screenW, screenH int, p config.ZoneConfig, rng *rand.Rand) GravityZone {
	x := float64(screenW) * (0.5 + p.Jitter*(rng.Float64()-0.5))

	y := float64(p.BandTop)
	if bound := screenH - p.BandReserve; bound > 0 {
		y += float64(rng.Intn(bound))
	}

	radius := float64(p.RadiusMin + rng.Intn(p.RadiusRange))

	multiplier := p.StrongMultiplier
	if rng.Intn(2) == 1 {
		multiplier = p.WeakMultiplier
	}

	return NewGravityZone(x, y, radius, multiplier, p.DecayRate)
}

// Contains reports whether a point lies strictly inside the zone.
func (z *GravityZone) Contains(x, y float64) bool {
	return core.Dist(x, y, z.X, z.Y) < z.Radius
}

// Apply overrides the entity's gravity when it is inside the zone.
// Overlapping zones do not blend; whichever applies last wins.
func (z *GravityZone) Apply(e *Entity, baseGravity float64) bool {
	if !z.Contains(e.X, e.Y) {
		return false
	}
	e.Gravity = baseGravity * z.Multiplier
	return true
}

// Decay shrinks the zone for one frame.
func (z *GravityZone) Decay(scale float64) {
	z.Radius -= z.decayRate * scale
}

// Expired reports whether the zone has shrunk below minRadius.
func (z *GravityZone) Expired(minRadius float64) bool {
	return z.Radius < minRadius
}

// Hint classifies the zone for rendering.
func (z *GravityZone) Hint() ZoneHint {
	if z.Multiplier < 1 {
		return ZoneWeak
	}
	return ZoneStrong
}
