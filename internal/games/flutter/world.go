package flutter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// NominalTickRate is the frame rate the tuning constants assume.
const NominalTickRate = 60

// World owns the entity, obstacles, gravity zones, time control and score
// for one round. It is not safe for concurrent use; the host must not
// interleave Advance with reads of the world.
type World struct {
	cfg        config.FlutterConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	width  int
	height int

	entity    Entity
	obstacles []Obstacle
	zones     []GravityZone
	time      TimeControl

	zoneTimer   float64
	scoreTenths int // score * 10
	tick        int
	lastScale   float64
}

// NewWorld creates a world seeded for deterministic play. The world starts
// at the configured fallback size; call Reset with the real viewport.
func NewWorld(cfg config.FlutterConfig, seed int64) *World {
	cfg.Normalize()
	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		entity:     NewEntity(cfg.Physics),
		obstacles:  make([]Obstacle, 0, 8),
		zones:      make([]GravityZone, 0, 4),
		time:       NewTimeControl(cfg.TimeControl),
	}
	w.Reset(0, 0)
	return w
}

// Reseed replaces the random source. Reset does not reseed.
func (w *World) Reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// Reset starts a fresh round on a width x height playfield. Non-positive
// dimensions fall back to the configured defaults.
func (w *World) Reset(width, height int) {
	if width <= 0 {
		width = w.cfg.World.FallbackWidth
	}
	if height <= 0 {
		height = w.cfg.World.FallbackHeight
	}
	w.width = width
	w.height = height

	w.entity.Reset(float64(width/4), float64(height/2), w.cfg.Physics.BaseGravity)
	w.obstacles = w.obstacles[:0]
	w.zones = w.zones[:0]
	w.time.Reset()
	w.zoneTimer = 0
	w.scoreTenths = 0
	w.tick = 0
	w.lastScale = 1
}

// OnPrimaryAction handles a tap: a dead entity restarts the round, a live one jumps.
// Returns true when a restart happened.
func (w *World) OnPrimaryAction() bool {
	if !w.entity.Alive {
		w.Reset(w.width, w.height)
		return true
	}
	w.entity.TriggerJump()
	return false
}

// OnLongPress triggers slow time. Returns whether it activated.
func (w *World) OnLongPress() bool {
	return w.time.Trigger()
}

// Apply feeds one frame of input to a live round. Taps on a dead entity are ignored
// here; hosts that want tap-to-restart call OnPrimaryAction directly.
func (w *World) Apply(in core.InputFrame) {
	if !w.entity.Alive {
		return
	}
	if in.Has(core.ActionFlap) {
		w.OnPrimaryAction()
	}
	if in.Has(core.ActionSlowTime) {
		w.OnLongPress()
	}
}

// Advance runs one frame and returns the resulting snapshot. delta is the
// host's per-frame multiplier, normally 1; non-positive values count as 1.
func (w *World) Advance(delta float64) Snapshot {
	w.step(delta)
	return w.Snapshot()
}

// step is the fixed per-frame order: time control, gravity, entity, zone
// spawning, zone decay, obstacles (move, score, retire, collide), obstacle spawning.
func (w *World) step(delta float64) {
	if !(delta > 0) || math.IsInf(delta, 0) {
		delta = 1
	}

	scale := w.time.Advance() * delta
	w.lastScale = scale

	base := w.cfg.Physics.BaseGravity * scale
	w.entity.Gravity = base
	for i := range w.zones {
		w.zones[i].Apply(&w.entity, base)
	}

	if w.entity.Alive {
		w.entity.Update(scale)
		if w.entity.FellBelow(float64(w.height)) {
			w.entity.Alive = false
		}
	}

	w.spawnZones(scale)
	w.decayZones(scale)
	w.updateObstacles(scale)
	w.spawnObstacles()

	w.tick++
}

func (w *World) spawnZones(scale float64) {
	zc := w.cfg.Zones
	w.zoneTimer += scale
	if w.zoneTimer <= zc.SpawnPeriod {
		return
	}
	// The chance is rolled every period even when the cap blocks the spawn.
	if w.rng.Float64() < zc.SpawnChance && len(w.zones) < zc.MaxActive {
		w.zones = append(w.zones, spawnZone(w.width, w.height, zc, w.rng))
	}
	w.zoneTimer = 0
}

func (w *World) decayZones(scale float64) {
	kept := w.zones[:0]
	for _, z := range w.zones {
		z.Decay(scale)
		if !z.Expired(w.cfg.Zones.MinRadius) {
			kept = append(kept, z)
		}
	}
	w.zones = kept
}

func (w *World) updateObstacles(scale float64) {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.Update(scale)

		// Passing needs no live entity: obstacles drifting past a dead one still score.
		if !o.Scored && o.Passed(&w.entity) {
			w.scoreTenths += w.bonusTenths(&o)
			o.Scored = true
		}

		if o.CheckCollision(&w.entity) {
			w.entity.Alive = false
		}

		if !o.IsOffScreen() {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
}

// bonusTenths returns the points for passing o: base, plus the narrow-gap
// bonus, plus the slow-time bonus while dilation is active.
func (w *World) bonusTenths(o *Obstacle) int {
	sc := w.cfg.Scoring
	points := tenths(sc.Base)
	if o.GapHeight < float64(w.cfg.Obstacles.NarrowGap) {
		points += tenths(sc.NarrowBonus)
	}
	if w.time.State() == TimeActive {
		points += tenths(sc.SlowBonus)
	}
	return points
}

func tenths(v float64) int {
	return int(math.Round(v * 10))
}

func (w *World) spawnObstacles() {
	score := w.Score()
	spacing := w.difficulty.Spacing(w.cfg.Obstacles.SpawnDistance, score, w.tick)

	n := len(w.obstacles)
	if n > 0 && w.obstacles[n-1].X >= float64(w.width-spacing) {
		return
	}

	speed := w.difficulty.Speed(w.cfg.Obstacles.Speed, score, w.tick)
	gapRange := w.difficulty.GapRange(w.cfg.Obstacles.GapRange, score, w.tick)
	w.obstacles = append(w.obstacles, NewObstacle(w.width, w.height, speed, gapRange, w.cfg.Obstacles, w.rng))
}

// Score returns the round score.
func (w *World) Score() float64 {
	return float64(w.scoreTenths) / 10
}

// Alive reports whether the entity is alive.
func (w *World) Alive() bool {
	return w.entity.Alive
}

// Size returns the playfield dimensions in world pixels.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Tick returns frames advanced since the last Reset.
func (w *World) Tick() int {
	return w.tick
}

// Config returns the normalized configuration the world runs with.
func (w *World) Config() config.FlutterConfig {
	return w.cfg
}
