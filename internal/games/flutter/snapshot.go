package flutter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// EntityView is the renderable entity state.
type EntityView struct {
	X, Y      float64
	Radius    float64
	VelocityY float64
	Gravity   float64
	Alive     bool
}

// ObstacleView is the renderable obstacle state.
type ObstacleView struct {
	X         float64
	Width     int
	GapTop    float64
	GapHeight float64
	Moving    bool
	Scored    bool
	Top       core.RectF
	Bottom    core.RectF
}

// ZoneView is the renderable zone state.
type ZoneView struct {
	X, Y       float64
	Radius     float64
	Multiplier float64
	Hint       ZoneHint
}

// TimeView is the renderable time-control state.
type TimeView struct {
	State           TimeState
	Scale           float64 // scale the last frame ran at, including the host delta
	Available       bool
	CooldownSeconds int
}

// Snapshot is a read-only copy of the world after a frame.
type Snapshot struct {
	Tick      int
	Width     int
	Height    int
	Entity    EntityView
	Obstacles []ObstacleView
	Zones     []ZoneView
	Score     float64
	ScoreText string
	Time      TimeView

	// ShowGameOver is set when the entity is dead and the round had any progress.
	ShowGameOver bool
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Width:  w.width,
		Height: w.height,
		Entity: EntityView{
			X:         w.entity.X,
			Y:         w.entity.Y,
			Radius:    w.entity.Radius,
			VelocityY: w.entity.VelocityY,
			Gravity:   w.entity.Gravity,
			Alive:     w.entity.Alive,
		},
		Obstacles: make([]ObstacleView, 0, len(w.obstacles)),
		Zones:     make([]ZoneView, 0, len(w.zones)),
		Score:     w.Score(),
		ScoreText: FormatScore(w.Score()),
		Time: TimeView{
			State:           w.time.State(),
			Scale:           w.lastScale,
			Available:       w.time.Available(),
			CooldownSeconds: w.time.CooldownSeconds(NominalTickRate),
		},
	}

	for i := range w.obstacles {
		o := &w.obstacles[i]
		s.Obstacles = append(s.Obstacles, ObstacleView{
			X:         o.X,
			Width:     o.Width,
			GapTop:    o.GapTop,
			GapHeight: o.GapHeight,
			Moving:    o.Moving,
			Scored:    o.Scored,
			Top:       o.TopRect(),
			Bottom:    o.BottomRect(),
		})
	}

	for i := range w.zones {
		z := &w.zones[i]
		s.Zones = append(s.Zones, ZoneView{
			X:          z.X,
			Y:          z.Y,
			Radius:     z.Radius,
			Multiplier: z.Multiplier,
			Hint:       z.Hint(),
		})
	}

	s.ShowGameOver = !w.entity.Alive && (w.scoreTenths > 0 || len(w.obstacles) > 0)
	return s
}

// FormatScore prints whole scores without a decimal point and others with one decimal.
func FormatScore(score float64) string {
	if score == math.Trunc(score) {
		return strconv.FormatInt(int64(score), 10)
	}
	return fmt.Sprintf("%.1f", score)
}
