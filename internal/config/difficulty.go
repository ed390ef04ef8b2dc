package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager reports level 0 so every parameter keeps its base value.
func (d *DifficultyManager) Level(score float64, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = score / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scroll speed for newly spawned obstacles.
func (d *DifficultyManager) Speed(baseSpeed, score float64, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapRange returns how far above the minimum a new gap may be drawn.
func (d *DifficultyManager) GapRange(baseRange int, score float64, ticks int) int {
	level := d.Level(score, ticks)
	result := baseRange - int(level*float64(d.cfg.Scaling.GapReduction))
	if result < 1 {
		result = 1
	}
	return result
}

// Spacing returns the spawn distance between consecutive obstacles.
func (d *DifficultyManager) Spacing(baseSpacing int, score float64, ticks int) int {
	level := d.Level(score, ticks)
	result := baseSpacing - int(level*float64(d.cfg.Scaling.SpacingReduction))
	if result < minSpacing {
		result = int(math.Min(float64(baseSpacing), minSpacing))
	}
	return result
}

// minSpacing keeps two obstacles plus a flap's worth of room on screen.
const minSpacing = 200

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
