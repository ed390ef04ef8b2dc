// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// FlutterConfig contains all tuning for the Mystic Flutter simulation.
// Distances are in world pixels, durations in frames of a 60 Hz tick.
type FlutterConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Zones       ZoneConfig        `yaml:"zones"`
	TimeControl TimeControlConfig `yaml:"time_control"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Render      RenderConfig      `yaml:"render"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// WorldConfig holds the fallback playfield used when the host reports a degenerate size.
type WorldConfig struct {
	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// PhysicsConfig defines the falling entity.
type PhysicsConfig struct {
	BaseGravity  float64 `yaml:"base_gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"` // negative = up
	EntityRadius float64 `yaml:"entity_radius"`
}

// ObstacleConfig defines gap obstacles.
type ObstacleConfig struct {
	Width          int     `yaml:"width"`
	Speed          float64 `yaml:"speed"`
	MinGap         int     `yaml:"min_gap"`
	GapRange       int     `yaml:"gap_range"` // gap drawn from [min_gap, min_gap+gap_range)
	SpawnDistance  int     `yaml:"spawn_distance"`
	MinMargin      int     `yaml:"min_margin"`      // clamp bound for moving gaps
	SpawnMargin    int     `yaml:"spawn_margin"`    // lowest gap top at spawn
	ReservedMargin int     `yaml:"reserved_margin"` // vertical space excluded from the spawn range
	FallbackGapTop int     `yaml:"fallback_gap_top"`
	Amplitude      float64 `yaml:"amplitude"`
	AngularSpeed   float64 `yaml:"angular_speed"`
	NarrowGap      int     `yaml:"narrow_gap"` // gaps below this earn the narrow bonus
}

// ZoneConfig defines gravity zone spawning and decay.
type ZoneConfig struct {
	SpawnPeriod      float64 `yaml:"spawn_period"`
	SpawnChance      float64 `yaml:"spawn_chance"`
	MaxActive        int     `yaml:"max_active"`
	MinRadius        float64 `yaml:"min_radius"`
	RadiusMin        int     `yaml:"radius_min"`
	RadiusRange      int     `yaml:"radius_range"`
	DecayRate        float64 `yaml:"decay_rate"`
	WeakMultiplier   float64 `yaml:"weak_multiplier"`
	StrongMultiplier float64 `yaml:"strong_multiplier"`
	BandTop          int     `yaml:"band_top"`
	BandReserve      int     `yaml:"band_reserve"`
	Jitter           float64 `yaml:"jitter"` // fraction of width around mid-screen
}

// TimeControlConfig defines the slow-time power.
type TimeControlConfig struct {
	ActiveScale    float64 `yaml:"active_scale"`
	ActiveFrames   int     `yaml:"active_frames"`
	CooldownFrames int     `yaml:"cooldown_frames"`
	LongPressMS    int     `yaml:"long_press_ms"`
}

// ScoringConfig defines points per passed obstacle.
type ScoringConfig struct {
	Base        float64 `yaml:"base"`
	NarrowBonus float64 `yaml:"narrow_bonus"`
	SlowBonus   float64 `yaml:"slow_bonus"`
}

// RenderConfig maps world pixels onto terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap range reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn distance reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Normalize substitutes defaults for non-positive values so the simulation
// never runs with a degenerate parameter.
func (c *FlutterConfig) Normalize() {
	d := DefaultFlutterConfig()

	posI(&c.World.FallbackWidth, d.World.FallbackWidth)
	posI(&c.World.FallbackHeight, d.World.FallbackHeight)

	posF(&c.Physics.BaseGravity, d.Physics.BaseGravity)
	if c.Physics.JumpImpulse >= 0 {
		c.Physics.JumpImpulse = d.Physics.JumpImpulse
	}
	posF(&c.Physics.EntityRadius, d.Physics.EntityRadius)

	o := &c.Obstacles
	posI(&o.Width, d.Obstacles.Width)
	posF(&o.Speed, d.Obstacles.Speed)
	posI(&o.MinGap, d.Obstacles.MinGap)
	posI(&o.GapRange, d.Obstacles.GapRange)
	posI(&o.SpawnDistance, d.Obstacles.SpawnDistance)
	posI(&o.MinMargin, d.Obstacles.MinMargin)
	posI(&o.SpawnMargin, d.Obstacles.SpawnMargin)
	posI(&o.ReservedMargin, d.Obstacles.ReservedMargin)
	posI(&o.FallbackGapTop, d.Obstacles.FallbackGapTop)
	posF(&o.Amplitude, d.Obstacles.Amplitude)
	posF(&o.AngularSpeed, d.Obstacles.AngularSpeed)
	posI(&o.NarrowGap, d.Obstacles.NarrowGap)

	z := &c.Zones
	posF(&z.SpawnPeriod, d.Zones.SpawnPeriod)
	if z.SpawnChance < 0 || z.SpawnChance > 1 {
		z.SpawnChance = d.Zones.SpawnChance
	}
	if z.MaxActive < 0 {
		z.MaxActive = d.Zones.MaxActive
	}
	posF(&z.MinRadius, d.Zones.MinRadius)
	posI(&z.RadiusMin, d.Zones.RadiusMin)
	posI(&z.RadiusRange, d.Zones.RadiusRange)
	posF(&z.DecayRate, d.Zones.DecayRate)
	posF(&z.WeakMultiplier, d.Zones.WeakMultiplier)
	posF(&z.StrongMultiplier, d.Zones.StrongMultiplier)
	posI(&z.BandTop, d.Zones.BandTop)
	posI(&z.BandReserve, d.Zones.BandReserve)
	if z.Jitter < 0 || z.Jitter > 1 {
		z.Jitter = d.Zones.Jitter
	}

	t := &c.TimeControl
	if t.ActiveScale <= 0 || t.ActiveScale >= 1 {
		t.ActiveScale = d.TimeControl.ActiveScale
	}
	posI(&t.ActiveFrames, d.TimeControl.ActiveFrames)
	posI(&t.CooldownFrames, d.TimeControl.CooldownFrames)
	posI(&t.LongPressMS, d.TimeControl.LongPressMS)

	posF(&c.Scoring.Base, d.Scoring.Base)
	if c.Scoring.NarrowBonus < 0 {
		c.Scoring.NarrowBonus = d.Scoring.NarrowBonus
	}
	if c.Scoring.SlowBonus < 0 {
		c.Scoring.SlowBonus = d.Scoring.SlowBonus
	}

	posI(&c.Render.CellWidth, d.Render.CellWidth)
	posI(&c.Render.CellHeight, d.Render.CellHeight)

	if c.Difficulty.Progression.Type == "" {
		c.Difficulty.Progression.Type = "none"
	}
}

func posI(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func posF(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
