package config

import (
	_ "embed"
)

//go:embed defaults/flutter.yaml
var defaultFlutterYAML []byte

// DefaultFlutterConfig returns the built-in Mystic Flutter configuration.
func DefaultFlutterConfig() FlutterConfig {
	return FlutterConfig{
		World: WorldConfig{
			FallbackWidth:  960,
			FallbackHeight: 576,
		},
		Physics: PhysicsConfig{
			BaseGravity:  0.8,
			JumpImpulse:  -12,
			EntityRadius: 24,
		},
		Obstacles: ObstacleConfig{
			Width:          90,
			Speed:          8,
			MinGap:         140,
			GapRange:       160,
			SpawnDistance:  350,
			MinMargin:      80,
			SpawnMargin:    120,
			ReservedMargin: 240,
			FallbackGapTop: 80,
			Amplitude:      80,
			AngularSpeed:   0.04,
			NarrowGap:      180,
		},
		Zones: ZoneConfig{
			SpawnPeriod:      90,
			SpawnChance:      0.4,
			MaxActive:        2,
			MinRadius:        60,
			RadiusMin:        120,
			RadiusRange:      50,
			DecayRate:        0.6,
			WeakMultiplier:   0.5,
			StrongMultiplier: 1.7,
			BandTop:          200,
			BandReserve:      400,
			Jitter:           0.3,
		},
		TimeControl: TimeControlConfig{
			ActiveScale:    0.6,
			ActiveFrames:   180,
			CooldownFrames: 600,
			LongPressMS:    500,
		},
		Scoring: ScoringConfig{
			Base:        1.0,
			NarrowBonus: 0.5,
			SlowBonus:   0.2,
		},
		Render: RenderConfig{
			CellWidth:  12,
			CellHeight: 24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				GapReduction:     60,
				SpacingReduction: 80,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlutterYAML
}
