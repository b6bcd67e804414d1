package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
// It mirrors defaults/asteroids.yaml and is used when the embedded file
// cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		PlayArea: PlayAreaConfig{
			Width:        24,
			Height:       20,
			BoundsMargin: 2,
		},
		Ship: ShipConfig{
			StartX:       0,
			StartY:       -8,
			Radius:       0.75,
			Speed:        12,
			FireCooldown: 0.25,
		},
		Laser: LaserConfig{
			Speed:  8,
			Radius: 0.5,
		},
		Asteroid: AsteroidConfig{
			Speed:  5,
			Radius: 1.0,
		},
		Spawning: SpawningConfig{
			Interval:    1.5,
			MinInterval: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpawnRateMultiplier: 2.0,
			},
		},
	}
}
