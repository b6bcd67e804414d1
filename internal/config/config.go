// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// AsteroidsConfig contains all configuration for the asteroids game.
type AsteroidsConfig struct {
	PlayArea   PlayAreaConfig   `yaml:"play_area"`
	Ship       ShipConfig       `yaml:"ship"`
	Laser      LaserConfig      `yaml:"laser"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Spawning   SpawningConfig   `yaml:"spawning"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayAreaConfig defines the world rectangle, centred on the origin, y up.
type PlayAreaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Distance past the edge before an entity is culled
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`         // Horizontal steering speed, units/sec
	FireCooldown float64 `yaml:"fire_cooldown"` // Minimum seconds between shots
}

// LaserConfig defines lasers fired by the ship.
type LaserConfig struct {
	Speed  float64 `yaml:"speed"` // Upward speed, units/sec
	Radius float64 `yaml:"radius"`
}

// AsteroidConfig defines spawned asteroids.
type AsteroidConfig struct {
	Speed  float64 `yaml:"speed"` // Downward speed, units/sec
	Radius float64 `yaml:"radius"`
}

// SpawningConfig defines the automatic asteroid spawn schedule.
type SpawningConfig struct {
	Interval    float64 `yaml:"interval"`     // Seconds between spawns at difficulty 0
	MinInterval float64 `yaml:"min_interval"` // Floor for the scaled interval
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
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"` // Spawn rate added at max difficulty (1.0 = twice as often)
}

// Bounds returns the play area as world bounds centred on the origin.
func (c AsteroidsConfig) Bounds() core.Bounds {
	return core.CenteredBounds(c.PlayArea.Width, c.PlayArea.Height)
}

// ShipStart returns the ship's default position.
func (c AsteroidsConfig) ShipStart() core.Vec2 {
	return core.V(c.Ship.StartX, c.Ship.StartY)
}

// Validate reports every invalid field, joined into one error.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be negative, got %g", name, v))
		}
	}

	positive("play_area.width", c.PlayArea.Width)
	positive("play_area.height", c.PlayArea.Height)
	nonNegative("play_area.bounds_margin", c.PlayArea.BoundsMargin)
	positive("ship.radius", c.Ship.Radius)
	nonNegative("ship.speed", c.Ship.Speed)
	nonNegative("ship.fire_cooldown", c.Ship.FireCooldown)
	positive("laser.speed", c.Laser.Speed)
	positive("laser.radius", c.Laser.Radius)
	positive("asteroid.speed", c.Asteroid.Speed)
	positive("asteroid.radius", c.Asteroid.Radius)
	positive("spawning.interval", c.Spawning.Interval)
	positive("spawning.min_interval", c.Spawning.MinInterval)

	if c.Spawning.MinInterval > c.Spawning.Interval {
		errs = append(errs, fmt.Errorf("config: spawning.min_interval (%g) exceeds spawning.interval (%g)",
			c.Spawning.MinInterval, c.Spawning.Interval))
	}
	if c.PlayArea.Width > 0 && c.PlayArea.Height > 0 && !c.Bounds().Contains(c.ShipStart()) {
		errs = append(errs, fmt.Errorf("config: ship start (%g, %g) is outside the play area",
			c.Ship.StartX, c.Ship.StartY))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("config: difficulty.initial_level must be within [0, 1], got %g",
			c.Difficulty.InitialLevel))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("config: unknown difficulty.progression.type %q",
			c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
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

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawning.Interval *= 1.5
		cfg.Ship.FireCooldown *= 0.75
	case DifficultyHard:
		cfg.Asteroid.Speed *= 1.3
		cfg.Ship.FireCooldown *= 1.5
	}
}
