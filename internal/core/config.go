package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepSeconds returns the fixed simulation step in seconds (1/TickRate).
// A non-positive tick rate falls back to 60 ticks per second.
func (c RuntimeConfig) StepSeconds() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// TickInterval returns the wall-clock interval between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Duration(c.StepSeconds() * float64(time.Second))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State     GameState
	Destroyed int  // Asteroids destroyed by lasers this tick
	ShipLost  bool // The ship was destroyed this tick
}

// RunStats are the per-run counters a game reports for persistence.
type RunStats struct {
	Score              int
	LasersFired        int
	AsteroidsDestroyed int
	Ticks              uint64
	Seed               int64
}
