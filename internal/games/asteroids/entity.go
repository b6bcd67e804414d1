// Package asteroids implements a deterministic, headless asteroids
// simulation: a ship at the bottom of the play area shoots lasers upward
// at asteroids falling from the top edge.
//
// The simulation advances only when Step is called. Game additionally
// implements the platform's Tick/Render interface so the same core can be
// driven by a terminal front end or a test harness.
package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EntityID identifies an entity. IDs start at 1, increase monotonically and
// are never reused by a store, even across Clear.
type EntityID uint64

// Kind is the type of a simulated object.
type Kind uint8

const (
	KindShip Kind = iota + 1
	KindLaser
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindLaser:
		return "laser"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Entity is a copy of a stored object's state. The store only holds live
// entities, so Alive is true on every copy it returns; use Handle.IsAlive
// to check whether an entity still exists.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Pos       core.Vec2
	Vel       core.Vec2
	Radius    float64
	SpawnedAt float64 // Clock time at spawn, in seconds
	Alive     bool
}
