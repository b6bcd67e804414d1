package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// CollisionKind classifies a meaningful overlap.
type CollisionKind uint8

const (
	CollisionShipAsteroid CollisionKind = iota + 1
	CollisionLaserAsteroid
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionShipAsteroid:
		return "ship-asteroid"
	case CollisionLaserAsteroid:
		return "laser-asteroid"
	default:
		return "unknown"
	}
}

// Collision is an overlapping pair. A is the ship or laser, B the asteroid.
type Collision struct {
	A, B EntityID
	Kind CollisionKind
}

// DetectCollisions returns every ship-asteroid and laser-asteroid overlap in
// the store. Ship-asteroid pairs come first; within each group pairs are
// ordered by (A, B). All other pairs are ignored.
func DetectCollisions(store *Store) []Collision {
	var ships, lasers, asteroids []Entity
	for e := range store.All() {
		switch e.Kind {
		case KindShip:
			ships = append(ships, e)
		case KindLaser:
			lasers = append(lasers, e)
		case KindAsteroid:
			asteroids = append(asteroids, e)
		}
	}

	var out []Collision
	out = appendOverlaps(out, ships, asteroids, CollisionShipAsteroid)
	out = appendOverlaps(out, lasers, asteroids, CollisionLaserAsteroid)
	return out
}

func appendOverlaps(out []Collision, as, bs []Entity, kind CollisionKind) []Collision {
	for _, a := range as {
		for _, b := range bs {
			if core.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius) {
				out = append(out, Collision{A: a.ID, B: b.ID, Kind: kind})
			}
		}
	}
	return out
}
