package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Spawner creates asteroids along the top edge of the play area.
type Spawner struct {
	store   *Store
	bounds  core.Bounds
	speed   float64
	radius  float64
	rng     *rand.Rand
	spawned int
	active  func() bool // nil means always active
}

// NewSpawner creates a spawner whose horizontal offsets are drawn from seed.
func NewSpawner(store *Store, cfg config.AsteroidsConfig, seed int64) *Spawner {
	return &Spawner{
		store:  store,
		bounds: cfg.Bounds(),
		speed:  cfg.Asteroid.Speed,
		radius: cfg.Asteroid.Radius,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SpawnAsteroid places an asteroid at a random x on the top edge, moving
// straight down. A spawner owned by a finished game spawns nothing and
// returns the zero Handle.
func (s *Spawner) SpawnAsteroid() Handle {
	if s.active != nil && !s.active() {
		return Handle{}
	}
	x := s.bounds.Min.X + s.rng.Float64()*s.bounds.Width()
	pos := core.V(x, s.bounds.Max.Y)
	id := s.store.Spawn(KindAsteroid, pos, core.V(0, -s.speed), s.radius)
	s.spawned++
	return Handle{store: s.store, id: id}
}

// Reseed restarts the random sequence and the spawn counter.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.spawned = 0
}

// Spawned returns the number of asteroids created since the last Reseed.
func (s *Spawner) Spawned() int {
	return s.spawned
}
