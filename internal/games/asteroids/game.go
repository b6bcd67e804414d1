package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the state of the game state machine.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepReport describes what happened during one Step.
type StepReport struct {
	ShipDestroyed bool
	Destroyed     []Collision // Resolved collisions, in resolution order
	Culled        []EntityID  // Entities removed for leaving the play area
	GameOver      bool
}

// Stats are counters for the current run.
type Stats struct {
	Score              int
	LasersFired        int
	AsteroidsSpawned   int
	AsteroidsDestroyed int
	Culled             int
	Ticks              uint64
	Elapsed            float64
}

// Game owns the score, phase and every entity of one run.
// It is not safe for concurrent use.
type Game struct {
	cfg     config.AsteroidsConfig
	seed    int64
	clock   *Clock
	store   *Store
	spawner *Spawner
	shipID  EntityID
	score   int
	phase   Phase
	stats   Stats

	// Interactive driving, see Tick.
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	paused     bool
	spawnTimer float64
	sinceFire  float64
	best       int
}

// New creates a game in the Playing phase with the ship at its start position.
func New(cfg config.AsteroidsConfig, seed int64) *Game {
	clock := &Clock{}
	store := NewStore(clock)
	g := &Game{
		cfg:        cfg,
		seed:       seed,
		clock:      clock,
		store:      store,
		spawner:    NewSpawner(store, cfg, seed),
		runtime:    core.DefaultConfig(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.runtime.Seed = seed
	g.spawner.active = func() bool { return g.phase == PhasePlaying }
	g.NewGame()
	return g
}

// NewGame starts a fresh run. It is valid in any phase.
func (g *Game) NewGame() {
	g.store.Clear()
	g.clock.Reset()
	g.spawner.Reseed(g.seed)
	g.shipID = g.store.Spawn(KindShip, g.cfg.ShipStart(), core.Vec2{}, g.cfg.Ship.Radius)
	g.score = 0
	g.phase = PhasePlaying
	g.stats = Stats{}
	g.paused = false
	g.spawnTimer = 0
	g.sinceFire = g.cfg.Ship.FireCooldown
}

// Step advances the simulation by dt seconds: move, collide, resolve, then
// cull. In the GameOver phase it does nothing.
func (g *Game) Step(dt float64) StepReport {
	if g.phase == PhaseGameOver {
		return StepReport{GameOver: true}
	}

	if dt > 0 {
		g.clock.Advance(dt)
		g.store.integrate(dt)
	}

	var report StepReport
	collisions := DetectCollisions(g.store)

	// Ship hits sort first. Losing the ship ends the step unresolved.
	if len(collisions) > 0 && collisions[0].Kind == CollisionShipAsteroid {
		c := collisions[0]
		g.store.Remove(c.A)
		g.phase = PhaseGameOver
		report.ShipDestroyed = true
		report.GameOver = true
		report.Destroyed = append(report.Destroyed, c)
		return report
	}

	for _, c := range collisions {
		// An asteroid or laser can only be consumed once.
		if !g.store.Has(c.A) || !g.store.Has(c.B) {
			continue
		}
		g.store.Remove(c.A)
		g.store.Remove(c.B)
		g.score++
		g.stats.AsteroidsDestroyed++
		report.Destroyed = append(report.Destroyed, c)
	}

	report.Culled = g.cull()
	g.stats.Culled += len(report.Culled)
	return report
}

// cull removes every non-ship entity further than the bounds margin outside
// the play area.
func (g *Game) cull() []EntityID {
	outer := g.cfg.Bounds().Expand(g.cfg.PlayArea.BoundsMargin)
	var out []EntityID
	for e := range g.store.All() {
		if e.Kind != KindShip && !outer.Contains(e.Pos) {
			out = append(out, e.ID)
		}
	}
	for _, id := range out {
		g.store.Remove(id)
	}
	return out
}

// Score returns the number of asteroids destroyed by lasers this run.
func (g *Game) Score() int {
	return g.score
}

// IsGameOver reports whether the ship has been destroyed.
func (g *Game) IsGameOver() bool {
	return g.phase == PhaseGameOver
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ship returns the player's ship. After the ship is destroyed the returned
// value is no longer alive.
func (g *Game) Ship() Ship {
	return Ship{Handle: g.Handle(g.shipID), game: g}
}

// Spawner returns the asteroid spawner.
func (g *Game) Spawner() *Spawner {
	return g.spawner
}

// Store returns the entity store.
func (g *Game) Store() *Store {
	return g.store
}

// Clock returns the simulation clock.
func (g *Game) Clock() *Clock {
	return g.clock
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Seed returns the seed used by the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Handle returns a handle for any entity id.
func (g *Game) Handle(id EntityID) Handle {
	return Handle{store: g.store, id: id}
}

// Stats returns the counters of the current run.
func (g *Game) Stats() Stats {
	s := g.stats
	s.Score = g.score
	s.AsteroidsSpawned = g.spawner.Spawned()
	s.Ticks = g.clock.Ticks()
	s.Elapsed = g.clock.Now()
	return s
}
