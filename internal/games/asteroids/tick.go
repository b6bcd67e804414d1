package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset applies the runtime settings and starts a new run.
// A non-zero seed in cfg replaces the game's seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if cfg.Seed != 0 {
		g.seed = cfg.Seed
	}
	g.NewGame()
}

// SetBest records the best known score, shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = max(g.best, score)
}

// Best returns the best score seen by this game value.
func (g *Game) Best() int {
	return max(g.best, g.score)
}

// Tick advances the game by one fixed step (1/TickRate seconds), applying
// player input and the automatic asteroid schedule first.
func (g *Game) Tick(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.best = g.Best()
			g.seed++ // a restarted run gets a different asteroid pattern
			g.NewGame()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.StepSeconds()
	ship := g.Ship()

	// Steering only lasts for the tick it is held.
	var vx float64
	if in.Has(core.ActionLeft) {
		vx -= g.cfg.Ship.Speed
	}
	if in.Has(core.ActionRight) {
		vx += g.cfg.Ship.Speed
	}
	if err := ship.SetVelocity(core.V(vx, 0)); err != nil {
		in = core.InputFrame{} // no ship to steer or fire from
	}

	g.sinceFire += dt
	if in.Has(core.ActionFire) && g.sinceFire >= g.cfg.Ship.FireCooldown {
		if _, err := ship.SpawnLaser(); err == nil {
			g.sinceFire = 0
		}
	}

	g.spawnTimer += dt
	interval := g.difficulty.SpawnInterval(g.cfg.Spawning.Interval, g.cfg.Spawning.MinInterval,
		g.score, int(g.clock.Ticks()))
	if g.spawnTimer >= interval {
		g.spawnTimer = 0
		g.spawner.SpawnAsteroid()
	}

	report := g.Step(dt)

	if ship.IsAlive() {
		if pos, err := ship.Position(); err == nil {
			// Position just found the ship, so SetPosition cannot fail.
			_ = ship.SetPosition(g.cfg.Bounds().Clamp(pos))
		}
	}

	destroyed := len(report.Destroyed)
	if report.ShipDestroyed {
		destroyed = 0
	}
	return core.StepResult{
		State:     g.State(),
		Destroyed: destroyed,
		ShipLost:  report.ShipDestroyed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Level returns the current difficulty level (0.0 to 1.0).
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.score, int(g.clock.Ticks()))
}

// RunStats reports the counters persisted when a run ends.
func (g *Game) RunStats() core.RunStats {
	st := g.Stats()
	return core.RunStats{
		Score:              st.Score,
		LasersFired:        st.LasersFired,
		AsteroidsDestroyed: st.AsteroidsDestroyed,
		Ticks:              st.Ticks,
		Seed:               g.seed,
	}
}
