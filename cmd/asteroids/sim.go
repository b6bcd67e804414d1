package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagSteps     int
	flagFireEvery int
	flagDump      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot simulation",
	Long: `Run the game without a terminal UI. An autopilot steers under the
lowest asteroid and fires every --fire-every ticks until the ship is lost
or --steps ticks have run. One tick lasts 1/--fps seconds.

The same --seed and flags always produce the same run.

Examples:
  asteroids sim --seed 7
  asteroids sim --steps 36000 --fire-every 5 --log-level debug
  asteroids sim --seed 7 --dump > final.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 10, "Press fire every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final snapshot as YAML")
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := asteroids.New(gameCfg, seed)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	logger.Info("simulation started", "seed", seed, "steps", flagSteps, "fps", flagFPS)

	in := core.NewInputFrame()
	for i := range flagSteps {
		in.Clear()
		autopilot(game, i, &in)

		res := game.Tick(in)
		if res.Destroyed > 0 {
			logger.Debug("asteroid destroyed", "tick", i, "count", res.Destroyed, "score", res.State.Score)
		}
		if res.ShipLost {
			logger.Info("ship destroyed", "tick", i, "time", fmt.Sprintf("%.2fs", game.Clock().Now()))
			break
		}
	}

	stats := game.Stats()
	logger.Info("simulation finished",
		"phase", game.Phase(),
		"score", stats.Score,
		"ticks", stats.Ticks,
		"lasers", stats.LasersFired,
		"spawned", stats.AsteroidsSpawned,
		"destroyed", stats.AsteroidsDestroyed,
		"culled", stats.Culled,
	)

	if flagDump {
		out, err := yaml.Marshal(game.Snapshot())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}
	fmt.Printf("seed=%d score=%d ticks=%d phase=%s\n", seed, stats.Score, stats.Ticks, game.Phase())
}

// autopilot steers the ship under the lowest asteroid and fires on schedule.
func autopilot(game *asteroids.Game, tick int, in *core.InputFrame) {
	if flagFireEvery > 0 && tick%flagFireEvery == 0 {
		in.Set(core.ActionFire)
	}

	shipPos, err := game.Ship().Position()
	if err != nil {
		return
	}

	target, found := 0.0, false
	lowest := math.Inf(1)
	for e := range game.Store().OfKind(asteroids.KindAsteroid) {
		if e.Pos.Y < lowest {
			lowest, target, found = e.Pos.Y, e.Pos.X, true
		}
	}
	if !found {
		return
	}

	// Half a ship radius of slack stops the ship jittering around the target.
	slack := game.Config().Ship.Radius / 2
	switch {
	case target < shipPos.X-slack:
		in.Set(core.ActionLeft)
	case target > shipPos.X+slack:
		in.Set(core.ActionRight)
	}
}
