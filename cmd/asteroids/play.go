package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play asteroids",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Steer
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower spawns, faster reload, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster asteroids, slower reload, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play --name ana --difficulty hard
  asteroids play --seed 42 --log-file ./asteroids.log
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "name", os.Getenv("USER"), "Player name stored with scores")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// play returns instead of exiting so its deferred closes always run.
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := newLogger(logOut, "asteroids")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := asteroids.New(gameCfg, flagSeed)
	if err := tui.Run(game, store, cfg, flagPlayer, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// nopWriteCloser discards log output when no log file is set.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openLog opens path for appending, or returns a discarding writer for "".
// The game owns the terminal, so logs never go to stdout or stderr.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
