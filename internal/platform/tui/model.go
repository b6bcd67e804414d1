package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Game is a simulation the terminal UI can drive one tick at a time.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Tick(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// runStatser is implemented by games that report per-run counters.
type runStatser interface {
	RunStats() core.RunStats
}

// bestSetter is implemented by games that show the stored high score.
type bestSetter interface {
	SetBest(score int)
}

// footerRows is the number of rows below the game screen (help line).
const footerRows = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	runSaved   bool // Whether the current finished run has been handled
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		player:     player,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBest()
	m.logger.Info("game started", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The world is independent of the terminal size, so the run continues.
		m.screen.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Tick(m.inputFrame)
	m.gameState = result.State

	if result.ShipLost {
		m.logger.Debug("ship destroyed", "score", m.gameState.Score)
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// A restart happened inside the game
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.started = time.Now()
		m.loadBest()
		m.logger.Info("game restarted", "game", m.game.ID())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveRun persists the finished run. Runs without points are not recorded.
func (m *Model) saveRun() {
	run := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Seed:     m.config.Seed,
		Duration: time.Since(m.started),
	}
	if rs, ok := m.game.(runStatser); ok {
		st := rs.RunStats()
		run.LasersFired = st.LasersFired
		run.AsteroidsDestroyed = st.AsteroidsDestroyed
		run.Ticks = int64(st.Ticks)
		run.Seed = st.Seed
	}

	m.logger.Info("game over", "score", run.Score, "lasers", run.LasersFired, "duration", run.Duration.Round(time.Second))

	if m.store == nil || run.Score <= 0 {
		return
	}
	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run_id", saved.RunID)
}

// loadBest passes the stored high score to the game HUD.
func (m Model) loadBest() {
	bs, ok := m.game.(bestSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	bs.SetBest(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
