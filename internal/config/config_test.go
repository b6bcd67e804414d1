package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultAsteroidsConfig().Validate() = %v, expected nil", err)
	}
	if got := cfg.Bounds().Width(); got != 24 {
		t.Errorf("Bounds().Width() = %v, expected 24", got)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil {
		t.Fatalf("decode(embedded) error = %v", err)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AsteroidsConfig)
		wantErr string
	}{
		{"zero width", func(c *AsteroidsConfig) { c.PlayArea.Width = 0 }, "play_area.width"},
		{"negative margin", func(c *AsteroidsConfig) { c.PlayArea.BoundsMargin = -1 }, "bounds_margin"},
		{"zero laser radius", func(c *AsteroidsConfig) { c.Laser.Radius = 0 }, "laser.radius"},
		{"zero asteroid speed", func(c *AsteroidsConfig) { c.Asteroid.Speed = 0 }, "asteroid.speed"},
		{"min above interval", func(c *AsteroidsConfig) { c.Spawning.MinInterval = 5 }, "min_interval"},
		{"ship outside", func(c *AsteroidsConfig) { c.Ship.StartY = -50 }, "ship start"},
		{"level above one", func(c *AsteroidsConfig) { c.Difficulty.InitialLevel = 1.5 }, "initial_level"},
		{"bad progression", func(c *AsteroidsConfig) { c.Difficulty.Progression.Type = "lunar" }, "progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultAsteroidsConfig()

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %v, expected 0.7", hard.Difficulty.InitialLevel)
	}
	if hard.Asteroid.Speed <= base.Asteroid.Speed {
		t.Errorf("hard asteroid speed = %v, expected faster than %v", hard.Asteroid.Speed, base.Asteroid.Speed)
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Spawning.Interval <= base.Spawning.Interval {
		t.Errorf("easy interval = %v, expected longer than %v", easy.Spawning.Interval, base.Spawning.Interval)
	}

	none := base
	ApplyPreset(&none, "")
	if none != base {
		t.Error("empty preset should not change the config")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{25, 0.5},
		{50, 1},
		{500, 1},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(25, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(25, 0) from 0.5 = %v, expected 0.75", got)
	}

	dm.SetEnabled(false)
	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("disabled Level() = %v, expected initial 0.5", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(1000, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(_, 50) = %v, expected 0.5", got)
	}
}

func TestSpawnInterval(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	if got := dm.SpawnInterval(1.5, 0.4, 0, 0); got != 1.5 {
		t.Errorf("SpawnInterval at level 0 = %v, expected 1.5", got)
	}
	// Level 1 with multiplier 2: 1.5 / 3 = 0.5
	if got := dm.SpawnInterval(1.5, 0.4, 50, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SpawnInterval at level 1 = %v, expected 0.5", got)
	}
	if got := dm.SpawnInterval(1.5, 0.6, 50, 0); got != 0.6 {
		t.Errorf("SpawnInterval should respect the floor, got %v", got)
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("asteroid:\n  speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() error = %v", err)
	}
	if cfg.Asteroid.Speed != 7 {
		t.Errorf("Asteroid.Speed = %v, expected 7", cfg.Asteroid.Speed)
	}
	// Unnamed keys keep their defaults
	if cfg.Laser.Speed != DefaultAsteroidsConfig().Laser.Speed {
		t.Errorf("Laser.Speed = %v, expected default", cfg.Laser.Speed)
	}
}

func TestLoadAsteroidsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAsteroids(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("laser:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(invalid); err == nil {
		t.Error("invalid custom config should fail")
	}
}

func TestLoadAsteroidsSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids() error = %v", err)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "asteroids.yaml"), []byte("laser:\n  speed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadAsteroids("")
	if cfg.Laser.Speed != 9 {
		t.Errorf("local config Laser.Speed = %v, expected 9", cfg.Laser.Speed)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".asteroids", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "asteroids.yaml"), []byte("laser:\n  speed: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadAsteroids("")
	if cfg.Laser.Speed != 11 {
		t.Errorf("user config Laser.Speed = %v, expected 11", cfg.Laser.Speed)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultAsteroidsConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "bounds_margin: 2") {
		t.Errorf("Marshal() output missing yaml keys:\n%s", data)
	}
}
