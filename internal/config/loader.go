package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const asteroidsFile = "asteroids.yaml"

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. A custom path that is missing, malformed or invalid is
// an error; the other locations are skipped when unusable.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return AsteroidsConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(asteroidsFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", asteroidsFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func tryLoad(path string) (AsteroidsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AsteroidsConfig{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return AsteroidsConfig{}, false
	}
	return cfg, true
}

func decode(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}
