package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "brickbreaker.yaml"

// LoadBrickBreaker loads the game configuration.
// Search order: customPath -> ~/.brickbreaker/configs/brickbreaker.yaml ->
// ./configs/brickbreaker.yaml -> embedded default -> built-in values.
// Files only need to name the fields they change.
func LoadBrickBreaker(customPath string) (BrickBreakerConfig, error) {
	cfg := DefaultBrickBreakerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	if err := yaml.Unmarshal(defaultBrickBreakerYAML, &cfg); err != nil {
		return DefaultBrickBreakerConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never prevents the game from starting.
func tryLoad(path string) (BrickBreakerConfig, bool) {
	cfg := DefaultBrickBreakerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BrickBreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 200
		cfg.Ball.Speed = 400
		cfg.Difficulty.Enabled = false
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 120
		cfg.Ball.Speed = 540
		cfg.Difficulty.Enabled = true
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
