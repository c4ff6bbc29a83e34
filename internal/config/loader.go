package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// LoadTetris loads the game configuration.
//
// An explicit customPath must exist and be valid. Otherwise the first usable
// file among ~/.tetris/configs/tetris.yaml and ./configs/tetris.yaml wins,
// then the embedded defaults/tetris.yaml, then DefaultTetrisConfig.
// Files are overlaid on the defaults, so they only need the keys they change.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return decodeTetris(data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeTetris(data, path); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeTetris(defaultTetrisYAML, "embedded defaults"); err == nil {
		return cfg, nil
	}
	return DefaultTetrisConfig(), nil
}

// decodeTetris overlays YAML data on the defaults and validates the result.
func decodeTetris(data []byte, source string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tetris", "configs", tetrisFile))
	}
	return append(paths, filepath.Join("configs", tetrisFile))
}

// ApplyTetrisPreset adjusts difficulty and base gravity for a named preset.
// An empty preset leaves cfg untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyEasy:
		cfg.Gameplay.FallEveryTicks = 45
	case DifficultyHard:
		cfg.Gameplay.FallEveryTicks = 20
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
