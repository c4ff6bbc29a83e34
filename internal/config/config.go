// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gameplay   TetrisGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`

	// Colors maps piece letters (I L R Z S X T) to colour names.
	Colors map[string]core.Color `yaml:"colors"`
}

// PieceLetters lists the keys accepted in Colors.
const PieceLetters = "ILRZSXT"

// TetrisBoard defines the well geometry.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// TetrisGameplay defines timing and scoring parameters.
type TetrisGameplay struct {
	FallEveryTicks    int   `yaml:"fall_every_ticks"`     // Gravity interval at level 0
	MinFallEveryTicks int   `yaml:"min_fall_every_ticks"` // Fastest gravity interval
	SoftDropPoints    int   `yaml:"soft_drop_points"`     // Per row of soft drop
	HardDropPoints    int   `yaml:"hard_drop_points"`     // Per row of hard drop
	LinePoints        []int `yaml:"line_points"`          // Indexed by rows cleared at once
	LinesPerLevel     int   `yaml:"lines_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed added at max difficulty
}

// Validate reports whether the config describes a playable board.
func (c TetrisConfig) Validate() error {
	b := c.Board
	if b.Width < 4 || b.Height < 4 {
		return fmt.Errorf("config: board %dx%d is smaller than a piece: %w", b.Width, b.Height, ErrInvalid)
	}
	if b.SpawnX < 0 || b.SpawnX >= b.Width || b.SpawnY < 0 || b.SpawnY >= b.Height {
		return fmt.Errorf("config: spawn (%d,%d) outside board: %w", b.SpawnX, b.SpawnY, ErrInvalid)
	}
	if c.Gameplay.FallEveryTicks <= 0 {
		return fmt.Errorf("config: fall_every_ticks must be positive: %w", ErrInvalid)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressByLines, ProgressByTime, ProgressNone:
	default:
		return fmt.Errorf("config: unknown progression type %q: %w", c.Difficulty.Progression.Type, ErrInvalid)
	}
	for letter := range c.Colors {
		if len(letter) != 1 || !strings.Contains(PieceLetters, letter) {
			return fmt.Errorf("config: colors: unknown piece %q: %w", letter, ErrInvalid)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed): %w", name, ErrInvalid)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
