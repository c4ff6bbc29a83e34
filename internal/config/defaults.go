package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
			SpawnX: 4,
			SpawnY: 0,
		},
		Gameplay: TetrisGameplay{
			FallEveryTicks:    30, // half a second at 60fps
			MinFallEveryTicks: 3,
			SoftDropPoints:    1,
			HardDropPoints:    2,
			LinePoints:        []int{0, 100, 300, 500, 800},
			LinesPerLevel:     10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 9.0,
			},
		},
		Colors: map[string]core.Color{
			"I": core.ColorCyan,
			"L": core.ColorOrange,
			"R": core.ColorBlue,
			"Z": core.ColorRed,
			"S": core.ColorGreen,
			"X": core.ColorYellow,
			"T": core.ColorMagenta,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_classic":
		return defaultTetrisYAML
	default:
		return nil
	}
}
