package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevelByLines(t *testing.T) {
	dm := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	assert.InDelta(t, 0.0, dm.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, dm.Level(75, 0), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(150, 0), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(1000, 0), 1e-9, "level is capped")
}

func TestDifficultyLevelByTime(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	dm := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.25, dm.Level(999, 25), 1e-9)
}

func TestDifficultyInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DefaultTetrisConfig().Difficulty)
	dm.SetInitialLevel(0.5)

	assert.InDelta(t, 0.5, dm.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.75, dm.Level(75, 0), 1e-9)

	dm.SetInitialLevel(3)
	assert.InDelta(t, 1.0, dm.Level(0, 0), 1e-9, "initial level is clamped")
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultTetrisConfig().Difficulty)
	dm.SetEnabled(false)

	assert.False(t, dm.IsEnabled())
	assert.InDelta(t, 0.0, dm.Level(150, 0), 1e-9)
	assert.Equal(t, 30, dm.FallInterval(30, 3, 150, 0))

	cfg := DefaultTetrisConfig().Difficulty
	cfg.Progression.Type = "none"
	assert.False(t, NewDifficultyManager(cfg).IsEnabled())
}

func TestFallInterval(t *testing.T) {
	dm := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	tests := []struct {
		lines int
		want  int
	}{
		{0, 30},   // 30 / 1.0
		{15, 16},  // 30 / 1.9 = 15.8
		{75, 5},   // 30 / 5.5 = 5.45
		{150, 3},  // 30 / 10
		{1000, 3}, // capped
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, dm.FallInterval(30, 3, tc.lines, 0), "lines=%d", tc.lines)
	}
}

func TestFallIntervalHonoursMinimum(t *testing.T) {
	dm := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	assert.Equal(t, 8, dm.FallInterval(30, 8, 150, 0))
	assert.Equal(t, 1, dm.FallInterval(1, 0, 150, 0), "minimum is at least one tick")
}

func TestSpeedNeverSlowsGravity(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Scaling.SpeedMultiplier = -5
	dm := NewDifficultyManager(cfg)

	assert.InDelta(t, 1.0, dm.Speed(150, 0), 1e-9)
	assert.Equal(t, 30, dm.FallInterval(30, 3, 150, 0))
}
