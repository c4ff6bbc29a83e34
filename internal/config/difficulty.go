package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressByLines = "lines"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// DifficultyManager turns play progress into a gravity interval.
//
// Difficulty is a level in [0, 1]. It starts at the initial level and rises
// linearly to 1 as cleared lines (or ticks) approach progression.max_at.
// At level L gravity runs 1 + L*speed_multiplier times faster than the base.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// SetInitialLevel overrides the starting level. Values are clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.start = unit(level)
}

func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// progress returns how far along the progression axis play is, in [0, 1].
func (d *DifficultyManager) progress(lines, ticks int) float64 {
	var done int
	switch d.cfg.Progression.Type {
	case ProgressByLines:
		done = lines
	case ProgressByTime:
		done = ticks
	default:
		return 0
	}
	span := max(d.cfg.Progression.MaxAt, 1)
	return unit(float64(done) / float64(span))
}

// Level returns the difficulty level for the given progress.
func (d *DifficultyManager) Level(lines, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	return d.start + d.progress(lines, ticks)*(1-d.start)
}

// Speed returns the gravity speed-up factor, never below 1.
func (d *DifficultyManager) Speed(lines, ticks int) float64 {
	return math.Max(1, 1+d.Level(lines, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// FallInterval returns the ticks between gravity steps: base divided by the
// current speed, rounded, and never below minimum (or one tick).
func (d *DifficultyManager) FallInterval(base, minimum, lines, ticks int) int {
	interval := int(math.Round(float64(base) / d.Speed(lines, ticks)))
	return max(interval, minimum, 1)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
