package core

// RuntimeConfig is what the platform tells a game on Reset: the terminal
// size, the tick rate and the seed for its random source.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// WithDefaults fills zero or negative sizes and rates from DefaultConfig.
// The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is the part of a game the platform cares about: what to save to
// the scoreboard and whether play is running.
type GameState struct {
	Score    int
	Lines    int // rows cleared, or formed in detect-only play
	Level    int
	GameOver bool
	Paused   bool
}

// Running reports whether the game is neither over nor paused.
func (s GameState) Running() bool {
	return !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
