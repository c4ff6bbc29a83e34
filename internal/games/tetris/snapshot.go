package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Lines        int
	Level        int
	FallInterval int
	State        GameStateType
	Engine       string // engine state machine position
	HasActive    bool
	ActiveKind   engine.Kind
	PivotX       int
	PivotY       int
	Placed       int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.eng.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		FallInterval: g.fallInterval(),
		State:        state,
		Engine:       g.eng.State().String(),
		Placed:       len(g.eng.Placed()),
	}
	if active, ok := g.eng.Active(); ok {
		pivot := active.Pivot()
		s.HasActive = true
		s.ActiveKind = active.Kind
		s.PivotX = pivot.X
		s.PivotY = pivot.Y
	}
	return s
}
