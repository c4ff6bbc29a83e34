// Package tetris implements the falling-block game on top of the engine
// package. The engine owns the rules; this package adds timing, scoring,
// input handling and rendering.
package tetris

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // rows are cleared, gravity speeds up
	ModeClassic  Mode = "classic"  // rows are only detected, fixed speed
)

// Game IDs used by the registry and the score store.
const (
	IDMarathon = "tetris"
	IDClassic  = "tetris_classic"
)

// Game implements registry.Game around an engine.Engine.
type Game struct {
	mode      Mode
	cfg       config.TetrisConfig
	cfgLoaded bool // cfg was supplied by the caller

	eng        *engine.Engine
	difficulty *config.DifficultyManager
	newSource  func(seed int64) engine.RandomSource

	tick        uint64
	fallCounter int

	score      int
	lines      int // cleared (marathon) or formed (classic)
	level      int
	formedSeen int

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetLogger replaces the logger that receives engine events.
// Events are logged at debug level; the default logger discards everything.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon, newSource: engine.NewSeeded}
}

// NewClassic creates a game with detect-only rows and fixed gravity.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, newSource: engine.NewSeeded}
}

// NewWithConfig creates a game that uses cfg instead of loading YAML.
func NewWithConfig(mode Mode, cfg config.TetrisConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgLoaded: true, newSource: engine.NewSeeded}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return IDClassic
	}
	return IDMarathon
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Tetris (Marathon)"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeClassic {
		return "Full rows are only detected, the well fills up. Fixed speed."
	}
	return "Clear rows to score. Gravity speeds up as you go."
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.cfgLoaded {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			logger.Warn("using default config", "err", err)
			cfg = config.DefaultTetrisConfig()
		}
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	if g.newSource == nil {
		g.newSource = engine.NewSeeded
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.mode == ModeClassic {
		g.difficulty.SetEnabled(false)
	}

	engCfg := engine.Config{
		Width:      g.cfg.Board.Width,
		Height:     g.cfg.Board.Height,
		SpawnX:     g.cfg.Board.SpawnX,
		SpawnY:     g.cfg.Board.SpawnY,
		ClearLines: g.mode == ModeMarathon,
	}
	eng, err := engine.New(engCfg, g.newSource(rc.Seed))
	if err != nil {
		logger.Error("invalid board, falling back to defaults", "err", err)
		engCfg = engine.DefaultConfig()
		engCfg.ClearLines = g.mode == ModeMarathon
		eng, _ = engine.New(engCfg, g.newSource(rc.Seed))
	}
	eng.Subscribe(g)
	eng.SetPanicHandler(func(e engine.Event, recovered any) {
		logger.Error("listener panicked", "event", e.Name, "panic", recovered)
	})
	g.eng = eng

	g.tick = 0
	g.fallCounter = 0
	g.score = 0
	g.lines = 0
	g.level = 0
	g.formedSeen = 0
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	logger.Debug("game reset", "mode", g.mode, "seed", rc.Seed,
		"board", engCfg.Width, "rows", engCfg.Height)
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// A new piece enters as soon as the previous one is placed
	if g.eng.State() == engine.StateEmpty {
		g.eng.Step()
		g.fallCounter = 0
		return core.StepResult{State: g.State()}
	}

	if g.handleInput(in) {
		return core.StepResult{State: g.State()}
	}

	g.fallCounter++
	if g.fallCounter >= g.fallInterval() {
		g.fallCounter = 0
		g.eng.Step()
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies player actions. It reports whether the tick was
// consumed by a hard drop.
func (g *Game) handleInput(in core.InputFrame) bool {
	if in.Has(core.ActionDrop) {
		rows := g.eng.HardDrop()
		g.score += rows * g.cfg.Gameplay.HardDropPoints
		g.eng.Step() // lock
		g.fallCounter = 0
		return true
	}

	if in.Has(core.ActionLeft) {
		g.eng.RequestMove(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.eng.RequestMove(1, 0)
	}
	if in.Has(core.ActionRotateCW) {
		g.eng.RequestRotate(false)
	}
	if in.Has(core.ActionRotateCCW) {
		g.eng.RequestRotate(true)
	}
	if in.Has(core.ActionDown) && g.eng.RequestMove(0, 1) {
		g.score += g.cfg.Gameplay.SoftDropPoints
		g.fallCounter = 0
	}
	return false
}

func (g *Game) fallInterval() int {
	gp := g.cfg.Gameplay
	return g.difficulty.FallInterval(gp.FallEveryTicks, gp.MinFallEveryTicks, g.lines, int(g.tick))
}

// OnEvent scores rows and logs every engine event.
func (g *Game) OnEvent(e engine.Event) {
	switch e.Type {
	case engine.EventLinesCleared:
		g.awardLines(len(e.Lines))
	case engine.EventLinesFormed:
		// Without clearing, formed rows stay full and are reported on
		// every step; only newly formed rows score.
		if g.mode == ModeClassic && len(e.Lines) > g.formedSeen {
			g.awardLines(len(e.Lines) - g.formedSeen)
			g.formedSeen = len(e.Lines)
		}
	}

	if e.Type == engine.EventGameEndTriggered {
		logger.Info("game over", "mode", g.mode, "score", g.score, "lines", g.lines)
	}
	logger.Debug(e.Name, "piece", e.Piece, "lines", e.Lines, "tick", g.tick)
}

// awardLines adds points for n rows completed by one placement.
func (g *Game) awardLines(n int) {
	if n <= 0 {
		return
	}
	points := g.cfg.Gameplay.LinePoints
	if len(points) > 0 {
		g.score += points[core.Clamp(n, 0, len(points)-1)] * (g.level + 1)
	}
	g.lines += n
	if per := g.cfg.Gameplay.LinesPerLevel; per > 0 {
		g.level = g.lines / per
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.eng != nil && g.eng.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
