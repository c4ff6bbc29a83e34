package engine

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

// Errors returned by board setup. Gameplay itself never returns errors.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrCellOccupied  = errors.New("cell occupied")
)

// Config holds the board geometry and rule switches.
type Config struct {
	Width  int
	Height int
	SpawnX int
	SpawnY int

	// ClearLines removes formed rows and drops the blocks above them.
	// When false, formed rows are only reported.
	ClearLines bool
}

// DefaultConfig returns the standard 10x20 board with detection only.
func DefaultConfig() Config {
	return Config{
		Width:  BoardWidth,
		Height: BoardHeight,
		SpawnX: SpawnX,
		SpawnY: SpawnY,
	}
}

// Validate checks that the board is non-empty and the spawn origin lies on it.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("engine: board %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.SpawnX < 0 || c.SpawnX >= c.Width || c.SpawnY < 0 || c.SpawnY >= c.Height {
		return fmt.Errorf("engine: spawn (%d,%d) outside board: %w", c.SpawnX, c.SpawnY, ErrInvalidConfig)
	}
	return nil
}

// Bounds is the inclusive extent of the board.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies on the board.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// State is the engine's position in the step state machine.
type State int

const (
	StateEmpty    State = iota // no active piece
	StateFalling               // active piece can still descend
	StateLocking               // active piece is blocked below
	StateGameOver              // terminal
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns the board, the placed blocks and the active piece.
// It is not safe for concurrent use; callers drive it from one loop.
type Engine struct {
	cfg    Config
	bounds Bounds
	rng    RandomSource
	bus    Bus

	placed   []Block                // insertion order
	occupied *intmap.Map[int, Kind] // cell index -> kind of the piece that left it
	active   *Piece

	gameOver     bool
	linesCleared int
}

// New creates an engine. rng may be nil, in which case a time-independent
// source seeded with 1 is used.
func New(cfg Config, rng RandomSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSeeded(1)
	}

	e := &Engine{
		cfg: cfg,
		bounds: Bounds{
			MinX: 0,
			MinY: 0,
			MaxX: cfg.Width - 1,
			MaxY: cfg.Height - 1,
		},
		rng:      rng,
		occupied: intmap.New[int, Kind](cfg.Width * cfg.Height),
	}
	return e, nil
}

// NewDefault creates an engine with DefaultConfig.
func NewDefault(rng RandomSource) *Engine {
	e, err := New(DefaultConfig(), rng)
	if err != nil {
		panic(err) // DefaultConfig is always valid
	}
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Bounds returns the board extent.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	e.bus.Subscribe(l)
}

// SetPanicHandler sets the handler for listeners that panic.
func (e *Engine) SetPanicHandler(h PanicHandler) {
	e.bus.SetPanicHandler(h)
}

func (e *Engine) cellIndex(x, y int) int {
	return (y-e.bounds.MinY)*e.cfg.Width + (x - e.bounds.MinX)
}

// --- Collision ---

// IsCellFree reports whether (x, y) is on the board and unoccupied.
func (e *Engine) IsCellFree(x, y int) bool {
	if !e.bounds.Contains(x, y) {
		return false
	}
	return !e.occupied.Has(e.cellIndex(x, y))
}

// IsPieceValid reports whether every block of p is on a free cell.
func (e *Engine) IsPieceValid(p *Piece) bool {
	if p == nil {
		return false
	}
	for _, b := range p.Blocks {
		if !e.IsCellFree(b.X, b.Y) {
			return false
		}
	}
	return true
}

// CanMove reports whether p could be translated by (dx, dy). p is not modified.
func (e *Engine) CanMove(p *Piece, dx, dy int) bool {
	if p == nil {
		return false
	}
	candidate := p.Moved(dx, dy)
	return e.IsPieceValid(&candidate)
}

// CanRotate reports whether p could be rotated. p is not modified.
func (e *Engine) CanRotate(p *Piece, counterClockwise bool) bool {
	if p == nil {
		return false
	}
	candidate := p.Rotated(counterClockwise)
	return e.IsPieceValid(&candidate)
}

// --- Requests ---

// RequestMove moves the active piece by (dx, dy) if the destination is free.
// A move request event is published before validation regardless of outcome.
func (e *Engine) RequestMove(dx, dy int) bool {
	e.bus.Publish(moveRequestEvent(dx, dy))
	if e.gameOver || !e.CanMove(e.active, dx, dy) {
		return false
	}
	e.active.Move(dx, dy)
	return true
}

// RequestRotate rotates the active piece if the result is free.
// A rotation request event is published before validation.
func (e *Engine) RequestRotate(counterClockwise bool) bool {
	t := EventRequestClockwiseRotation
	if counterClockwise {
		t = EventRequestCounterClockwiseRotation
	}
	e.bus.Publish(newEvent(t).withPiece(e.active))
	if e.gameOver || !e.CanRotate(e.active, counterClockwise) {
		return false
	}
	e.active.Rotate(counterClockwise)
	return true
}

// HardDrop moves the active piece down until it is blocked and returns the
// number of rows it fell. The piece is locked by the next Step.
func (e *Engine) HardDrop() int {
	if e.active == nil || e.gameOver {
		return 0
	}
	rows := 0
	for e.RequestMove(0, 1) {
		rows++
	}
	return rows
}

// --- Lines ---

// FindFormedLines returns the rows that are completely filled, ascending.
func (e *Engine) FindFormedLines() []int {
	counts := make([]int, e.cfg.Height)
	for _, b := range e.placed {
		counts[b.Y-e.bounds.MinY]++
	}

	var lines []int
	for row, n := range counts {
		if n >= e.cfg.Width {
			lines = append(lines, row+e.bounds.MinY)
		}
	}
	return lines
}

// clearLines removes the given rows (ascending) and drops every block above
// a removed row by the number of removed rows below it.
func (e *Engine) clearLines(rows []int) {
	removed := make(map[int]bool, len(rows))
	for _, r := range rows {
		removed[r] = true
	}

	old := e.occupied
	kept := e.placed[:0]
	e.occupied = intmap.New[int, Kind](e.cfg.Width * e.cfg.Height)

	for _, b := range e.placed {
		if removed[b.Y] {
			continue
		}
		kind, _ := old.Get(e.cellIndex(b.X, b.Y))
		shift := 0
		for _, r := range rows {
			if r > b.Y {
				shift++
			}
		}
		b.Move(0, shift)
		kept = append(kept, b)
		e.occupied.Put(e.cellIndex(b.X, b.Y), kind)
	}

	e.placed = kept
	e.linesCleared += len(rows)
}

// LinesCleared returns the total number of rows removed so far.
func (e *Engine) LinesCleared() int {
	return e.linesCleared
}

// --- Step ---

// Step advances the game by one tick and reports whether play can continue.
// Exactly one of spawn, descend, lock or game over happens per call.
// After game over Step does nothing and returns false.
func (e *Engine) Step() bool {
	if e.gameOver {
		return false
	}

	if lines := e.FindFormedLines(); len(lines) > 0 {
		e.bus.Publish(newEvent(EventLinesFormed).withLines(lines))
		if e.cfg.ClearLines {
			e.clearLines(lines)
			e.bus.Publish(newEvent(EventLinesCleared).withLines(lines))
		}
	}

	switch {
	case e.active == nil:
		p := e.spawn()
		e.active = &p
		e.bus.Publish(newEvent(EventActivePieceReplaced).withPiece(e.active))
		if !e.IsPieceValid(e.active) {
			return e.endGame()
		}

	case e.CanMove(e.active, 0, 1):
		e.active.Move(0, 1)
		e.bus.Publish(newEvent(EventPieceMoved).withPiece(e.active))

	case e.IsPieceValid(e.active):
		e.lock(e.active)
		e.bus.Publish(newEvent(EventPiecePlaced).withPiece(e.active))
		e.active = nil

	default:
		return e.endGame()
	}

	return true
}

// StepFor calls Step up to n times, stopping early when play ends.
func (e *Engine) StepFor(n int) bool {
	continues := !e.gameOver
	for i := 0; i < n; i++ {
		continues = e.Step()
		if !continues {
			break
		}
	}
	return continues
}

func (e *Engine) spawn() Piece {
	kind := Kind(e.rng.Intn(KindCount))
	return NewPiece(kind, e.cfg.SpawnX, e.cfg.SpawnY)
}

func (e *Engine) lock(p *Piece) {
	for _, b := range p.Blocks {
		idx := e.cellIndex(b.X, b.Y)
		if e.occupied.Has(idx) {
			panic(fmt.Sprintf("engine: lock %s over occupied cell %s", p, b))
		}
		e.occupied.Put(idx, p.Kind)
		e.placed = append(e.placed, b)
	}
}

func (e *Engine) endGame() bool {
	e.gameOver = true
	e.bus.Publish(newEvent(EventGameEndTriggered).withPiece(e.active))
	return false
}

// --- Queries ---

// State returns the current state machine position.
func (e *Engine) State() State {
	switch {
	case e.gameOver:
		return StateGameOver
	case e.active == nil:
		return StateEmpty
	case e.CanMove(e.active, 0, 1):
		return StateFalling
	default:
		return StateLocking
	}
}

// GameOver reports whether the terminal state has been reached.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Active returns a copy of the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Placed returns a copy of the locked blocks in insertion order.
func (e *Engine) Placed() []Block {
	return append([]Block(nil), e.placed...)
}

// KindAt returns the kind of the locked block at (x, y), if there is one.
func (e *Engine) KindAt(x, y int) (Kind, bool) {
	if !e.bounds.Contains(x, y) {
		return 0, false
	}
	return e.occupied.Get(e.cellIndex(x, y))
}

// Fill locks a single block at (x, y). It is meant for setting up boards
// before play.
func (e *Engine) Fill(x, y int, kind Kind) error {
	if !e.bounds.Contains(x, y) {
		return fmt.Errorf("engine: fill (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	idx := e.cellIndex(x, y)
	if e.occupied.Has(idx) {
		return fmt.Errorf("engine: fill (%d,%d): %w", x, y, ErrCellOccupied)
	}
	e.occupied.Put(idx, kind)
	e.placed = append(e.placed, Block{X: x, Y: y})
	return nil
}

// Reset empties the board and leaves the engine ready for a new game.
// Listeners stay subscribed.
func (e *Engine) Reset() {
	e.placed = nil
	e.occupied.Clear()
	e.active = nil
	e.gameOver = false
	e.linesCleared = 0
}
