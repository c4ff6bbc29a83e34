// Package engine implements the falling-block rules of Tetris: piece
// geometry, board collision, the step state machine and line detection.
// It has no UI or platform dependencies and is fully deterministic given
// its RandomSource.
package engine

// Board dimensions and the spawn origin used by the default configuration.
const (
	BoardWidth  = 10
	BoardHeight = 20

	SpawnX = 4
	SpawnY = 0
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

// Catalog order. Random sampling picks an index into this list.
const (
	KindI Kind = iota
	KindL
	KindR // mirror of L
	KindZ
	KindS // mirror of Z
	KindX // square
	KindT
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindR:
		return "R"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindX:
		return "X"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Offset is a cell position in a shape's local coordinates.
type Offset struct {
	X, Y int
}

// Shapes holds the templates for every Kind. The first offset of each
// template is the rotation pivot, so the order is significant.
var Shapes = [KindCount][4]Offset{
	KindI: {{1, 1}, {1, 0}, {1, 2}, {1, 3}},
	KindL: {{1, 1}, {1, 0}, {1, 2}, {2, 2}},
	KindR: {{1, 0}, {0, 0}, {0, 1}, {0, 2}},
	KindZ: {{1, 0}, {0, 0}, {1, 1}, {2, 1}},
	KindS: {{0, 1}, {0, 0}, {1, 1}, {1, 2}},
	KindX: {{0, 1}, {0, 0}, {1, 0}, {1, 1}},
	KindT: {{1, 1}, {1, 0}, {1, 2}, {0, 1}},
}

// Kinds returns all shapes in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// NewPiece builds a piece of the given kind with its template translated
// to (originX, originY).
func NewPiece(kind Kind, originX, originY int) Piece {
	p := Piece{Kind: kind}
	for i, off := range Shapes[kind] {
		p.Blocks[i] = Block{X: off.X + originX, Y: off.Y + originY}
	}
	return p
}
