package engine

import "fmt"

// Block is a single occupied cell.
type Block struct {
	X, Y int
}

// Pos returns the block's coordinates.
func (b Block) Pos() (x, y int) {
	return b.X, b.Y
}

// SetPos moves the block to an absolute position.
func (b *Block) SetPos(x, y int) {
	b.X = x
	b.Y = y
}

// Move shifts the block by (dx, dy).
func (b *Block) Move(dx, dy int) {
	b.X += dx
	b.Y += dy
}

func (b Block) String() string {
	return fmt.Sprintf("(%d,%d)", b.X, b.Y)
}
