package engine

import (
	"fmt"
	"strings"
)

// Piece is one tetromino instance: four blocks that move and rotate
// together. Blocks[0] is the pivot.
//
// Blocks is an array, so assigning or copying a Piece never shares block
// storage with the original. None of the transforms check the board;
// validity is the Engine's job.
type Piece struct {
	Kind   Kind
	Blocks [4]Block
}

// Copy returns an independent copy of the piece.
func (p Piece) Copy() Piece {
	return p
}

// Pivot returns the rotation center.
func (p Piece) Pivot() Block {
	return p.Blocks[0]
}

// Move translates every block by (dx, dy) in place.
func (p *Piece) Move(dx, dy int) *Piece {
	for i := range p.Blocks {
		p.Blocks[i].Move(dx, dy)
	}
	return p
}

// Rotate turns the piece 90 degrees about its pivot in place.
// Clockwise maps a pivot-relative offset (ox, oy) to (-oy, ox);
// counter-clockwise maps it to (oy, -ox).
func (p *Piece) Rotate(counterClockwise bool) *Piece {
	px, py := p.Blocks[0].Pos()
	for i := range p.Blocks {
		ox := p.Blocks[i].X - px
		oy := p.Blocks[i].Y - py
		if counterClockwise {
			p.Blocks[i].SetPos(px+oy, py-ox)
		} else {
			p.Blocks[i].SetPos(px-oy, py+ox)
		}
	}
	return p
}

// Moved returns a translated copy, leaving p untouched.
func (p Piece) Moved(dx, dy int) Piece {
	return *p.Move(dx, dy)
}

// Rotated returns a rotated copy, leaving p untouched.
func (p Piece) Rotated(counterClockwise bool) Piece {
	return *p.Rotate(counterClockwise)
}

// Contains reports whether any block of the piece sits at (x, y).
func (p Piece) Contains(x, y int) bool {
	for _, b := range p.Blocks {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}

func (p Piece) String() string {
	parts := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		parts[i] = b.String()
	}
	return fmt.Sprintf("%s[%s]", p.Kind, strings.Join(parts, " "))
}
