package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth  = 2  // terminal columns per board cell
	panelWidth = 20 // side panel with score and controls
	panelGap   = 2
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

var kindColors = [engine.KindCount]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindL: core.ColorOrange,
	engine.KindR: core.ColorBlue,
	engine.KindZ: core.ColorRed,
	engine.KindS: core.ColorGreen,
	engine.KindX: core.ColorYellow,
	engine.KindT: core.ColorMagenta,
}

var controls = []string{
	"←/→  move",
	"↓    soft drop",
	"↑ x  rotate",
	"z    rotate back",
	"spc  hard drop",
	"p    pause",
	"q    quit",
}

// colorOf returns the configured colour for a piece kind.
func (g *Game) colorOf(k engine.Kind) core.Color {
	if c, ok := g.cfg.Colors[k.String()]; ok {
		return c
	}
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return core.ColorWhite
}

// wellSize returns the bordered well size in terminal cells.
func (g *Game) wellSize() (int, int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2
}

func (g *Game) minScreenSize() (int, int) {
	w, h := g.wellSize()
	return w + panelGap + panelWidth, max(h, len(controls)+10)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW, wellH := g.wellSize()
	totalW, _ := g.minScreenSize()
	area := core.NewRect(0, 0, g.screenW, g.screenH).Center(totalW, wellH)

	well := core.NewRect(area.X, area.Y, wellW, wellH)
	dst.DrawBox(well, core.ColorGray)

	inner := well.Inset(1)
	g.renderBoard(dst, inner.X, inner.Y)
	g.renderPanel(dst, well.Right()+panelGap, well.Y)
	g.renderOverlays(dst, well)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderBoard draws empty cells, formed rows, placed blocks, the ghost and
// the active piece, in that order.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	b := g.eng.Bounds()
	cell := func(x, y int, r rune, c core.Color) {
		sx := ox + (x-b.MinX)*cellWidth
		sy := oy + (y - b.MinY)
		for i := 0; i < cellWidth; i++ {
			dst.SetColored(sx+i, sy, r, c)
		}
	}

	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			dst.SetColored(ox+(x-b.MinX)*cellWidth, oy+(y-b.MinY), emptyChar, core.ColorGray)
		}
	}

	formed := make(map[int]bool)
	for _, row := range g.eng.FindFormedLines() {
		formed[row] = true
	}

	for _, blk := range g.eng.Placed() {
		kind, _ := g.eng.KindAt(blk.X, blk.Y)
		color := g.colorOf(kind)
		if formed[blk.Y] {
			color = core.ColorBrightWhite
		}
		cell(blk.X, blk.Y, blockChar, color)
	}

	active, ok := g.eng.Active()
	if !ok {
		return
	}
	if !g.eng.GameOver() {
		ghost := g.ghostOf(active)
		for _, blk := range ghost.Blocks {
			cell(blk.X, blk.Y, ghostChar, core.ColorGray)
		}
	}
	for _, blk := range active.Blocks {
		cell(blk.X, blk.Y, blockChar, g.colorOf(active.Kind))
	}
}

// ghostOf returns where p would land after a hard drop.
func (g *Game) ghostOf(p engine.Piece) engine.Piece {
	for g.eng.CanMove(&p, 0, 1) {
		p.Move(0, 1)
	}
	return p
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "TETRIS", core.ColorBrightCyan)
	dst.DrawTextColored(x, y+1, string(g.mode), core.ColorGray)

	linesLabel := "Lines"
	if g.mode == ModeClassic {
		linesLabel = "Formed"
	}
	stats := []struct {
		label string
		value int
	}{
		{"Score", g.score},
		{linesLabel, g.lines},
		{"Level", g.level},
	}
	for i, s := range stats {
		dst.DrawText(x, y+3+i, fmt.Sprintf("%-7s%6d", s.label, s.value))
	}

	if active, ok := g.eng.Active(); ok {
		dst.DrawText(x, y+7, "Piece")
		dst.DrawTextColored(x+7, y+7, active.Kind.String(), g.colorOf(active.Kind))
	}

	for i, line := range controls {
		dst.DrawTextColored(x, y+9+i, line, core.ColorGray)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	var lines []string
	color := core.ColorBrightYellow

	switch {
	case g.eng.GameOver():
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", g.score), "R restart", "Q quit"}
		color = core.ColorBrightRed
	case g.paused:
		lines = []string{"PAUSED", "P resume"}
	default:
		return
	}

	cy := well.Y + well.H/2 - len(lines)/2
	for i, text := range lines {
		runes := []rune(text)
		tx := well.X + (well.W-len(runes))/2
		dst.DrawTextColored(tx, cy+i, text, color)
	}
}
