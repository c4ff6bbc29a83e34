package tui

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestScreenRendererKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "██", core.ColorCyan)
	s.DrawTextColored(2, 0, "░░", core.ColorGray)
	s.DrawText(4, 0, "score")
	s.SetColored(0, 1, 'x', core.Color(200)) // unknown colours fall back to default

	got := stripANSI(NewScreenRenderer(nil).Render(s))
	if got != s.String() {
		t.Errorf("Render() text = %q, expected %q", got, s.String())
	}
}
