package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// countdownGame ends after a fixed number of steps with a fixed score.
type countdownGame struct {
	left    int
	steps   int
	resets  int
	resized [2]int
	last    core.InputFrame
}

func (g *countdownGame) ID() string    { return "countdown" }
func (g *countdownGame) Title() string { return "Countdown" }

func (g *countdownGame) Reset(core.RuntimeConfig) {
	g.left = 3
	g.resets++
}

func (g *countdownGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	if g.left > 0 {
		g.left--
	}
	return core.StepResult{State: g.State()}
}

func (g *countdownGame) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, "countdown", core.ColorCyan)
}

func (g *countdownGame) State() core.GameState {
	return core.GameState{Score: 500, Lines: 4, Level: 1, GameOver: g.left == 0}
}

func (g *countdownGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

var _ registry.Game = (*countdownGame)(nil)

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &countdownGame{}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	assert.True(t, m.State().GameOver)

	scores, err := store.TopScores("countdown", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 4, scores[0].Lines)
	assert.Equal(t, 1, scores[0].Level)
}

func TestGameModelForwardsActions(t *testing.T) {
	game := &countdownGame{}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))

	assert.True(t, game.last.Has(core.ActionLeft))
	assert.True(t, game.last.Has(core.ActionDrop))

	m = update(t, m, TickMsg(time.Now()))
	assert.True(t, game.last.Empty(), "input is cleared after each tick")
}

func TestGameModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &countdownGame{}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 1, game.resets, "restart is ignored while playing")

	for !m.State().GameOver {
		m = update(t, m, TickMsg(time.Now()))
	}
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.State().GameOver)
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &countdownGame{}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [2]int{100, 30}, game.resized)
	assert.Equal(t, 1, game.resets)
	assert.True(t, strings.HasPrefix(stripANSI(m.View()), "countdown"))
}

func TestGameModelBackToMenu(t *testing.T) {
	game := &countdownGame{}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored mid-game")

	for !m.State().GameOver {
		m = update(t, m, TickMsg(time.Now()))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())

	m = update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

// stripANSI removes colour escape sequences for comparisons.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
