package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "with a blurb" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })
	Register("zz_described", func() Game {
		return &describedGame{stubGame{id: "zz_described", title: "Described"}}
	})

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("zz_missing"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub", g.Title())

	_, err = Create("zz_missing")
	assert.Error(t, err)

	info, ok := Info("zz_described")
	require.True(t, ok)
	assert.Equal(t, "with a blurb", info.Description)

	info, ok = Info("zz_stub")
	require.True(t, ok)
	assert.Empty(t, info.Description)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	})
}

func TestListSortedByID(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
