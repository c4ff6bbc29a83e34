package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded TetrisConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("tetris"), &embedded))

	assert.Equal(t, DefaultTetrisConfig(), embedded)
	assert.Nil(t, GetDefaultYAML("snake"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		valid  bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }, false},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 0 }, false},
		{"spawn right of board", func(c *TetrisConfig) { c.Board.SpawnX = 10 }, false},
		{"spawn above board", func(c *TetrisConfig) { c.Board.SpawnY = -1 }, false},
		{"zero gravity", func(c *TetrisConfig) { c.Gameplay.FallEveryTicks = 0 }, false},
		{"unknown piece colour", func(c *TetrisConfig) { c.Colors["Q"] = core.ColorRed }, false},
		{"unknown progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "score" }, false},
		{"no colours", func(c *TetrisConfig) { c.Colors = nil }, true},
		{"small but valid", func(c *TetrisConfig) {
			c.Board = TetrisBoard{Width: 4, Height: 6, SpawnX: 1, SpawnY: 0}
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  width: 12\n  height: 22\n  spawn_x: 5\ngameplay:\n  fall_every_ticks: 20\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 22, cfg.Board.Height)
	assert.Equal(t, 5, cfg.Board.SpawnX)
	assert.Equal(t, 20, cfg.Gameplay.FallEveryTicks)
	// Unset fields keep their defaults
	assert.Equal(t, []int{0, 100, 300, 500, 800}, cfg.Gameplay.LinePoints)
}

func TestLoadTetrisColorOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("colors:\n  I: bright-blue\n  T: grey\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, core.ColorBrightBlue, cfg.Colors["I"])
	assert.Equal(t, core.ColorGray, cfg.Colors["T"])
	assert.Equal(t, core.ColorOrange, cfg.Colors["L"], "unlisted pieces keep their colour")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colors:\n  I: plaid\n"), 0o644))
	_, err = LoadTetris(bad)
	assert.Error(t, err)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [oops"), 0o644))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o644))
	_, err = LoadTetris(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadTetrisFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisLocalConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	data := []byte("gameplay:\n  fall_every_ticks: 12\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "tetris.yaml"), data, 0o644))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Gameplay.FallEveryTicks)
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "")
	assert.Equal(t, DefaultTetrisConfig(), cfg, "empty preset is a no-op")

	ApplyTetrisPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 20, cfg.Gameplay.FallEveryTicks)

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 30, cfg.Gameplay.FallEveryTicks)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalid)
}
