package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap binds keys to game actions. Bindings are checked in order, so
// a key listed twice maps to the first action.
type GameKeyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	Rotate    key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Pause     key.Binding
	Restart   key.Binding
}

// DefaultGameKeyMap supports arrows, vim keys and WASD.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Left:      key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→", "right")),
		SoftDrop:  key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "soft drop")),
		Rotate:    key.NewBinding(key.WithKeys("up", "w", "x", "k"), key.WithHelp("↑/x", "rotate")),
		RotateCCW: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate back")),
		HardDrop:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop")),
		Confirm:   key.NewBinding(key.WithKeys("enter")),
		Back:      key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}

func (k GameKeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.SoftDrop, core.ActionDown},
		{k.Rotate, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.HardDrop, core.ActionDrop},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game GameKeyMap
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: DefaultGameKeyMap()}
}

// MapKey returns the action for msg (ActionNone if unbound) and whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game.actions() {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame and reports whether
// msg was a quit request. Quit is never put in the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is what a key does on the mode menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuBindings = []struct {
	binding key.Binding
	action  MenuAction
}{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
	{key.NewBinding(key.WithKeys("up", "w", "k")), MenuActionUp},
	{key.NewBinding(key.WithKeys("down", "s", "j")), MenuActionDown},
	{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
	{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
	{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
}

func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range menuBindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
