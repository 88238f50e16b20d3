package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Keys are shared by every game; each game reads the actions it needs.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var gameKeys = map[string]core.Action{
	"up":        core.ActionUp,
	"down":      core.ActionDown,
	"left":      core.ActionLeft,
	"right":     core.ActionRight,
	" ":         core.ActionSelect,
	"enter":     core.ActionConfirm,
	"b":         core.ActionBack,
	"esc":       core.ActionBack,
	"p":         core.ActionPause,
	"r":         core.ActionRestart,
	"s":         core.ActionStart,
	"h":         core.ActionHint,
	"c":         core.ActionClear,
	"n":         core.ActionNew,
	"v":         core.ActionRepeat,
	"+":         core.ActionMore,
	"=":         core.ActionMore,
	"-":         core.ActionLess,
	"_":         core.ActionLess,
	"backspace": core.ActionBackspace,
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return core.DigitAction(int(key[0] - '0')), false
	}
	if a, ok := gameKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionSettings
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "left", "h", "-":
		return MenuActionLeft
	case "right", "l", "+", "=":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "o":
		return MenuActionSettings
	}

	return MenuActionNone
}
