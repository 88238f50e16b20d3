package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace, false},
		{"hint", runeKey("h"), core.ActionHint, false},
		{"start", runeKey("s"), core.ActionStart, false},
		{"plus", runeKey("+"), core.ActionMore, false},
		{"equals", runeKey("="), core.ActionMore, false},
		{"minus", runeKey("-"), core.ActionLess, false},
		{"digit", runeKey("7"), core.DigitAction(7), false},
		{"zero", runeKey("0"), core.DigitAction(0), false},
		{"unbound", runeKey("x"), core.ActionNone, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("4"), &frame) {
		t.Fatal("digit should not quit")
	}
	km.MapKeyToFrame(runeKey("2"), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)

	digits := frame.Digits
	if len(digits) != 2 || digits[0] != 4 || digits[1] != 2 {
		t.Errorf("Digits = %v, expected [4 2]", digits)
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set Confirm")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("-"), MenuActionLeft},
		{runeKey("+"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("o"), MenuActionSettings},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
