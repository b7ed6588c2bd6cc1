package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snowboard/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{runeKey('s'), core.ActionBackward, false},
		{runeKey('q'), core.ActionSpinLeft, false},
		{runeKey('e'), core.ActionSpinRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{runeKey('c'), core.ActionCarve, false},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
		}
	}
}

func TestIsRiding(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionJump, core.ActionCarve, core.ActionForward} {
		if !IsRiding(a) {
			t.Errorf("%v should be a riding action", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionBack} {
		if IsRiding(a) {
			t.Errorf("%v should not be a riding action", a)
		}
	}
}

func TestMenuKeys(t *testing.T) {
	km := NewKeyMapper()
	if km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}) != MenuActionScoreboard {
		t.Error("tab should open the scoreboard")
	}
	if km.MapKeyToMenuAction(runeKey('q')) != MenuActionQuit {
		t.Error("q should quit the menu")
	}
}

func TestHeldKeysInitialWindow(t *testing.T) {
	h := NewHeldKeys(0.5, 0.1)
	h.Press(core.ActionJump)

	dt := 1.0 / 60
	for range 29 {
		h.Advance(dt)
	}
	if !h.Held(core.ActionJump) {
		t.Fatal("first press should hold for the initial window")
	}

	for range 2 {
		h.Advance(dt)
	}
	if h.Held(core.ActionJump) {
		t.Error("hold should expire after the initial window")
	}
}

func TestHeldKeysRepeatWindow(t *testing.T) {
	h := NewHeldKeys(0.5, 0.1)
	h.Press(core.ActionLeft)
	h.Advance(0.3)
	h.Press(core.ActionLeft) // auto-repeat

	h.Advance(0.09)
	if !h.Held(core.ActionLeft) {
		t.Fatal("repeat should keep the key held")
	}
	h.Advance(0.02)
	if h.Held(core.ActionLeft) {
		t.Error("repeat window should be shorter than the initial one")
	}
}

func TestHeldKeysOppositeRelease(t *testing.T) {
	h := NewHeldKeys(0.5, 0.1)
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)
	h.Press(core.ActionRight)

	if h.Held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight) || !h.Held(core.ActionJump) {
		t.Error("right and jump should be held")
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) || frame.Has(core.ActionLeft) {
		t.Errorf("Apply produced %v", frame.Actions)
	}

	h.Clear()
	if h.Held(core.ActionRight) {
		t.Error("Clear should release everything")
	}
}

func TestHeldKeysDefaults(t *testing.T) {
	h := NewHeldKeys(0, -1)
	if h.initial != 0.5 || h.repeat != 0.1 {
		t.Errorf("defaults = %v/%v", h.initial, h.repeat)
	}
}
