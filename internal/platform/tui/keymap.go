package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snowboard/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBackward, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "q":
		return core.ActionSpinLeft, false
	case "e":
		return core.ActionSpinRight, false
	case " ":
		return core.ActionJump, false
	case "c":
		return core.ActionCarve, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsRiding reports whether a is a riding action that stays held between
// presses rather than firing once.
func IsRiding(a core.Action) bool {
	return a >= core.ActionForward && a <= core.ActionCarve
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// opposite pairs release each other: a terminal only auto-repeats the most
// recently pressed key.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:      core.ActionRight,
	core.ActionRight:     core.ActionLeft,
	core.ActionForward:   core.ActionBackward,
	core.ActionBackward:  core.ActionForward,
	core.ActionSpinLeft:  core.ActionSpinRight,
	core.ActionSpinRight: core.ActionSpinLeft,
}

// HeldKeys emulates key hold state on terminals that deliver presses only.
// A first press holds an action for the initial window; a press that
// arrives while it is still held is an auto-repeat and extends it by the
// shorter repeat window. Time advances in simulation ticks.
type HeldKeys struct {
	initial float64
	repeat  float64
	held    map[core.Action]float64 // seconds left
}

// NewHeldKeys creates a hold tracker. Non-positive windows fall back to
// 0.5s initial and 0.1s repeat.
func NewHeldKeys(initial, repeat float64) *HeldKeys {
	if initial <= 0 {
		initial = 0.5
	}
	if repeat <= 0 {
		repeat = 0.1
	}
	return &HeldKeys{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]float64),
	}
}

// Press registers a key press for a riding action.
func (h *HeldKeys) Press(a core.Action) {
	if other, ok := opposite[a]; ok {
		delete(h.held, other)
	}
	if _, ok := h.held[a]; ok {
		h.held[a] = h.repeat
		return
	}
	h.held[a] = h.initial
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Apply sets every held action on the frame.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a := range h.held {
		frame.Set(a)
	}
}

// Advance ages holds by dt seconds and releases the expired ones.
func (h *HeldKeys) Advance(dt float64) {
	for a, left := range h.held {
		left -= dt
		if left <= 0 {
			delete(h.held, a)
			continue
		}
		h.held[a] = left
	}
}

// Clear releases everything.
func (h *HeldKeys) Clear() {
	clear(h.held)
}
