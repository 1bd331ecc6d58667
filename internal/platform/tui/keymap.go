package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-maze/internal/core"
)

// GameKeyMap holds the key bindings used while a game is running.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Dash       key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Dash, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Dash, k.Pause, k.Confirm},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Dash: key.NewBinding(
			key.WithKeys("q", "e", " ", "space"),
			key.WithHelp("q/e/space", "dash"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings behind the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Dash):
		return core.ActionSkill, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
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
