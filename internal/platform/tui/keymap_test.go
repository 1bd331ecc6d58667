package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-maze/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"q dashes", runeKey('q'), core.ActionSkill, false},
		{"e dashes", runeKey('e'), core.ActionSkill, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsLastDirection(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('e'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)

	if frame.Direction() != core.ActionLeft {
		t.Errorf("Direction() = %v, want Left", frame.Direction())
	}
	if !frame.Has(core.ActionSkill) {
		t.Error("Skill should be set")
	}
	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key should not quit")
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("FullHelp lists %d bindings, want 9", total)
	}
}
