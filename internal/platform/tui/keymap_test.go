package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('p'), &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionPause) {
		t.Errorf("frame missing actions: %v", frame)
	}
	if n := len(frame.Actions()); n != 2 {
		t.Errorf("frame has %d actions, want 2", n)
	}
}

func TestMenuKeyMap(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want key.Binding
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j", runeKey('j'), km.Down},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Select},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, km.Scoreboard},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, km.Quit},
		{"q", runeKey('q'), km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.want) {
				t.Errorf("%q does not match %v", tt.msg.String(), tt.want.Keys())
			}
		})
	}

	if key.Matches(runeKey('x'), km.Up, km.Down, km.Select, km.Scoreboard, km.Quit) {
		t.Error("x should not be bound in the menu")
	}
}
