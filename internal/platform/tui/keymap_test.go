package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapLookup(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CmdMoveLeft},
		{"d", runeKey('d'), core.CmdMoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.CmdFire},
		{"x", runeKey('x'), core.CmdSelectBasic},
		{"2", runeKey('2'), core.CmdSelectDouble},
		{"v", runeKey('v'), core.CmdSelectTargeting},
		{"b", runeKey('b'), core.CmdSelectLaser},
		{"g", runeKey('g'), core.CmdToggleGodMode},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CmdToggleDebug},
		{"r", runeKey('r'), core.CmdRestart},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CmdQuit},
		{"unbound", runeKey('z'), core.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.msg); got != tt.want {
				t.Errorf("Lookup(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	keys := config.Default().Keys
	keys.Fire = []string{"f"}
	km := NewKeyMap(keys)

	if km.Lookup(runeKey('f')) != core.CmdFire {
		t.Error("custom fire key not bound")
	}
	if km.Lookup(tea.KeyMsg{Type: tea.KeySpace}) != core.CmdNone {
		t.Error("replaced default key should be unbound")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp has %d bindings, expected 4", len(km.ShortHelp()))
	}

	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 11 {
		t.Errorf("FullHelp has %d bindings, expected 11", total)
	}
	if got := km.FullHelp()[1]; len(got) != 4 {
		t.Errorf("weapon group has %d bindings, expected 4", len(got))
	}
}
