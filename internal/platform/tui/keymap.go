package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

var commandHelp = map[core.Command]string{
	core.CmdMoveLeft:        "left",
	core.CmdMoveRight:       "right",
	core.CmdFire:            "fire",
	core.CmdSelectBasic:     "basic",
	core.CmdSelectDouble:    "double",
	core.CmdSelectTargeting: "targeting",
	core.CmdSelectLaser:     "laser",
	core.CmdToggleGodMode:   "god mode",
	core.CmdToggleDebug:     "debug",
	core.CmdRestart:         "restart",
	core.CmdQuit:            "quit",
}

type commandBinding struct {
	cmd     core.Command
	binding key.Binding
}

// KeyMap translates Bubble Tea key messages to simulation commands.
// It implements help.KeyMap.
type KeyMap struct {
	bindings []commandBinding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	var km KeyMap
	for _, b := range cfg.Bindings() {
		km.bindings = append(km.bindings, commandBinding{
			cmd: b.Command,
			binding: key.NewBinding(
				key.WithKeys(b.Keys...),
				key.WithHelp(displayKey(b.Keys), commandHelp[b.Command]),
			),
		})
	}
	return km
}

func displayKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

// Lookup returns the command bound to msg, or CmdNone.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Command {
	for _, b := range k.bindings {
		if key.Matches(msg, b.binding) {
			return b.cmd
		}
	}
	return core.CmdNone
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	short := make([]key.Binding, 0, 4)
	for _, b := range k.bindings {
		switch b.cmd {
		case core.CmdFire, core.CmdRestart, core.CmdQuit, core.CmdToggleDebug:
			short = append(short, b.binding)
		}
	}
	return short
}

// FullHelp returns every binding, movement and fire first, then weapons, then the rest.
func (k KeyMap) FullHelp() [][]key.Binding {
	var move, weapons, other []key.Binding
	for _, b := range k.bindings {
		switch {
		case b.cmd.WeaponID() != "":
			weapons = append(weapons, b.binding)
		case b.cmd == core.CmdMoveLeft || b.cmd == core.CmdMoveRight || b.cmd == core.CmdFire:
			move = append(move, b.binding)
		default:
			other = append(other, b.binding)
		}
	}
	return [][]key.Binding{move, weapons, other}
}
