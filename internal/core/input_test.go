package core

import "testing"

func TestCommandFrameOrderAndRepeats(t *testing.T) {
	f := NewCommandFrame()
	f.Push(CmdFire)
	f.Push(CmdNone)
	f.Push(CmdMoveLeft)
	f.Push(CmdFire)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", f.Len())
	}
	want := []Command{CmdFire, CmdMoveLeft, CmdFire}
	for i, c := range want {
		if f.Commands[i] != c {
			t.Errorf("Commands[%d] = %v, expected %v", i, f.Commands[i], c)
		}
	}

	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear() should empty the frame")
	}
}

func TestCommandWeaponID(t *testing.T) {
	tests := map[Command]string{
		CmdSelectBasic:     "basic",
		CmdSelectDouble:    "double",
		CmdSelectTargeting: "targeting",
		CmdSelectLaser:     "laser",
		CmdFire:            "",
	}
	for cmd, want := range tests {
		if got := cmd.WeaponID(); got != want {
			t.Errorf("%v.WeaponID() = %q, expected %q", cmd, got, want)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CmdToggleGodMode.String() != "toggle-god-mode" {
		t.Errorf("unexpected name %q", CmdToggleGodMode.String())
	}
	if Command(99).String() != "unknown" {
		t.Error("out-of-range command should be unknown")
	}
}
