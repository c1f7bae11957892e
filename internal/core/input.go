package core

// Command is a discrete simulation command produced by the input layer.
// Each command maps to exactly one engine operation.
type Command int

const (
	CmdNone            Command = iota
	CmdMoveLeft                // Shift the player ship left
	CmdMoveRight               // Shift the player ship right
	CmdFire                    // Fire with the active weapon
	CmdSelectBasic             // Switch to the basic weapon
	CmdSelectDouble            // Switch to the double weapon
	CmdSelectTargeting         // Switch to the targeting weapon
	CmdSelectLaser             // Switch to the laser weapon
	CmdToggleGodMode           // Flip god mode
	CmdToggleDebug             // Flip the debug overlay
	CmdRestart                 // Discard the engine and start over
	CmdQuit                    // Leave the program
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdFire:
		return "fire"
	case CmdSelectBasic:
		return "select-basic"
	case CmdSelectDouble:
		return "select-double"
	case CmdSelectTargeting:
		return "select-targeting"
	case CmdSelectLaser:
		return "select-laser"
	case CmdToggleGodMode:
		return "toggle-god-mode"
	case CmdToggleDebug:
		return "toggle-debug"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// WeaponID returns the weapon id a select command refers to, or "" for
// commands that do not select a weapon.
func (c Command) WeaponID() string {
	switch c {
	case CmdSelectBasic:
		return "basic"
	case CmdSelectDouble:
		return "double"
	case CmdSelectTargeting:
		return "targeting"
	case CmdSelectLaser:
		return "laser"
	default:
		return ""
	}
}

// CommandFrame collects the commands received between two ticks, in arrival order.
// Repeated commands are kept: two fire presses within one tick are two fire attempts.
type CommandFrame struct {
	Commands []Command
}

// NewCommandFrame creates an empty command frame.
func NewCommandFrame() CommandFrame {
	return CommandFrame{Commands: make([]Command, 0, 4)}
}

// Push appends a command. CmdNone is ignored.
func (f *CommandFrame) Push(c Command) {
	if c == CmdNone {
		return
	}
	f.Commands = append(f.Commands, c)
}

// Len returns the number of queued commands.
func (f CommandFrame) Len() int {
	return len(f.Commands)
}

// Clear resets the frame for the next tick, keeping capacity.
func (f *CommandFrame) Clear() {
	f.Commands = f.Commands[:0]
}
