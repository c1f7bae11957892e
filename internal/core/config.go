package core

import "time"

// RuntimeConfig contains what the driver passes to a new engine.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters (renderer only)
	ScreenH      int           // Screen height in characters (renderer only)
	TickInterval time.Duration // Fixed cadence of Update calls
	Seed         int64         // RNG seed for swarm fire; 0 means pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with the original 20ms cadence.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 20 * time.Millisecond,
		Seed:         0,
	}
}

// TickRate returns the number of ticks per second implied by TickInterval.
func (c RuntimeConfig) TickRate() int {
	if c.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / c.TickInterval)
}
