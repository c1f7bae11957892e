package shooter

import "math"

// SwarmState is the shared choreography of the enemy formation.
type SwarmState struct {
	Direction   int // +1 right, -1 left
	MoveCounter int // Ticks since the last swarm move
	Drops       int // Rows dropped so far
	Leftmost    int // Extents measured at the last move
	Rightmost   int
}

func (e *Engine) updateSpeeds() {
	total := len(e.enemies)
	for _, en := range e.enemies {
		en.UpdateSpeed(total, e.swarm.Drops)
	}
}

// moveSwarm moves the formation once every SwarmMoveEvery ticks. Reaching
// an edge flips direction and drops the swarm before the horizontal step.
func (e *Engine) moveSwarm() {
	s := &e.swarm
	s.MoveCounter++
	if s.MoveCounter < SwarmMoveEvery {
		return
	}
	s.MoveCounter = 0

	if len(e.enemies) == 0 {
		s.Leftmost, s.Rightmost = 0, 0
		return
	}

	s.Leftmost, s.Rightmost = math.MaxInt, math.MinInt
	for _, en := range e.enemies {
		s.Leftmost = min(s.Leftmost, en.X)
		s.Rightmost = max(s.Rightmost, en.X+EnemyWidth)
	}

	if (s.Direction > 0 && s.Rightmost >= ArenaWidth) || (s.Direction < 0 && s.Leftmost <= 0) {
		s.Direction = -s.Direction
		for _, en := range e.enemies {
			en.MoveDown()
		}
		s.Drops++
		e.updateSpeeds()
	}

	for _, en := range e.enemies {
		if s.Direction > 0 {
			en.MoveRight()
		} else {
			en.MoveLeft()
		}
	}
}

// swarmFire occasionally has a random enemy shoot straight down.
func (e *Engine) swarmFire() {
	if len(e.enemies) == 0 || e.rng.Intn(100) >= SwarmFireChance {
		return
	}
	en := e.enemies[e.rng.Intn(len(e.enemies))]
	e.projectiles = append(e.projectiles,
		NewMissile(en.X+swarmFireOffsetX, en.Y+swarmFireOffsetY, false, FamilyNone))
}
