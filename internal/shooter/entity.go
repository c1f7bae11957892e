// Package shooter implements the space shooter simulation: a player ship,
// a descending enemy swarm and projectiles fired through interchangeable
// weapon strategies. The engine advances one fixed tick per Update call and
// contains no rendering, input handling or timing.
package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Arena and entity constants. One tick is one unit of time for every speed.
const (
	ArenaWidth  = 600
	ArenaHeight = 700

	PlayerStartX = 300
	PlayerStartY = 600
	PlayerWidth  = 40
	PlayerHeight = 40
	PlayerStep   = 10
	MaxHealth    = 100

	EnemyWidth     = 30
	EnemyHeight    = 30
	EnemyBaseSpeed = 5
	EnemyRows      = 3
	EnemyCols      = 8
)

// Player is the ship at the bottom of the arena.
type Player struct {
	X      int
	Y      int
	Health int
}

// NewPlayer creates a full-health player at the start position.
func NewPlayer() Player {
	return Player{X: PlayerStartX, Y: PlayerStartY, Health: MaxHealth}
}

// MoveLeft shifts the ship one step left, stopping at the arena edge.
func (p *Player) MoveLeft() {
	p.X = core.Clamp(p.X-PlayerStep, 0, ArenaWidth-PlayerWidth)
}

// MoveRight shifts the ship one step right, stopping at the arena edge.
func (p *Player) MoveRight() {
	p.X = core.Clamp(p.X+PlayerStep, 0, ArenaWidth-PlayerWidth)
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(d int) {
	p.Health = max(0, p.Health-d)
}

// IsDestroyed reports whether health is exhausted.
func (p *Player) IsDestroyed() bool {
	return p.Health <= 0
}

// Bounds returns the ship's bounding box.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// Enemy is one member of the swarm.
type Enemy struct {
	X      int
	Y      int
	Health int
	Speed  int // Recomputed every tick by UpdateSpeed

	removed bool
}

// NewEnemy creates a full-health enemy at base speed.
func NewEnemy(x, y int) *Enemy {
	return &Enemy{X: x, Y: y, Health: MaxHealth, Speed: EnemyBaseSpeed}
}

// MoveLeft and MoveRight shift the enemy by its speed within the arena.
func (e *Enemy) MoveLeft() {
	e.X = core.Clamp(e.X-e.Speed, 0, ArenaWidth-EnemyWidth)
}

func (e *Enemy) MoveRight() {
	e.X = core.Clamp(e.X+e.Speed, 0, ArenaWidth-EnemyWidth)
}

// MoveDown drops the enemy by its current speed. Vertical motion is unclamped.
func (e *Enemy) MoveDown() {
	e.Y += e.Speed
}

// UpdateSpeed recomputes the horizontal speed from the swarm size and the
// number of drops so far. Fewer enemies and more drops mean a faster swarm.
func (e *Enemy) UpdateSpeed(total, drops int) {
	speed := EnemyBaseSpeed + drops
	if total < 6 {
		speed += 6 * (6 - total)
	}
	e.Speed = speed + 20/(total+1)
}

// TakeDamage lowers health, never below zero.
func (e *Enemy) TakeDamage(d int) {
	e.Health = max(0, e.Health-d)
}

// IsDestroyed reports whether health is exhausted.
func (e *Enemy) IsDestroyed() bool {
	return e.Health <= 0
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, EnemyWidth, EnemyHeight)
}

// spawnGrid builds the initial formation, row by row.
func spawnGrid() []*Enemy {
	enemies := make([]*Enemy, 0, EnemyRows*EnemyCols)
	for row := 0; row < EnemyRows; row++ {
		for col := 0; col < EnemyCols; col++ {
			enemies = append(enemies, NewEnemy(50+col*70, 150+row*60))
		}
	}
	return enemies
}
