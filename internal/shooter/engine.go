package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Scoring and swarm tuning.
const (
	KillScore        = 100
	LaserKillScore   = 200
	GodKillScore     = 100
	PlayerHitDamage  = 20
	GodHitDamage     = 1
	SwarmFireChance  = 2 // Out of 100, per tick
	SwarmMoveEvery   = 30
	MuzzleOffsetX    = 20
	MuzzleOffsetY    = -10
	swarmFireOffsetX = 15
	swarmFireOffsetY = 30
)

// Random is the source of randomness for swarm return fire.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Option configures a new Engine.
type Option func(*Engine)

// WithRandom replaces the random source. Engines using a custom source
// cannot carry its state through a snapshot.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = core.NewRNG(seed)
	}
}

// Ammo is the HUD view of one weapon family.
type Ammo struct {
	Live      int // Projectiles currently in flight
	Cap       int // Maximum simultaneous live projectiles
	Remaining int // Shots left, or Unlimited
}

// Limited reports whether the family has a finite ammunition budget.
func (a Ammo) Limited() bool {
	return a.Remaining != Unlimited
}

// Engine owns the whole simulation state. It is not safe for concurrent use;
// callers serialize Update, Fire and the other commands.
type Engine struct {
	player      Player
	enemies     []*Enemy
	projectiles []Projectile
	strategy    Strategy
	rng         Random

	score     int
	gameOver  bool
	debugMode bool
	godMode   bool

	live      [familyCount]int
	remaining [familyCount]int

	swarm SwarmState
	tick  uint64
}

// New creates an engine in the starting state: a fresh player, the full
// enemy grid and the basic weapon.
func New(opts ...Option) *Engine {
	e := &Engine{
		player:      NewPlayer(),
		enemies:     spawnGrid(),
		projectiles: make([]Projectile, 0, 32),
		strategy:    Basic{},
		remaining:   startingAmmo,
		swarm:       SwarmState{Direction: 1},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = core.NewRNG(1)
	}
	return e
}

// Update advances the simulation by one tick. It does nothing after game over.
func (e *Engine) Update() {
	if e.gameOver {
		return
	}
	e.tick++

	e.advanceProjectiles()
	e.resolveCollisions()
	e.updateSpeeds()
	e.moveSwarm()
	e.swarmFire()

	if len(e.enemies) == 0 {
		e.gameOver = true
	}
}

// advanceProjectiles moves everything in flight and drops what left the arena.
func (e *Engine) advanceProjectiles() {
	kept := e.projectiles[:0]
	for _, p := range e.projectiles {
		p.Update()
		y := p.Bounds().Y
		if y < 0 || (!p.PlayerOwned() && y > ArenaHeight) {
			e.release(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(e.projectiles[len(kept):])
	e.projectiles = kept
}

// release decrements the live count of the projectile's own family.
func (e *Engine) release(p Projectile) {
	if f := p.Family(); f.valid() {
		e.live[f]--
	}
}

// Fire shoots with the active weapon from (x, y). It returns false when the
// shot is rejected: after game over, at the family's live cap, or with no
// ammunition left.
func (e *Engine) Fire(x, y int) bool {
	if e.gameOver || !e.canFire() {
		return false
	}

	f := e.strategy.Family()
	if p := e.strategy.CreateProjectile(x, y); p != nil {
		e.projectiles = append(e.projectiles, p)
		if pf := p.Family(); pf.valid() {
			e.live[pf]++
		}
	}
	if e.remaining[f] != Unlimited {
		e.remaining[f]--
	}
	return true
}

// FirePlayer fires from the player's muzzle.
func (e *Engine) FirePlayer() bool {
	return e.Fire(e.player.X+MuzzleOffsetX, e.player.Y+MuzzleOffsetY)
}

func (e *Engine) canFire() bool {
	f := e.strategy.Family()
	if !f.valid() || e.live[f] >= liveCaps[f] {
		return false
	}
	return e.remaining[f] == Unlimited || e.remaining[f] > 0
}

// Launch inserts a projectile fired by a strategy and counts it as live.
// Ignored after game over.
func (e *Engine) Launch(p Projectile) {
	if e.gameOver || p == nil {
		return
	}
	e.projectiles = append(e.projectiles, p)
	if f := p.Family(); f.valid() {
		e.live[f]++
	}
}

// Targets returns the live enemy set for strategies. Callers must not modify it.
func (e *Engine) Targets() []*Enemy {
	return e.enemies
}

// SetStrategy replaces the active weapon. Projectiles already in flight
// keep their family. A nil strategy is ignored.
func (e *Engine) SetStrategy(s Strategy) {
	if s == nil {
		return
	}
	e.strategy = s
}

// SelectWeapon switches to the registered weapon id.
func (e *Engine) SelectWeapon(id string) error {
	s, err := NewStrategy(id, e)
	if err != nil {
		return err
	}
	e.SetStrategy(s)
	return nil
}

func (e *Engine) MovePlayerLeft()  { e.player.MoveLeft() }
func (e *Engine) MovePlayerRight() { e.player.MoveRight() }
func (e *Engine) ToggleGodMode()   { e.godMode = !e.godMode }
func (e *Engine) ToggleDebugMode() { e.debugMode = !e.debugMode }

// Player returns a copy of the player.
func (e *Engine) Player() Player {
	return e.player
}

// Enemies returns copies of the enemies in engine order.
func (e *Engine) Enemies() []Enemy {
	out := make([]Enemy, len(e.enemies))
	for i, en := range e.enemies {
		out[i] = *en
	}
	return out
}

// Projectiles returns views of the projectiles in insertion order.
func (e *Engine) Projectiles() []ProjectileView {
	out := make([]ProjectileView, len(e.projectiles))
	for i, p := range e.projectiles {
		out[i] = viewOf(p)
	}
	return out
}

func (e *Engine) Score() int        { return e.score }
func (e *Engine) GameOver() bool    { return e.gameOver }
func (e *Engine) DebugMode() bool   { return e.debugMode }
func (e *Engine) GodMode() bool     { return e.godMode }
func (e *Engine) Swarm() SwarmState { return e.swarm }
func (e *Engine) Tick() uint64      { return e.tick }

// ActiveFamily returns the family of the active weapon.
func (e *Engine) ActiveFamily() Family {
	return e.strategy.Family()
}

// Ammo returns live and remaining counts for a family.
func (e *Engine) Ammo(f Family) Ammo {
	if !f.valid() {
		return Ammo{}
	}
	return Ammo{Live: e.live[f], Cap: liveCaps[f], Remaining: e.remaining[f]}
}
