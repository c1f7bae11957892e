package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

const (
	MissileWidth       = 10
	MissileHeight      = 20
	PlayerMissileSpeed = -10
	SwarmMissileSpeed  = 5
)

// Kind identifies the concrete projectile variant.
type Kind int

const (
	KindMissile Kind = iota
	KindHoming
	KindBeam
)

func (k Kind) String() string {
	switch k {
	case KindMissile:
		return "missile"
	case KindHoming:
		return "homing"
	case KindBeam:
		return "beam"
	default:
		return "unknown"
	}
}

// Projectile is anything in flight that the engine advances and collides.
type Projectile interface {
	// Update advances the projectile one tick.
	Update()
	// Bounds returns the current bounding box.
	Bounds() core.Rect
	// CollidesWith tests the projectile against a box with strict overlap.
	CollidesWith(r core.Rect) bool
	// PlayerOwned is true for the player's shots, false for the swarm's.
	PlayerOwned() bool
	// Family is the weapon family whose live count this projectile holds.
	// Swarm projectiles report FamilyNone.
	Family() Family
	Kind() Kind
}

// Missile flies straight at constant vertical speed.
type Missile struct {
	X      int
	Y      int
	player bool
	speed  int
	family Family
}

// NewMissile creates a straight missile. Player missiles fly up, swarm
// missiles fly down.
func NewMissile(x, y int, playerOwned bool, family Family) *Missile {
	speed := SwarmMissileSpeed
	if playerOwned {
		speed = PlayerMissileSpeed
	}
	return &Missile{X: x, Y: y, player: playerOwned, speed: speed, family: family}
}

func (m *Missile) Update() {
	m.Y += m.speed
}

func (m *Missile) Bounds() core.Rect {
	return core.NewRect(m.X, m.Y, MissileWidth, MissileHeight)
}

func (m *Missile) CollidesWith(r core.Rect) bool {
	return m.Bounds().Intersects(r)
}

func (m *Missile) PlayerOwned() bool { return m.player }
func (m *Missile) Family() Family    { return m.family }
func (m *Missile) Kind() Kind        { return KindMissile }

// ProjectileView is a read-only copy of a projectile for renderers.
type ProjectileView struct {
	X, Y, W, H  int
	PlayerOwned bool
	Family      Family
	Kind        Kind
}

func viewOf(p Projectile) ProjectileView {
	b := p.Bounds()
	return ProjectileView{
		X:           b.X,
		Y:           b.Y,
		W:           b.W,
		H:           b.H,
		PlayerOwned: p.PlayerOwned(),
		Family:      p.Family(),
		Kind:        p.Kind(),
	}
}
