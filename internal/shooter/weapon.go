package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// Family groups projectiles for live counting, ammunition and damage.
type Family int

const (
	FamilyNone Family = iota - 1 // Swarm projectiles
	FamilyBasic
	FamilyDouble
	FamilyTargeting
	FamilyLaser

	familyCount = 4
)

// String returns the weapon id of the family.
func (f Family) String() string {
	switch f {
	case FamilyBasic:
		return "basic"
	case FamilyDouble:
		return "double"
	case FamilyTargeting:
		return "targeting"
	case FamilyLaser:
		return "laser"
	case FamilyNone:
		return "none"
	default:
		return "unknown"
	}
}

// Families lists the weapon families in HUD order.
func Families() []Family {
	return []Family{FamilyBasic, FamilyDouble, FamilyTargeting, FamilyLaser}
}

func (f Family) valid() bool {
	return f >= FamilyBasic && f < familyCount
}

// Unlimited marks a family without an ammunition budget.
const Unlimited = -1

var (
	liveCaps     = [familyCount]int{math.MaxInt, math.MaxInt, 1, 2}
	startingAmmo = [familyCount]int{Unlimited, Unlimited, 2, 30}
	hitDamage    = [familyCount]int{20, 20, 75, 40}
)

// Strategy produces projectiles at a firing point.
type Strategy interface {
	Family() Family
	// CreateProjectile returns the projectile for the engine to insert, or
	// nil when the strategy already launched its projectiles through Env.
	CreateProjectile(x, y int) Projectile
}

// Env is the engine surface a strategy may use.
type Env interface {
	// Launch inserts a player projectile and counts it as live for its family.
	Launch(p Projectile)
	// Targets returns the enemies currently in the swarm, in engine order.
	Targets() []*Enemy
}

// Basic fires one straight missile.
type Basic struct{}

func (Basic) Family() Family { return FamilyBasic }

func (Basic) CreateProjectile(x, y int) Projectile {
	return NewMissile(x, y, true, FamilyBasic)
}

// Double launches two missiles 10 units either side of the firing point.
type Double struct {
	env Env
}

func (Double) Family() Family { return FamilyDouble }

func (d Double) CreateProjectile(x, y int) Projectile {
	d.env.Launch(NewMissile(x-10, y, true, FamilyDouble))
	d.env.Launch(NewMissile(x+10, y, true, FamilyDouble))
	return nil
}

// Targeting fires a homing missile at the nearest enemy, or a straight
// missile when the swarm is empty.
type Targeting struct {
	env Env
}

func (Targeting) Family() Family { return FamilyTargeting }

func (t Targeting) CreateProjectile(x, y int) Projectile {
	if target := nearestEnemy(t.env.Targets(), x, y); target != nil {
		return NewHomingMissile(x, y, target, FamilyTargeting)
	}
	return NewMissile(x, y, true, FamilyTargeting)
}

// nearestEnemy measures to each enemy's top-left corner. The first enemy
// found wins a tie.
func nearestEnemy(enemies []*Enemy, x, y int) *Enemy {
	var nearest *Enemy
	best := math.MaxFloat64
	for _, e := range enemies {
		if d := core.Distance(x, y, e.X, e.Y); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

// Factory builds a strategy bound to an engine.
type Factory func(env Env) Strategy

var weapons = registry.New[Factory]("weapon")

func init() {
	weapons.Register(FamilyBasic.String(), "Basic missile", func(Env) Strategy { return Basic{} })
	weapons.Register(FamilyDouble.String(), "Double missile", func(env Env) Strategy { return Double{env: env} })
	weapons.Register(FamilyTargeting.String(), "Targeting missile", func(env Env) Strategy { return Targeting{env: env} })
	weapons.Register(FamilyLaser.String(), "Laser", func(Env) Strategy { return NewLaserAdapter() })
}

// NewStrategy creates the registered weapon id bound to env.
// The error wraps registry.ErrUnknown for unregistered ids.
func NewStrategy(id string, env Env) (Strategy, error) {
	f, err := weapons.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("shooter: select weapon: %w", err)
	}
	return f(env), nil
}

// Weapons lists the registered weapons, sorted by id.
func Weapons() []registry.Info {
	return weapons.List()
}
