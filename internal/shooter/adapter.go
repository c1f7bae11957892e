package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/laser"
)

// LaserAdapter presents a laser.Weapon as a Strategy. Every shot wraps
// the emitted beam in a BeamProjectile.
type LaserAdapter struct {
	weapon *laser.Weapon
}

// NewLaserAdapter creates an adapter around a fresh emitter.
func NewLaserAdapter() *LaserAdapter {
	return &LaserAdapter{weapon: laser.NewWeapon()}
}

func (a *LaserAdapter) Family() Family { return FamilyLaser }

func (a *LaserAdapter) CreateProjectile(x, y int) Projectile {
	return &BeamProjectile{beam: a.weapon.FireLaser(x, y)}
}

// BeamProjectile translates a laser beam's motion, size and hit test into
// the Projectile contract. The beam itself is never modified except by Move.
type BeamProjectile struct {
	beam *laser.Beam
}

func (b *BeamProjectile) Update() {
	b.beam.Move()
}

func (b *BeamProjectile) Bounds() core.Rect {
	return core.NewRect(b.beam.SourceX(), b.beam.SourceY(), b.beam.Width(), b.beam.Height())
}

func (b *BeamProjectile) CollidesWith(r core.Rect) bool {
	return b.beam.IntersectsWith(r.X, r.Y, r.W, r.H)
}

func (b *BeamProjectile) PlayerOwned() bool { return true }
func (b *BeamProjectile) Family() Family    { return FamilyLaser }
func (b *BeamProjectile) Kind() Kind        { return KindBeam }

// Power returns the wrapped beam's power rating.
func (b *BeamProjectile) Power() int {
	return b.beam.Power()
}
