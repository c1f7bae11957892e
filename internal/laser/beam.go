// Package laser is a self-contained beam emitter with its own motion and
// hit model. It knows nothing about projectiles, enemies or the engine;
// the shooter package adapts it.
package laser

const (
	BeamWidth  = 5
	BeamHeight = 30
	BeamSpeed  = 15 // Upward, per tick
	BeamPower  = 100
)

// Beam is one fired laser pulse, positioned by its source corner.
type Beam struct {
	sourceX int
	sourceY int
}

// Move advances the beam one tick upward.
func (b *Beam) Move() {
	b.sourceY -= BeamSpeed
}

func (b *Beam) SourceX() int { return b.sourceX }
func (b *Beam) SourceY() int { return b.sourceY }
func (b *Beam) Width() int   { return BeamWidth }
func (b *Beam) Height() int  { return BeamHeight }
func (b *Beam) Power() int   { return BeamPower }

// IsOffScreen reports whether the beam has left the top of the field.
func (b *Beam) IsOffScreen() bool {
	return b.sourceY < 0
}

// IntersectsWith tests the beam against a box. Touching edges do not intersect.
func (b *Beam) IntersectsWith(x, y, width, height int) bool {
	return b.sourceX < x+width &&
		b.sourceX+BeamWidth > x &&
		b.sourceY < y+height &&
		b.sourceY+BeamHeight > y
}
