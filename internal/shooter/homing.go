package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

const (
	HomingSpeed    = 5.0
	HomingTurnRate = 0.1 // Radians per tick
)

// HomingMissile steers toward a bound enemy. Once the enemy is gone it
// flies straight up like a plain player missile.
type HomingMissile struct {
	Missile
	target  *Enemy
	bearing float64
}

// NewHomingMissile creates a player missile bound to target, initially
// heading straight up.
func NewHomingMissile(x, y int, target *Enemy, family Family) *HomingMissile {
	return &HomingMissile{
		Missile: *NewMissile(x, y, true, family),
		target:  target,
		bearing: -math.Pi / 2,
	}
}

// Update turns toward the target's center by at most HomingTurnRate, then
// advances HomingSpeed along the bearing. Positions truncate toward zero.
func (h *HomingMissile) Update() {
	if !h.HasTarget() {
		h.Missile.Update()
		return
	}

	tx, ty := h.target.Bounds().Center()
	desired := math.Atan2(float64(ty-h.Y), float64(tx-h.X))

	diff := core.NormalizeAngle(desired - h.bearing)
	turn := math.Min(math.Abs(diff), HomingTurnRate)
	if diff < 0 {
		turn = -turn
	}
	h.bearing += turn

	h.X = int(float64(h.X) + math.Cos(h.bearing)*HomingSpeed)
	h.Y = int(float64(h.Y) + math.Sin(h.bearing)*HomingSpeed)
}

// HasTarget reports whether the bound enemy is still in the swarm.
func (h *HomingMissile) HasTarget() bool {
	return h.target != nil && !h.target.removed
}

func (h *HomingMissile) Kind() Kind { return KindHoming }
