package laser

// Weapon emits beams.
type Weapon struct{}

// NewWeapon creates an emitter.
func NewWeapon() *Weapon {
	return &Weapon{}
}

// FireLaser emits a beam whose source corner is at (sourceX, sourceY).
func (w *Weapon) FireLaser(sourceX, sourceY int) *Beam {
	return &Beam{sourceX: sourceX, sourceY: sourceY}
}
