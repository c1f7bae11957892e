package shooter

import "slices"

// resolveCollisions checks the loss line, then walks projectiles in
// insertion order. Enemies destroyed by one projectile are gone before the
// next projectile is tested.
func (e *Engine) resolveCollisions() {
	for _, en := range e.enemies {
		if en.Y+EnemyHeight >= e.player.Y {
			e.gameOver = true
			return
		}
	}

	target := e.player.Bounds()
	kept := e.projectiles[:0]
	for _, p := range e.projectiles {
		if p.PlayerOwned() {
			if e.hitEnemy(p) {
				continue
			}
		} else if p.CollidesWith(target) {
			e.hitPlayer()
			continue
		}
		kept = append(kept, p)
	}
	clear(e.projectiles[len(kept):])
	e.projectiles = kept

	if len(e.enemies) == 0 {
		e.gameOver = true
	}
}

// hitEnemy applies p to the first enemy it overlaps. It returns false if p
// hit nothing.
func (e *Engine) hitEnemy(p Projectile) bool {
	for i, en := range e.enemies {
		if !p.CollidesWith(en.Bounds()) {
			continue
		}

		switch {
		case e.godMode:
			e.removeEnemy(i)
			e.score += GodKillScore
		default:
			en.TakeDamage(e.damage())
			if en.IsDestroyed() {
				e.removeEnemy(i)
				e.score += e.killScore()
			}
		}
		e.release(p)
		return true
	}
	return false
}

func (e *Engine) hitPlayer() {
	d := PlayerHitDamage
	if e.godMode {
		d = GodHitDamage
	}
	e.player.TakeDamage(d)
	if e.player.IsDestroyed() {
		e.gameOver = true
	}
}

// damage follows the active weapon, not the projectile that hit.
func (e *Engine) damage() int {
	if f := e.strategy.Family(); f.valid() {
		return hitDamage[f]
	}
	return hitDamage[FamilyBasic]
}

func (e *Engine) killScore() int {
	if e.strategy.Family() == FamilyLaser {
		return LaserKillScore
	}
	return KillScore
}

func (e *Engine) removeEnemy(i int) {
	e.enemies[i].removed = true
	e.enemies = slices.Delete(e.enemies, i, i+1)
}
