package shooter

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/laser"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

func TestBasicStrategy(t *testing.T) {
	p := Basic{}.CreateProjectile(320, 590)
	if p == nil {
		t.Fatal("Basic returned nil")
	}
	b := p.Bounds()
	if b.X != 320 || b.Y != 590 || !p.PlayerOwned() || p.Family() != FamilyBasic || p.Kind() != KindMissile {
		t.Errorf("unexpected basic projectile %+v", viewOf(p))
	}
}

func TestDoubleStrategyLaunchesTwo(t *testing.T) {
	e := New(WithRandom(neverFire{}))
	if err := e.SelectWeapon("double"); err != nil {
		t.Fatalf("SelectWeapon(double) failed: %v", err)
	}

	if !e.Fire(320, 590) {
		t.Fatal("double fire was rejected")
	}

	ps := e.Projectiles()
	if len(ps) != 2 {
		t.Fatalf("got %d projectiles, expected 2", len(ps))
	}
	if ps[0].X != 310 || ps[1].X != 330 || ps[0].Y != 590 || ps[1].Y != 590 {
		t.Errorf("projectiles at (%d, %d) and (%d, %d)", ps[0].X, ps[0].Y, ps[1].X, ps[1].Y)
	}
	if got := e.Ammo(FamilyDouble).Live; got != 2 {
		t.Errorf("double live = %d, expected 2", got)
	}
	if got := e.Ammo(FamilyDouble).Remaining; got != Unlimited {
		t.Errorf("double remaining = %d, expected unlimited", got)
	}
}

func TestNearestEnemy(t *testing.T) {
	a := NewEnemy(100, 100)
	b := NewEnemy(200, 100)
	enemies := []*Enemy{a, b}

	if got := nearestEnemy(enemies, 150, 300); got != a {
		t.Error("equal distances should pick the first enemy")
	}
	if got := nearestEnemy(enemies, 190, 300); got != b {
		t.Error("expected the closer enemy")
	}
	if got := nearestEnemy(nil, 0, 0); got != nil {
		t.Error("no enemies should give nil")
	}
}

func TestTargetingBindsNearest(t *testing.T) {
	e := New(WithRandom(neverFire{}))
	near := NewEnemy(300, 400)
	e.enemies = []*Enemy{NewEnemy(10, 100), near}

	p := Targeting{env: e}.CreateProjectile(320, 590)
	h, ok := p.(*HomingMissile)
	if !ok {
		t.Fatalf("expected homing missile, got %T", p)
	}
	if h.target != near {
		t.Error("homing missile bound to the wrong enemy")
	}
	if h.Family() != FamilyTargeting {
		t.Errorf("family = %v, expected targeting", h.Family())
	}
}

func TestTargetingFallsBackWithoutEnemies(t *testing.T) {
	e := New(WithRandom(neverFire{}))
	e.enemies = nil

	p := Targeting{env: e}.CreateProjectile(320, 590)
	if p.Kind() != KindMissile || p.Family() != FamilyTargeting || !p.PlayerOwned() {
		t.Errorf("unexpected fallback projectile %+v", viewOf(p))
	}
}

func TestLaserAdapter(t *testing.T) {
	a := NewLaserAdapter()
	p := a.CreateProjectile(320, 590)

	beam, ok := p.(*BeamProjectile)
	if !ok {
		t.Fatalf("expected beam projectile, got %T", p)
	}
	if b := beam.Bounds(); b != core.NewRect(320, 590, laser.BeamWidth, laser.BeamHeight) {
		t.Errorf("beam bounds = %+v", b)
	}
	if beam.Power() != laser.BeamPower || beam.Family() != FamilyLaser || beam.Kind() != KindBeam {
		t.Error("beam reports wrong power, family or kind")
	}

	beam.Update()
	if beam.Bounds().Y != 590-laser.BeamSpeed {
		t.Errorf("beam Y after update = %d", beam.Bounds().Y)
	}

	if !beam.CollidesWith(core.NewRect(300, 560, 30, 30)) {
		t.Error("beam should hit an overlapping box")
	}
	if beam.CollidesWith(core.NewRect(325, 560, 30, 30)) {
		t.Error("beam should not hit a box touching its right edge")
	}
}

func TestWeaponRegistry(t *testing.T) {
	list := Weapons()
	want := []string{"basic", "double", "laser", "targeting"}
	if len(list) != len(want) {
		t.Fatalf("Weapons() returned %d entries, expected %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("Weapons()[%d] = %q, expected %q", i, list[i].ID, id)
		}
	}

	e := New()
	for _, f := range Families() {
		s, err := NewStrategy(f.String(), e)
		if err != nil {
			t.Fatalf("NewStrategy(%s) failed: %v", f, err)
		}
		if s.Family() != f {
			t.Errorf("strategy %s has family %v", f, s.Family())
		}
	}

	if _, err := NewStrategy("plasma", e); !errors.Is(err, registry.ErrUnknown) {
		t.Errorf("unknown weapon error = %v, expected ErrUnknown", err)
	}
	if err := e.SelectWeapon("plasma"); err == nil {
		t.Error("SelectWeapon should reject unknown ids")
	}
	if e.ActiveFamily() != FamilyBasic {
		t.Error("failed selection should keep the active weapon")
	}
}
