package shooter

import (
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/laser"
)

// SnapshotVersion is bumped whenever the Snapshot layout changes.
const SnapshotVersion = 1

var (
	// ErrSnapshotVersion is returned when restoring a snapshot of another layout.
	ErrSnapshotVersion = errors.New("shooter: unsupported snapshot version")
	// ErrMalformedSnapshot is returned when snapshot data is inconsistent.
	ErrMalformedSnapshot = errors.New("shooter: malformed snapshot")
)

const (
	enemyStride      = 4 // X, Y, Health, Speed
	projectileStride = 6 // Kind, X, Y, PlayerOwned, Family, TargetIndex
)

// Snapshot contains the complete engine state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Version int    `msgpack:"v"`
	Tick    uint64 `msgpack:"t"`

	PlayerX      int `msgpack:"px"`
	PlayerY      int `msgpack:"py"`
	PlayerHealth int `msgpack:"ph"`

	Score     int  `msgpack:"s"`
	GameOver  bool `msgpack:"go"`
	DebugMode bool `msgpack:"dm"`
	GodMode   bool `msgpack:"gm"`

	ActiveFamily int   `msgpack:"af"`
	Live         []int `msgpack:"l"`
	Remaining    []int `msgpack:"r"`

	SwarmDirection   int `msgpack:"sd"`
	SwarmMoveCounter int `msgpack:"sc"`
	SwarmDrops       int `msgpack:"sn"`
	SwarmLeftmost    int `msgpack:"sl"`
	SwarmRightmost   int `msgpack:"sr"`

	// Each enemy is 4 ints: X, Y, Health, Speed
	EnemyData []int `msgpack:"e"`

	// Each projectile is 6 ints: Kind, X, Y, PlayerOwned, Family, TargetIndex.
	// TargetIndex is -1 for projectiles without a live target.
	ProjectileData []int `msgpack:"p"`
	// One bearing per projectile; zero for non-homing projectiles.
	Bearings []float64 `msgpack:"b"`

	RNGState uint64 `msgpack:"rng"`
}

// Snapshot returns the current engine state. The random source state is
// captured only when the engine uses the default generator.
func (e *Engine) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(e.enemies)*enemyStride)
	index := make(map[*Enemy]int, len(e.enemies))
	for i, en := range e.enemies {
		index[en] = i
		enemyData = append(enemyData, en.X, en.Y, en.Health, en.Speed)
	}

	projectileData := make([]int, 0, len(e.projectiles)*projectileStride)
	bearings := make([]float64, len(e.projectiles))
	for i, p := range e.projectiles {
		b := p.Bounds()
		owned := 0
		if p.PlayerOwned() {
			owned = 1
		}
		target := -1
		if h, ok := p.(*HomingMissile); ok {
			bearings[i] = h.bearing
			if h.HasTarget() {
				target = index[h.target]
			}
		}
		projectileData = append(projectileData, int(p.Kind()), b.X, b.Y, owned, int(p.Family()), target)
	}

	var rngState uint64
	if r, ok := e.rng.(*core.RNG); ok {
		rngState = r.State()
	}

	return Snapshot{
		Version:      SnapshotVersion,
		Tick:         e.tick,
		PlayerX:      e.player.X,
		PlayerY:      e.player.Y,
		PlayerHealth: e.player.Health,
		Score:        e.score,
		GameOver:     e.gameOver,
		DebugMode:    e.debugMode,
		GodMode:      e.godMode,

		ActiveFamily: int(e.strategy.Family()),
		Live:         append([]int(nil), e.live[:]...),
		Remaining:    append([]int(nil), e.remaining[:]...),

		SwarmDirection:   e.swarm.Direction,
		SwarmMoveCounter: e.swarm.MoveCounter,
		SwarmDrops:       e.swarm.Drops,
		SwarmLeftmost:    e.swarm.Leftmost,
		SwarmRightmost:   e.swarm.Rightmost,

		EnemyData:      enemyData,
		ProjectileData: projectileData,
		Bearings:       bearings,
		RNGState:       rngState,
	}
}

// Restore builds an engine from a snapshot. Unless an option replaces it,
// the default random source resumes from the captured state, so identical
// inputs give identical ticks.
func Restore(snap Snapshot, opts ...Option) (*Engine, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if len(snap.EnemyData)%enemyStride != 0 ||
		len(snap.ProjectileData)%projectileStride != 0 ||
		len(snap.Bearings) != len(snap.ProjectileData)/projectileStride ||
		len(snap.Live) != familyCount || len(snap.Remaining) != familyCount {
		return nil, fmt.Errorf("%w: inconsistent lengths", ErrMalformedSnapshot)
	}

	rng := core.NewRNG(1)
	rng.SetState(snap.RNGState)
	e := &Engine{
		player: Player{X: snap.PlayerX, Y: snap.PlayerY, Health: snap.PlayerHealth},
		rng:    rng,

		score:     snap.Score,
		gameOver:  snap.GameOver,
		debugMode: snap.DebugMode,
		godMode:   snap.GodMode,

		swarm: SwarmState{
			Direction:   snap.SwarmDirection,
			MoveCounter: snap.SwarmMoveCounter,
			Drops:       snap.SwarmDrops,
			Leftmost:    snap.SwarmLeftmost,
			Rightmost:   snap.SwarmRightmost,
		},
		tick: snap.Tick,
	}
	copy(e.live[:], snap.Live)
	copy(e.remaining[:], snap.Remaining)

	e.enemies = make([]*Enemy, 0, len(snap.EnemyData)/enemyStride)
	for i := 0; i < len(snap.EnemyData); i += enemyStride {
		d := snap.EnemyData[i : i+enemyStride]
		e.enemies = append(e.enemies, &Enemy{X: d[0], Y: d[1], Health: d[2], Speed: d[3]})
	}

	emitter := laser.NewWeapon()
	e.projectiles = make([]Projectile, 0, len(snap.Bearings))
	for i := 0; i < len(snap.ProjectileData); i += projectileStride {
		d := snap.ProjectileData[i : i+projectileStride]
		p, err := e.restoreProjectile(d, snap.Bearings[i/projectileStride], emitter)
		if err != nil {
			return nil, err
		}
		e.projectiles = append(e.projectiles, p)
	}

	family := Family(snap.ActiveFamily)
	if !family.valid() {
		return nil, fmt.Errorf("%w: active family %d", ErrMalformedSnapshot, snap.ActiveFamily)
	}
	s, err := NewStrategy(family.String(), e)
	if err != nil {
		return nil, err
	}
	e.strategy = s

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) restoreProjectile(d []int, bearing float64, emitter *laser.Weapon) (Projectile, error) {
	kind, x, y, owned, family, target := Kind(d[0]), d[1], d[2], d[3] == 1, Family(d[4]), d[5]

	switch kind {
	case KindMissile:
		return NewMissile(x, y, owned, family), nil
	case KindHoming:
		var t *Enemy
		if target >= 0 {
			if target >= len(e.enemies) {
				return nil, fmt.Errorf("%w: target index %d", ErrMalformedSnapshot, target)
			}
			t = e.enemies[target]
		}
		h := NewHomingMissile(x, y, t, family)
		h.bearing = bearing
		return h, nil
	case KindBeam:
		return &BeamProjectile{beam: emitter.FireLaser(x, y)}, nil
	default:
		return nil, fmt.Errorf("%w: projectile kind %d", ErrMalformedSnapshot, d[0])
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.DebugMode)
	h = h*31 + boolBit(snap.GodMode)
	h = h*31 + uint64(snap.ActiveFamily)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SwarmDirection)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SwarmMoveCounter) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SwarmDrops)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SwarmLeftmost)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SwarmRightmost)   //#nosec G115 -- hash computation

	for _, v := range snap.Live {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Remaining {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, b := range snap.Bearings {
		h = h*31 + math.Float64bits(b)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// MarshalSnapshot encodes a snapshot with msgpack.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("shooter: encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a msgpack snapshot and checks its version.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("shooter: decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	return snap, nil
}
