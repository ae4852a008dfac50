package skyflyer

import "math"

// Snapshot contains the complete simulation state for determinism checks.
// Floats are stored as their IEEE-754 bits so equal snapshots hash equally.
type Snapshot struct {
	Tick      uint64
	LevelTick int
	Level     int
	Score     int
	Lives     int
	Phase     int
	Paused    bool
	GoalLeft  int

	FlyerY      uint64
	FlyerVY     uint64
	FlyerShield int

	ObstacleTimer int
	StarTimer     uint64
	RingTimer     uint64

	// Each pair is 4 values: X, TopH, GapY, Passed
	PairData []uint64
	// Each pickup is 2 values: X, Y
	StarData []uint64
	RingData []uint64
	// Each bullet is 4 values: X, Y, VX, VY
	BulletData []uint64
	// Boss is 6 values when present: X, Y, VX, VY, HP, Cooldown
	BossData []uint64

	ParticleCount int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	lv := g.level
	bits := math.Float64bits

	pairs := make([]uint64, 0, len(lv.Pairs)*4)
	for _, p := range lv.Pairs {
		passed := uint64(0)
		if p.Passed {
			passed = 1
		}
		pairs = append(pairs, bits(p.X), bits(p.TopH), bits(p.GapY), passed)
	}

	stars := make([]uint64, 0, len(lv.Stars)*2)
	for _, s := range lv.Stars {
		stars = append(stars, bits(s.X), bits(s.Y))
	}
	rings := make([]uint64, 0, len(lv.Rings)*2)
	for _, r := range lv.Rings {
		rings = append(rings, bits(r.X), bits(r.Y))
	}

	bullets := make([]uint64, 0, len(lv.Bullets)*4)
	for _, b := range lv.Bullets {
		bullets = append(bullets, bits(b.X), bits(b.Y), bits(b.VX), bits(b.VY))
	}

	var boss []uint64
	if b := lv.Boss; b != nil {
		boss = []uint64{
			bits(b.X), bits(b.Y), bits(b.VX), bits(b.VY),
			uint64(b.HP),       //#nosec G115 -- hp is never negative
			uint64(b.Cooldown), //#nosec G115 -- snapshot encoding
		}
	}

	return Snapshot{
		Tick:          uint64(g.totalTicks), //#nosec G115 -- tick count is always positive
		LevelTick:     lv.Tick,
		Level:         g.levelNum,
		Score:         g.score,
		Lives:         g.lives,
		Phase:         int(g.phase),
		Paused:        g.pausedFlag,
		GoalLeft:      lv.GoalLeft,
		FlyerY:        bits(lv.Flyer.Y),
		FlyerVY:       bits(lv.Flyer.VY),
		FlyerShield:   lv.Flyer.Shield,
		ObstacleTimer: lv.ObstacleTimer,
		StarTimer:     bits(lv.StarTimer),
		RingTimer:     bits(lv.RingTimer),
		PairData:      pairs,
		StarData:      stars,
		RingData:      rings,
		BulletData:    bullets,
		BossData:      boss,
		ParticleCount: len(lv.Particles),
		RNGState:      g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.LevelTick, snap.Level, snap.Score, snap.Lives, snap.Phase,
		snap.GoalLeft, snap.FlyerShield, snap.ObstacleTimer, snap.ParticleCount,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + snap.FlyerY
	h = h*31 + snap.FlyerVY
	h = h*31 + snap.StarTimer
	h = h*31 + snap.RingTimer

	for _, data := range [][]uint64{snap.PairData, snap.StarData, snap.RingData, snap.BulletData, snap.BossData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}

	h = h*31 + snap.RNGState
	return h
}
