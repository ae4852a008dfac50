package skyflyer

import (
	"math"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
)

// contacts records which damaging categories touched the flyer on a tick.
// Damage fires only when a category goes from untouched to touched.
type contacts struct {
	ground   bool
	obstacle bool
	boss     bool
}

// Level is the session state of the current level.
// It is discarded wholesale on level transition and on restart.
type Level struct {
	Number int
	Diff   config.Difficulty
	Tick   int

	Flyer     Flyer
	Pairs     []ObstaclePair
	Stars     []Pickup
	Rings     []Pickup
	Bullets   []Projectile
	Particles []Particle
	Boss      *Boss

	// Cadence counters count down; a spawn happens when one reaches zero.
	// All start at zero so the first tick of a level spawns.
	ObstacleTimer int
	StarTimer     float64
	RingTimer     float64

	GoalLeft int // Pairs still to pass; 0 on boss levels

	touching contacts // Contacts seen on the previous tick
}

// newLevel sets up a level for the given playfield.
func newLevel(number int, cfg config.SkyflyerConfig, w, h float64) *Level {
	d := cfg.ForLevel(number)
	lv := &Level{
		Number:    number,
		Diff:      d,
		Flyer:     newFlyer(cfg.Flyer, h),
		Pairs:     make([]ObstaclePair, 0, 8),
		Stars:     make([]Pickup, 0, 4),
		Rings:     make([]Pickup, 0, 4),
		Bullets:   make([]Projectile, 0, 16),
		Particles: make([]Particle, 0, 64),
		GoalLeft:  d.Goal,
	}
	if d.Boss {
		bc := cfg.Boss
		lv.Boss = &Boss{
			X:     bc.StartX,
			Y:     bc.StartY,
			W:     bc.Width,
			H:     bc.Height,
			HP:    d.BossHP,
			MaxHP: d.BossHP,
		}
	}
	return lv
}

// spawn runs the cadence counters for one tick.
func (lv *Level) spawn(cfg config.SkyflyerConfig, rng *SimpleRNG, w, h float64) {
	if lv.Boss == nil {
		lv.ObstacleTimer--
		if lv.ObstacleTimer <= 0 {
			lv.spawnPair(cfg.Obstacles, rng, w, h)
			lv.ObstacleTimer = lv.Diff.ObstacleInterval
		}
	} else {
		lv.Boss.drift(cfg.Boss, rng, w, h)
		lv.Boss.Cooldown--
		if lv.Boss.Cooldown <= 0 {
			lv.fireVolley(cfg.Boss.Bullet, rng)
			lv.Boss.Cooldown = lv.Diff.FireInterval
		}
	}

	spawnX := w + cfg.Obstacles.SpawnOffset
	d := lv.Diff

	lv.StarTimer--
	if lv.StarTimer <= 0 {
		star := cfg.Pickups.Star
		lv.Stars = append(lv.Stars, Pickup{
			X:  spawnX,
			Y:  rng.Range(star.Margin, h-star.Margin),
			R:  star.Radius,
			VX: -d.PickupSpeed,
		})
		lv.StarTimer = max(d.StarInterval+rng.Range(d.StarJitterMin, d.StarJitterMax), 1)
	}

	lv.RingTimer--
	if lv.RingTimer <= 0 {
		ring := cfg.Pickups.Ring
		lv.Rings = append(lv.Rings, Pickup{
			X:  spawnX,
			Y:  rng.Range(ring.Margin, h-ring.Margin),
			R:  ring.Radius,
			VX: -d.PickupSpeed,
		})
		lv.RingTimer = max(d.RingInterval+rng.Range(d.RingJitterMin, d.RingJitterMax), 1)
	}
}

// spawnPair adds an obstacle pair just past the right edge.
func (lv *Level) spawnPair(o config.ObstacleConfig, rng *SimpleRNG, w, h float64) {
	gap := lv.Diff.Gap
	topH := rng.Range(o.TopMin, h-o.BottomReserve-gap)
	lv.Pairs = append(lv.Pairs, ObstaclePair{
		X:    w + o.SpawnOffset,
		W:    o.Width,
		TopH: topH,
		GapY: topH + gap,
	})
}

// fireVolley launches 2*spread+1 projectiles from the boss's left side.
// Outer lanes fly slightly faster.
func (lv *Level) fireVolley(bc config.BulletConfig, rng *SimpleRNG) {
	b := lv.Boss
	spread := lv.Diff.Spread
	for i := -spread; i <= spread; i++ {
		fi := float64(i)
		speed := core.ClampF(lv.Diff.Speed+bc.SpeedBonus+math.Abs(fi)*bc.SpreadSpeed, bc.MinSpeed, bc.MaxSpeed)
		lv.Bullets = append(lv.Bullets, Projectile{
			X:  b.X + bc.OffsetX,
			Y:  b.Y + b.H/2 + fi*bc.Spacing,
			VX: -speed,
			VY: rng.Range(-bc.Wobble, bc.Wobble),
			R:  bc.Radius,
		})
	}
}

// drift applies a random velocity nudge and keeps the boss in its area.
func (b *Boss) drift(bc config.BossConfig, rng *SimpleRNG, w, h float64) {
	b.VX = core.ClampF(b.VX+rng.Range(-bc.Drift, bc.Drift), -bc.MaxVelocity, bc.MaxVelocity)
	b.VY = core.ClampF(b.VY+rng.Range(-bc.Drift, bc.Drift), -bc.MaxVelocity, bc.MaxVelocity)
	b.X = core.ClampF(b.X+b.VX, w*bc.MinXFraction, w-b.W-bc.RightMargin)
	b.Y = core.ClampF(b.Y+b.VY, bc.VerticalMargin, h-b.H-bc.VerticalMargin)
}

// move advances every transient entity by its per-tick velocity.
func (lv *Level) move() {
	for i := range lv.Pairs {
		lv.Pairs[i].X -= lv.Diff.Speed
	}
	for i := range lv.Stars {
		lv.Stars[i].X += lv.Stars[i].VX
	}
	for i := range lv.Rings {
		lv.Rings[i].X += lv.Rings[i].VX
	}
	for i := range lv.Bullets {
		lv.Bullets[i].X += lv.Bullets[i].VX
		lv.Bullets[i].Y += lv.Bullets[i].VY
	}
}

// prune removes entities past the off-screen margins.
func (lv *Level) prune(cfg config.SkyflyerConfig, h float64) {
	pairMargin := cfg.Obstacles.PruneMargin
	lv.Pairs = filter(lv.Pairs, func(p ObstaclePair) bool {
		return p.X+p.W > -pairMargin
	})

	pickupMargin := cfg.Pickups.PruneMargin
	keepPickup := func(p Pickup) bool { return p.X > -pickupMargin }
	lv.Stars = filter(lv.Stars, keepPickup)
	lv.Rings = filter(lv.Rings, keepPickup)

	m := cfg.Boss.Bullet.PruneMargin
	lv.Bullets = filter(lv.Bullets, func(b Projectile) bool {
		return b.X > -m && b.Y > -m && b.Y < h+m
	})

	lv.Particles = filter(lv.Particles, func(p Particle) bool {
		return p.Life > 0
	})
}

// burst spawns a ring of cosmetic particles.
func (lv *Level) burst(pc config.ParticleConfig, rng *SimpleRNG, x, y float64, c core.Color) {
	for range pc.Count {
		lv.Particles = append(lv.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    rng.Range(-pc.Speed, pc.Speed),
			VY:    rng.Range(-pc.Speed, pc.Speed),
			Life:  pc.LifeMin + rng.Range(0, pc.LifeJitter),
			Color: c,
		})
	}
}

// updateParticles moves particles, ages them and drops the expired ones.
func (lv *Level) updateParticles(pc config.ParticleConfig) {
	for i := range lv.Particles {
		p := &lv.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.VY += pc.Gravity
	}
	lv.Particles = filter(lv.Particles, func(p Particle) bool {
		return p.Life > 0
	})
}

// filter keeps the elements matching keep, reusing the backing array.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
