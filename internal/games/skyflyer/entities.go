package skyflyer

import "github.com/vovakirdan/skyflyer/internal/core"

// Flyer is the player-controlled body. X is a fixed lane.
type Flyer struct {
	X, Y   float64
	VY     float64
	R      float64
	Shield int // 0 or 1
}

// Circle returns the full collision circle.
func (f Flyer) Circle() core.Circle {
	return core.Circle{X: f.X, Y: f.Y, R: f.R}
}

// ObstaclePair is a top and bottom obstacle sharing one gap.
// Passed is set once the pair's trailing edge is behind the flyer so
// the pair is scored exactly once.
type ObstaclePair struct {
	X      float64
	W      float64
	TopH   float64 // Height of the top obstacle, measured from y=0
	GapY   float64 // Top of the bottom obstacle
	Passed bool
}

// Top returns the upper obstacle box.
func (p ObstaclePair) Top() core.Box {
	return core.Box{X: p.X, Y: 0, W: p.W, H: p.TopH}
}

// Bottom returns the lower obstacle box, extending to the playfield floor.
func (p ObstaclePair) Bottom(playfieldH float64) core.Box {
	return core.Box{X: p.X, Y: p.GapY, W: p.W, H: max(playfieldH-p.GapY, 0)}
}

// Pickup is a star (power-up) or ring (shield pickup).
type Pickup struct {
	X, Y float64
	R    float64
	VX   float64
}

// Circle returns the pickup's collision circle.
func (p Pickup) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.R}
}

// Projectile is a boss bullet.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Circle returns the projectile's collision circle.
func (p Projectile) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.R}
}

// Boss drifts in the right part of the playfield and fires volleys.
type Boss struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	HP       int
	MaxHP    int
	Cooldown int // Ticks until the next volley
}

// Body returns the boss collision box.
func (b Boss) Body() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Particle is a cosmetic burst fragment with no gameplay effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}
