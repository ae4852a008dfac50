package skyflyer

import (
	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
)

// newFlyer places a fresh flyer in its lane, clamped into the playfield.
func newFlyer(fc config.FlyerConfig, playfieldH float64) Flyer {
	return Flyer{
		X: fc.X,
		Y: core.ClampF(fc.StartY, 0, playfieldH-fc.Radius),
		R: fc.Radius,
	}
}

// integrate applies gravity and moves the flyer one tick.
// Returns true when the flyer was stopped by the floor, which counts as a hit.
func (f *Flyer) integrate(p config.PhysicsConfig, playfieldH float64) bool {
	f.VY = core.ClampF(f.VY+p.Gravity, -p.MaxVelocity, p.MaxVelocity)
	f.Y += f.VY

	if f.Y < 0 {
		f.Y = 0
	}
	floor := playfieldH - f.R
	if f.Y > floor {
		f.Y = floor
		return true
	}
	return false
}

// impulse overrides the vertical velocity with the flap velocity.
func (f *Flyer) impulse(p config.PhysicsConfig) {
	f.VY = p.ImpulseVelocity
}

// confine keeps the flyer inside a playfield that may have shrunk.
func (f *Flyer) confine(playfieldH float64) {
	f.Y = core.ClampF(f.Y, 0, playfieldH-f.R)
}
