// Package skyflyer implements a ten-level side-scrolling flyer game.
// The player flaps through obstacle pairs, collects stars and shield rings,
// and defeats bosses on designated levels.
package skyflyer

import (
	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
)

// Smallest playfield the simulation runs on, in world units.
// Smaller or negative sizes are raised to these.
const (
	MinPlayfieldW = 320
	MinPlayfieldH = 240
)

// Game implements core.Simulation for skyflyer.
// It is not safe for concurrent use; the platform owns one goroutine that
// drives it and feeds it commands through a core.CommandQueue.
type Game struct {
	cfg     config.SkyflyerConfig
	nextCfg *config.SkyflyerConfig // Applied at the next level setup
	runtime core.RuntimeConfig
	rng     *SimpleRNG

	width, height float64 // Playfield in world units

	// Run state, kept across levels
	phase          Phase
	pausedFlag     bool // Pause toggled while in a terminal phase
	levelNum       int
	score          int
	lives          int
	pendingAdvance bool
	totalTicks     int

	level  *Level
	events []core.Event
}

// New creates a game with the default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultSkyflyerConfig())
}

// NewWithConfig creates a game with the given tuning.
func NewWithConfig(cfg config.SkyflyerConfig) *Game {
	cfg.Validate()
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyflyer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Quest: Sky Worlds"
}

// Reset reseeds the RNG, sizes the playfield from the screen and starts
// a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = NewSimpleRNG(rc.Seed)
	g.totalTicks = 0
	g.applyPendingConfig()
	g.setPlayfield(g.cellsToWorld(rc.ScreenW, rc.ScreenH))
	g.restart()
}

// Resize sets the playfield from a screen size in cells.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.SetPlayfield(g.cellsToWorld(screenW, screenH))
}

// SetPlayfield sets the playfield size in world units. It is pure input
// to spawn and boundary math from the next tick on; entities already in
// flight keep their positions.
func (g *Game) SetPlayfield(w, h float64) {
	g.setPlayfield(w, h)
	if g.level != nil {
		g.level.Flyer.confine(g.height)
	}
}

func (g *Game) setPlayfield(w, h float64) {
	g.width = max(w, MinPlayfieldW)
	g.height = max(h, MinPlayfieldH)
}

// Playfield returns the playfield size in world units.
func (g *Game) Playfield() (w, h float64) {
	return g.width, g.height
}

func (g *Game) cellsToWorld(cols, rows int) (float64, float64) {
	return float64(cols) * g.cfg.Render.CellWidth, float64(rows) * g.cfg.Render.CellHeight
}

// SetConfig queues new tuning. It takes effect at the next level setup
// (advance or restart) so a level never mixes two tunings.
func (g *Game) SetConfig(cfg config.SkyflyerConfig) {
	cfg.Validate()
	g.nextCfg = &cfg
}

// Config returns the tuning in effect.
func (g *Game) Config() config.SkyflyerConfig {
	return g.cfg
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the current level session.
func (g *Game) Level() *Level {
	return g.level
}

// Step advances the game by one tick. The frame holds every command queued
// since the previous tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	prev := g.State()
	g.events = nil

	if in.Has(core.CommandRestart) {
		g.restart()
		g.emit(core.EventRestart)
		return g.result(prev)
	}

	// Toggles queued in the same tick cancel out in pairs.
	if in.Count(core.CommandTogglePause)%2 == 1 {
		g.togglePause()
	}
	// Dropped, not buffered, while paused or after the run ended.
	if in.Has(core.CommandImpulse) && g.phase == PhasePlaying {
		g.level.Flyer.impulse(g.cfg.Physics)
	}

	if g.phase != PhasePlaying {
		g.level.prune(g.cfg, g.height)
		return g.result(prev)
	}

	g.tick()
	g.applyTransition()
	return g.result(prev)
}

// tick runs physics, spawning, movement and collision for one frame.
func (g *Game) tick() {
	lv := g.level
	lv.Tick++
	g.totalTicks++

	var now contacts
	now.ground = lv.Flyer.integrate(g.cfg.Physics, g.height)
	if now.ground && !lv.touching.ground {
		g.damage()
	}

	lv.spawn(g.cfg, g.rng, g.width, g.height)
	lv.move()
	lv.prune(g.cfg, g.height)
	g.resolve(&now)
	lv.touching = now
	lv.updateParticles(g.cfg.Particles)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Level: g.levelNum})
}

func (g *Game) result(prev core.GameState) core.StepResult {
	st := g.State()
	return core.StepResult{
		State:   st,
		Changed: st != prev,
		Events:  g.events,
	}
}

// State returns the current run snapshot.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:    g.levelNum,
		Score:    g.score,
		Lives:    g.lives,
		Paused:   g.phase == PhasePaused || (g.terminal() && g.pausedFlag),
		GameOver: g.phase == PhaseGameOver,
		Victory:  g.phase == PhaseVictory,
	}
}

var _ core.Simulation = (*Game)(nil)
