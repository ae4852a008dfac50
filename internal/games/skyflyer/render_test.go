package skyflyer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyflyer/internal/core"
)

func TestSceneExport(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	f := g.level.Flyer
	g.level.Flyer.Shield = 1
	g.level.Pairs = append(g.level.Pairs, ObstaclePair{X: 500, W: 60, TopH: 100, GapY: 230})
	g.level.Stars = append(g.level.Stars, Pickup{X: 600, Y: 50, R: 7})
	g.level.Particles = append(g.level.Particles, Particle{X: 1, Y: 2, Life: 15, Color: core.ColorStar})
	g.level.Flyer.VY = -20 // tilt clamps

	sc := g.Scene()
	if sc.Width != 800 || sc.Height != 480 {
		t.Errorf("scene size = %vx%v, expected 800x480", sc.Width, sc.Height)
	}
	if sc.Flyer.X != f.X || !sc.Flyer.Shielded || sc.Flyer.Tilt != -0.6 {
		t.Errorf("flyer pose = %+v", sc.Flyer)
	}
	if len(sc.Obstacles) != 1 {
		t.Fatalf("obstacles = %d, expected 1", len(sc.Obstacles))
	}
	o := sc.Obstacles[0]
	if o.Top != (core.Box{X: 500, Y: 0, W: 60, H: 100}) || o.Bottom != (core.Box{X: 500, Y: 230, W: 60, H: 250}) {
		t.Errorf("obstacle = %+v", o)
	}
	if len(sc.Stars) != 1 || sc.Stars[0].R != 7 {
		t.Errorf("stars = %+v", sc.Stars)
	}
	if len(sc.Particles) != 1 || sc.Particles[0].Alpha != 0.5 {
		t.Errorf("particles = %+v, expected alpha 0.5", sc.Particles)
	}
	if sc.Boss != nil {
		t.Error("level 1 should export no boss")
	}
	if sc.LevelLabel != "Level 1" || sc.Banner != "" {
		t.Errorf("label = %q banner = %q", sc.LevelLabel, sc.Banner)
	}

	// Export is a copy
	sc.Stars[0].X = -1
	if g.level.Stars[0].X != 600 {
		t.Error("mutating the scene should not touch the simulation")
	}
}

func TestSceneBossAndBanners(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 9)
	g.level.Boss.HP = 3

	sc := g.Scene()
	if sc.LevelLabel != "Level 9 - Boss" {
		t.Errorf("label = %q", sc.LevelLabel)
	}
	if sc.Boss == nil || sc.Boss.MaxHP != 9 || sc.Boss.Ratio != 3.0/9.0 {
		t.Errorf("boss = %+v, expected ratio 1/3 of 9", sc.Boss)
	}

	step(g, core.CommandTogglePause)
	if g.Scene().Banner != "Paused - Press P to resume" {
		t.Errorf("banner = %q", g.Scene().Banner)
	}

	g.lives = 1
	g.phase = PhasePlaying
	g.damage()
	g.pausedFlag = true
	if g.Scene().Banner != "Game Over - Press R to restart" {
		t.Errorf("game over should outrank pause, banner = %q", g.Scene().Banner)
	}

	g.phase = PhaseVictory
	if !strings.HasPrefix(g.Scene().Banner, "Victory! You beat all 10 levels") {
		t.Errorf("banner = %q", g.Scene().Banner)
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	g.level.Flyer.Y = 240
	g.level.Pairs = append(g.level.Pairs, ObstaclePair{X: 500, W: 60, TopH: 100, GapY: 300})
	g.level.Rings = append(g.level.Rings, Pickup{X: 305, Y: 105, R: 12})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 10x20 world units per cell at 80x24
	if got := screen.GetCell(12, 12); got.Rune != FlyerChar || got.Color != core.ColorFlyer {
		t.Errorf("flyer cell = %+v", got)
	}
	if screen.Get(13, 12) != BeakLevel {
		t.Errorf("beak = %q, expected %q", screen.Get(13, 12), BeakLevel)
	}
	if got := screen.GetCell(52, 2); got.Rune != PipeChar || got.Color != core.ColorPipe {
		t.Errorf("top obstacle body = %+v", got)
	}
	if screen.Get(52, 4) != PipeCapTop {
		t.Errorf("top cap = %q, expected %q", screen.Get(52, 4), PipeCapTop)
	}
	if screen.Get(52, 15) != PipeCapBottom {
		t.Errorf("bottom cap = %q, expected %q", screen.Get(52, 15), PipeCapBottom)
	}
	if screen.Get(52, 8) != ' ' {
		t.Errorf("gap should be empty, got %q", screen.Get(52, 8))
	}
	if got := screen.GetCell(30, 5); got.Rune != RingChar || got.Color != core.ColorShield {
		t.Errorf("ring cell = %+v", got)
	}
	if !strings.HasPrefix(screen.Row(0), " Level 1") {
		t.Errorf("row 0 = %q, expected level label", screen.Row(0))
	}
	if screen.GetCell(0, 23).Color != core.ColorHill {
		t.Error("bottom row should show hills")
	}
}

func TestRenderBossAndBanner(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 3)
	g.level.Boss.HP = 3
	step(g, core.CommandTogglePause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	b := g.level.Boss
	bx, by := int(b.X/10), int(b.Y/20)
	if screen.GetCell(bx, by+1).Color != core.ColorBoss {
		t.Errorf("boss body missing at (%d, %d)", bx, by+1)
	}
	if screen.GetCell(bx, by-1).Color != core.ColorHealth {
		t.Errorf("health bar missing at (%d, %d)", bx, by-1)
	}
	if !strings.Contains(screen.String(), "Paused - Press P to resume") {
		t.Error("paused banner should be drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t)
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(3, 2))
}
