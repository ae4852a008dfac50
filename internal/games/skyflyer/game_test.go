package skyflyer

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

var initialState = core.GameState{Level: 1, Score: 0, Lives: 3}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime)
	return g
}

func step(g *Game, cmds ...core.Command) core.StepResult {
	in := core.NewInputFrame()
	for _, c := range cmds {
		in.Set(c)
	}
	return g.Step(in)
}

// hold parks the flyer mid-air so it touches nothing this tick.
func hold(g *Game) {
	g.level.Flyer.Y = g.height / 2
	g.level.Flyer.VY = 0
}

// quiet stops every spawn cadence of the current level.
func quiet(lv *Level) {
	lv.ObstacleTimer = 1 << 30
	lv.StarTimer = 1e9
	lv.RingTimer = 1e9
	if lv.Boss != nil {
		lv.Boss.Cooldown = 1 << 30
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func startAtLevel(g *Game, n int) {
	g.levelNum = n
	g.setupLevel()
}

// passablePair returns a pair already behind the flyer with no height,
// so it is credited on the next tick without any contact.
func passablePair(g *Game) ObstaclePair {
	f := g.level.Flyer
	w := g.cfg.Obstacles.Width
	return ObstaclePair{X: f.X - w - 1, W: w, TopH: 0, GapY: g.height}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)

	if g.State() != initialState {
		t.Errorf("State() = %+v, expected %+v", g.State(), initialState)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}
	w, h := g.Playfield()
	if w != 800 || h != 480 {
		t.Errorf("Playfield() = %vx%v, expected 800x480", w, h)
	}
	if g.level.Flyer.Y != 200 || g.level.Flyer.X != 120 {
		t.Errorf("flyer at (%v, %v), expected (120, 200)", g.level.Flyer.X, g.level.Flyer.Y)
	}
	if g.level.GoalLeft != 13 {
		t.Errorf("GoalLeft = %d, expected 13", g.level.GoalLeft)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		rc := testRuntime
		rc.Seed = seed
		g := New()
		g.Reset(rc)
		for i := range 900 {
			var cmds []core.Command
			if i%18 == 0 {
				cmds = append(cmds, core.CommandImpulse)
			}
			if g.State().GameOver {
				cmds = append(cmds, core.CommandRestart)
			}
			step(g, cmds...)
		}
		return g.Snapshot()
	}

	snap1 := run(99)
	snap2 := run(99)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: (score, tick) differ. Run1=(%d, %d), Run2=(%d, %d)",
			snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}

	snap3 := run(100)
	if snap3.RNGState == snap1.RNGState {
		t.Error("different seeds should diverge")
	}
}

func TestInvariantsHoldEveryTick(t *testing.T) {
	g := newTestGame(t)
	_, h := g.Playfield()
	prevLives := g.State().Lives

	for i := range 5000 {
		var cmds []core.Command
		if i%16 == 0 {
			cmds = append(cmds, core.CommandImpulse)
		}
		restarting := g.State().GameOver || g.State().Victory
		if restarting {
			cmds = append(cmds, core.CommandRestart)
		}
		res := step(g, cmds...)
		st := res.State
		f := g.level.Flyer

		if f.Y < 0 || f.Y > h-f.R {
			t.Fatalf("tick %d: flyer y = %v outside [0, %v]", i, f.Y, h-f.R)
		}
		if f.VY < -10 || f.VY > 10 {
			t.Fatalf("tick %d: flyer vy = %v outside [-10, 10]", i, f.VY)
		}
		if f.Shield != 0 && f.Shield != 1 {
			t.Fatalf("tick %d: shield = %d", i, f.Shield)
		}
		if st.Lives < 0 {
			t.Fatalf("tick %d: lives = %d", i, st.Lives)
		}
		if !restarting && st.Lives > prevLives {
			t.Fatalf("tick %d: lives rose from %d to %d without restart", i, prevLives, st.Lives)
		}
		if st.Level < 1 || st.Level > 10 {
			t.Fatalf("tick %d: level = %d", i, st.Level)
		}
		if st.GameOver && st.Victory {
			t.Fatalf("tick %d: game over and victory both set", i)
		}
		if st.GameOver != (st.Lives == 0) {
			t.Fatalf("tick %d: gameOver=%v with lives=%d", i, st.GameOver, st.Lives)
		}
		for _, p := range g.level.Particles {
			if p.Life <= 0 {
				t.Fatalf("tick %d: expired particle kept", i)
			}
		}
		prevLives = st.Lives
	}
}

func TestImpulseOverridesVelocity(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	g.level.Flyer.VY = 8
	y := g.level.Flyer.Y

	step(g, core.CommandImpulse)

	// impulse -6.5, then gravity 0.35
	if got, want := g.level.Flyer.VY, -6.5+0.35; !approx(got, want) {
		t.Errorf("VY = %v, expected %v", got, want)
	}
	if g.level.Flyer.Y >= y {
		t.Errorf("impulse should move the flyer up, was %v, now %v", y, g.level.Flyer.Y)
	}
}

func TestGravityAndVelocityClamp(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	g.level.Flyer.Y = 10
	g.level.Flyer.VY = 9.9

	step(g)
	if g.level.Flyer.VY != 10 {
		t.Errorf("VY = %v, expected clamp at 10", g.level.Flyer.VY)
	}

	g.level.Flyer.Y = 5
	g.level.Flyer.VY = -10
	step(g)
	if g.level.Flyer.Y != 0 {
		t.Errorf("Y = %v, expected clamp at ceiling 0", g.level.Flyer.Y)
	}
	if g.State().Lives != 3 {
		t.Error("ceiling contact should not damage")
	}
}

func TestSpawnCadence(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Playfield()

	hold(g)
	step(g)
	lv := g.level
	if len(lv.Pairs) != 1 || len(lv.Stars) != 1 || len(lv.Rings) != 1 {
		t.Fatalf("first tick spawned (%d pairs, %d stars, %d rings), expected one of each",
			len(lv.Pairs), len(lv.Stars), len(lv.Rings))
	}

	p := lv.Pairs[0]
	if p.X != w+40-2 {
		t.Errorf("pair X = %v, expected %v", p.X, w+40-2)
	}
	if p.TopH < 40 || p.TopH > h-120-127 {
		t.Errorf("pair TopH = %v outside [40, %v]", p.TopH, h-120-127)
	}
	if !approx(p.GapY-p.TopH, 127) {
		t.Errorf("gap = %v, expected 127", p.GapY-p.TopH)
	}
	if s := lv.Stars[0]; s.Y < 40 || s.Y > h-40 || s.R != 7 || s.VX != -2 {
		t.Errorf("star = %+v", s)
	}
	if r := lv.Rings[0]; r.Y < 60 || r.Y > h-60 || r.R != 12 {
		t.Errorf("ring = %+v", r)
	}

	// Level 1 interval is 80 ticks
	for range 79 {
		hold(g)
		step(g)
	}
	if len(lv.Pairs) != 1 {
		t.Errorf("after 80 ticks: %d pairs, expected 1", len(lv.Pairs))
	}
	hold(g)
	step(g)
	if len(lv.Pairs) != 2 {
		t.Errorf("after 81 ticks: %d pairs, expected 2", len(lv.Pairs))
	}
}

func TestPairCreditedOnce(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	g.level.Pairs = append(g.level.Pairs, passablePair(g))

	for range 10 {
		hold(g)
		step(g)
	}

	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
	if g.level.GoalLeft != 12 {
		t.Errorf("GoalLeft = %d, expected 12", g.level.GoalLeft)
	}
	if !g.level.Pairs[0].Passed {
		t.Error("pair should be marked passed")
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	cfg := config.DefaultSkyflyerConfig()
	cfg.Progression.GoalBase = 12
	cfg.Progression.GoalPerLevel = 0
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)

	var last core.StepResult
	for i := range 12 {
		if g.State().Level != 1 {
			t.Fatalf("advanced early after %d pairs", i)
		}
		quiet(g.level)
		hold(g)
		g.level.Pairs = append(g.level.Pairs, passablePair(g))
		last = step(g)
	}

	st := g.State()
	if st.Level != 2 {
		t.Errorf("Level = %d, expected 2", st.Level)
	}
	if st.Score != 12 {
		t.Errorf("Score = %d, expected 12", st.Score)
	}
	if st.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", st.Lives)
	}
	if !last.Has(core.EventLevelAdvanced) || !last.Changed {
		t.Errorf("last step events = %+v, expected level advanced", last.Events)
	}

	// New level session
	lv := g.level
	if lv.Number != 2 || len(lv.Pairs) != 0 || lv.Tick != 0 {
		t.Errorf("level 2 not freshly set up: number=%d pairs=%d tick=%d", lv.Number, len(lv.Pairs), lv.Tick)
	}
	if lv.Flyer.Y != 200 || lv.Flyer.VY != 0 || lv.Flyer.Shield != 0 {
		t.Errorf("flyer not reset: %+v", lv.Flyer)
	}
}

func TestBossDefeatedByStars(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 3)

	if g.level.Boss == nil || g.level.Boss.HP != 6 {
		t.Fatalf("level 3 boss = %+v, expected hp 6", g.level.Boss)
	}
	if g.level.GoalLeft != 0 {
		t.Errorf("boss level GoalLeft = %d, expected 0", g.level.GoalLeft)
	}

	var last core.StepResult
	for i := range 6 {
		if g.State().Level != 3 {
			t.Fatalf("advanced after %d stars", i)
		}
		quiet(g.level)
		hold(g)
		f := g.level.Flyer
		g.level.Stars = append(g.level.Stars, Pickup{X: f.X, Y: f.Y, R: 7})
		last = step(g)
	}

	st := g.State()
	if st.Level != 4 {
		t.Errorf("Level = %d, expected 4", st.Level)
	}
	if st.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", st.Lives)
	}
	if st.Score != 0 {
		t.Errorf("Score = %d, expected stars on boss levels not to score", st.Score)
	}
	if !last.Has(core.EventBossDefeated) || !last.Has(core.EventLevelAdvanced) {
		t.Errorf("events = %+v, expected boss defeated and level advanced", last.Events)
	}
	if g.level.Boss != nil {
		t.Error("level 4 should have no boss")
	}
}

func TestStarScoresOnNormalLevel(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	f := g.level.Flyer
	g.level.Stars = append(g.level.Stars, Pickup{X: f.X + 10, Y: f.Y, R: 7})

	res := step(g)
	if res.State.Score != 2 {
		t.Errorf("Score = %d, expected 2", res.State.Score)
	}
	if len(g.level.Stars) != 0 {
		t.Error("collected star should be removed")
	}
	if len(g.level.Particles) != 18 {
		t.Errorf("burst particles = %d, expected 18", len(g.level.Particles))
	}
	if g.level.GoalLeft != 13 {
		t.Error("stars should not count toward the goal")
	}
}

func TestShieldAbsorbsDamage(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	g.level.Flyer.Shield = 1
	f := g.level.Flyer
	g.level.Bullets = append(g.level.Bullets, Projectile{X: f.X, Y: f.Y, R: 6})

	res := step(g)

	if res.State.Lives != 3 || res.State.GameOver {
		t.Errorf("State = %+v, expected lives 3 and no game over", res.State)
	}
	if g.level.Flyer.Shield != 0 {
		t.Error("shield should be consumed")
	}
	if g.level.Flyer.VY != -4 {
		t.Errorf("VY = %v, expected knockback -4", g.level.Flyer.VY)
	}
	if len(g.level.Bullets) != 0 {
		t.Error("projectile should be removed on contact")
	}
	if !res.Has(core.EventShieldBroken) || res.Has(core.EventLifeLost) {
		t.Errorf("events = %+v, expected shield broken only", res.Events)
	}
}

func TestShieldDoesNotStack(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	g.level.Flyer.Shield = 1
	f := g.level.Flyer
	g.level.Rings = append(g.level.Rings,
		Pickup{X: f.X, Y: f.Y, R: 12},
		Pickup{X: f.X + 5, Y: f.Y, R: 12},
	)

	step(g)
	if g.level.Flyer.Shield != 1 {
		t.Errorf("Shield = %d, expected 1", g.level.Flyer.Shield)
	}
	if len(g.level.Rings) != 0 {
		t.Error("both rings should be consumed")
	}
}

func TestUnshieldedHit(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	f := g.level.Flyer
	g.level.Bullets = append(g.level.Bullets, Projectile{X: f.X, Y: f.Y, R: 6})

	res := step(g)
	if res.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.State.Lives)
	}
	if g.level.Flyer.VY != -5 {
		t.Errorf("VY = %v, expected knockback -5", g.level.Flyer.VY)
	}
	if !res.Has(core.EventLifeLost) {
		t.Errorf("events = %+v, expected life lost", res.Events)
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	g.lives = 1
	f := g.level.Flyer
	// Two hits in one tick: the second must not push lives negative
	g.level.Bullets = append(g.level.Bullets,
		Projectile{X: f.X, Y: f.Y, R: 6},
		Projectile{X: f.X + 2, Y: f.Y, R: 6},
	)

	res := step(g)
	if res.State.Lives != 0 || !res.State.GameOver {
		t.Fatalf("State = %+v, expected lives 0 and game over", res.State)
	}
	if !res.Has(core.EventGameOver) {
		t.Errorf("events = %+v, expected game over", res.Events)
	}

	before := g.Snapshot()
	for range 5 {
		res = step(g, core.CommandImpulse)
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("impulse after game over should change nothing")
	}
	if res.State.Lives != 0 || res.Changed {
		t.Errorf("State = %+v changed=%v, expected frozen", res.State, res.Changed)
	}

	res = step(g, core.CommandRestart)
	if res.State != initialState {
		t.Errorf("after restart State = %+v, expected %+v", res.State, initialState)
	}
	if !res.Has(core.EventRestart) {
		t.Error("restart should emit a restart event")
	}
}

func TestGameOverWinsOverAdvance(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	g.lives = 1
	g.level.GoalLeft = 1
	g.level.Pairs = append(g.level.Pairs, passablePair(g))
	f := g.level.Flyer
	g.level.Bullets = append(g.level.Bullets, Projectile{X: f.X, Y: f.Y, R: 6})

	res := step(g)
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Level != 1 {
		t.Errorf("Level = %d, expected 1", res.State.Level)
	}
	if res.Has(core.EventLevelAdvanced) {
		t.Error("level should not advance after game over")
	}
}

func TestVictoryAfterFinalLevel(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 10)
	if g.level.Boss.HP != 12 {
		t.Fatalf("level 10 boss hp = %d, expected 12", g.level.Boss.HP)
	}
	quiet(g.level)
	hold(g)
	g.level.Boss.HP = 1
	f := g.level.Flyer
	g.level.Stars = append(g.level.Stars, Pickup{X: f.X, Y: f.Y, R: 7})

	res := step(g)
	if !res.State.Victory || res.State.GameOver {
		t.Fatalf("State = %+v, expected victory", res.State)
	}
	if res.State.Level != 10 {
		t.Errorf("Level = %d, expected to stay at 10", res.State.Level)
	}
	if !res.Has(core.EventVictory) {
		t.Errorf("events = %+v, expected victory", res.Events)
	}

	for range 30 {
		res = step(g, core.CommandImpulse)
	}
	if !res.State.Victory || res.State.Level != 10 {
		t.Errorf("victory should persist, State = %+v", res.State)
	}

	res = step(g, core.CommandRestart)
	if res.State != initialState {
		t.Errorf("after restart State = %+v, expected %+v", res.State, initialState)
	}
}

func TestLevelAdvancesByOne(t *testing.T) {
	g := newTestGame(t)
	for want := 2; want <= 10; want++ {
		g.level.GoalLeft = 1
		if g.level.Boss != nil {
			g.level.Boss.HP = 1
		}
		quiet(g.level)
		hold(g)
		f := g.level.Flyer
		if g.level.Boss != nil {
			g.level.Stars = append(g.level.Stars, Pickup{X: f.X, Y: f.Y, R: 7})
		} else {
			g.level.Pairs = append(g.level.Pairs, passablePair(g))
		}
		res := step(g)
		if res.State.Level != want {
			t.Fatalf("Level = %d, expected %d", res.State.Level, want)
		}
		if (g.level.Boss != nil) != g.cfg.IsBossLevel(want) {
			t.Errorf("level %d boss presence mismatch", want)
		}
	}
}

func TestPauseDropsImpulse(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)

	res := step(g, core.CommandTogglePause)
	if !res.State.Paused || g.Phase() != PhasePaused {
		t.Fatalf("State = %+v, expected paused", res.State)
	}

	y, vy, tick := g.level.Flyer.Y, g.level.Flyer.VY, g.level.Tick
	for range 10 {
		step(g, core.CommandImpulse)
	}
	if g.level.Flyer.Y != y || g.level.Flyer.VY != vy || g.level.Tick != tick {
		t.Error("paused game should not move or buffer impulses")
	}

	res = step(g, core.CommandTogglePause)
	if res.State.Paused {
		t.Error("second toggle should resume")
	}
	if g.level.Flyer.VY != vy+0.35 {
		t.Errorf("VY = %v after resume, expected %v with no latent impulse", g.level.Flyer.VY, vy+0.35)
	}
}

func TestPauseTogglesInOneTickApplyParity(t *testing.T) {
	tests := []struct {
		name     string
		toggles  int
		expected bool
	}{
		{"one", 1, true},
		{"two cancel", 2, false},
		{"three", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			cmds := make([]core.Command, tt.toggles)
			for i := range cmds {
				cmds[i] = core.CommandTogglePause
			}
			if res := step(g, cmds...); res.State.Paused != tt.expected {
				t.Errorf("Paused = %v after %d toggles, expected %v", res.State.Paused, tt.toggles, tt.expected)
			}
		})
	}
}

func TestPauseToggleInTerminalState(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.damage()
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := step(g, core.CommandTogglePause)
	if !res.State.Paused || !res.State.GameOver {
		t.Errorf("State = %+v, expected paused flag set while still game over", res.State)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
	res = step(g, core.CommandTogglePause)
	if res.State.Paused {
		t.Error("toggle should flip the flag back")
	}
}

func TestPruneRunsWhilePaused(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	step(g, core.CommandTogglePause)

	g.level.Bullets = append(g.level.Bullets,
		Projectile{X: 300, Y: 400, R: 6},
		Projectile{X: 300, Y: 100, R: 6},
	)
	g.level.Particles = append(g.level.Particles, Particle{Life: 0})
	g.level.Pairs = append(g.level.Pairs, ObstaclePair{X: -200, W: 60})

	g.SetPlayfield(320, 240)
	step(g)

	if len(g.level.Bullets) != 1 || g.level.Bullets[0].Y != 100 {
		t.Errorf("bullets = %+v, expected only the one inside the shrunk playfield", g.level.Bullets)
	}
	if len(g.level.Particles) != 0 {
		t.Error("expired particle should be pruned while paused")
	}
	if len(g.level.Pairs) != 0 {
		t.Error("off-screen pair should be pruned while paused")
	}
}

func TestPruneMargins(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	lv := g.level
	lv.Pairs = append(lv.Pairs,
		ObstaclePair{X: -109, W: 60, GapY: 480, Passed: true}, // right edge -51 after move
		ObstaclePair{X: -107, W: 60, GapY: 480, Passed: true},
	)
	lv.Stars = append(lv.Stars, Pickup{X: -28, VX: -1, Y: 300}, Pickup{X: -29, VX: -1, Y: 300})
	lv.Bullets = append(lv.Bullets, Projectile{X: 400, Y: 499, VY: 2}, Projectile{X: 400, Y: 300})

	step(g)

	if len(lv.Pairs) != 1 {
		t.Errorf("pairs = %d, expected 1", len(lv.Pairs))
	}
	if len(lv.Stars) != 1 {
		t.Errorf("stars = %d, expected 1", len(lv.Stars))
	}
	if len(lv.Bullets) != 1 {
		t.Errorf("bullets = %d, expected 1", len(lv.Bullets))
	}
}

func TestGroundDamageEdgeTriggered(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	floor := g.height - g.level.Flyer.R

	rest := func() {
		g.level.Flyer.Y = floor
		g.level.Flyer.VY = 0
	}

	rest()
	step(g)
	if g.State().Lives != 2 {
		t.Fatalf("Lives = %d, expected 2 after first ground contact", g.State().Lives)
	}

	// Still resting on the floor: same contact, no new damage
	for range 5 {
		rest()
		step(g)
	}
	if g.State().Lives != 2 {
		t.Errorf("Lives = %d, expected 2 while contact continues", g.State().Lives)
	}

	hold(g)
	step(g)
	rest()
	step(g)
	if g.State().Lives != 1 {
		t.Errorf("Lives = %d, expected 1 after a new contact", g.State().Lives)
	}
}

func TestObstacleDamageEdgeTriggered(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	f := g.level.Flyer
	// Full-height pair covering the flyer lane
	g.level.Pairs = append(g.level.Pairs, ObstaclePair{X: f.X - 10, W: 60, TopH: g.height, GapY: g.height})

	for range 3 {
		hold(g)
		step(g)
	}
	if g.State().Lives != 2 {
		t.Errorf("Lives = %d, expected exactly one obstacle hit", g.State().Lives)
	}
	if g.State().Score != 0 {
		t.Error("a pair in contact should not be credited")
	}
}

func TestObstacleInsetForgivesGraze(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)
	f := g.level.Flyer
	// Box edge 15 units right of the flyer center after the pair moves 2
	g.level.Pairs = append(g.level.Pairs, ObstaclePair{X: f.X + 17, W: 60, TopH: g.height, GapY: g.height})

	step(g)
	if g.State().Lives != 3 {
		t.Errorf("Lives = %d, expected a graze inside the inset to be forgiven", g.State().Lives)
	}
}

func TestBossBodyDamageEdgeTriggered(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 3)
	quiet(g.level)

	for range 4 {
		b := g.level.Boss
		g.level.Flyer.X = b.X + b.W/2
		g.level.Flyer.Y = b.Y + b.H/2
		g.level.Flyer.VY = 0
		step(g)
	}
	if g.State().Lives != 2 {
		t.Errorf("Lives = %d, expected one hit for one continuous boss contact", g.State().Lives)
	}
}

func TestBossVolleys(t *testing.T) {
	tests := []struct {
		level   int
		bullets int
	}{
		{3, 3},
		{9, 5},
		{10, 5},
	}

	for _, tc := range tests {
		g := newTestGame(t)
		startAtLevel(g, tc.level)
		hold(g)
		step(g)

		lv := g.level
		if len(lv.Bullets) != tc.bullets {
			t.Errorf("level %d: first volley = %d bullets, expected %d", tc.level, len(lv.Bullets), tc.bullets)
			continue
		}
		for _, b := range lv.Bullets {
			if b.VX < -5 || b.VX > -3 {
				t.Errorf("level %d: bullet vx = %v outside [-5, -3]", tc.level, b.VX)
			}
			if b.VY < -0.5 || b.VY > 0.5 {
				t.Errorf("level %d: bullet vy = %v outside [-0.5, 0.5]", tc.level, b.VY)
			}
		}
	}

	// Final level fires every 40 ticks
	g := newTestGame(t)
	startAtLevel(g, 10)
	for range 41 {
		hold(g)
		g.level.StarTimer, g.level.RingTimer = 1e9, 1e9
		step(g)
	}
	if n := len(g.level.Bullets); n != 10 {
		t.Errorf("level 10 after 41 ticks: %d bullets, expected 10", n)
	}
}

func TestBossStaysInArea(t *testing.T) {
	g := newTestGame(t)
	startAtLevel(g, 6)
	w, h := g.Playfield()

	for i := range 600 {
		hold(g)
		g.level.Bullets = g.level.Bullets[:0]
		g.level.Stars = g.level.Stars[:0]
		step(g)

		b := g.level.Boss
		if b.X < w*0.55 || b.X > w-b.W-20 || b.Y < 30 || b.Y > h-b.H-30 {
			t.Fatalf("tick %d: boss at (%v, %v) outside its area", i, b.X, b.Y)
		}
		if b.VX < -1.2 || b.VX > 1.2 || b.VY < -1.2 || b.VY > 1.2 {
			t.Fatalf("tick %d: boss velocity (%v, %v) outside clamp", i, b.VX, b.VY)
		}
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	g := newTestGame(t)
	g.level.Flyer.Y = 460

	g.Resize(-4, 0)
	w, h := g.Playfield()
	if w != MinPlayfieldW || h != MinPlayfieldH {
		t.Errorf("Playfield() = %vx%v, expected %dx%d", w, h, MinPlayfieldW, MinPlayfieldH)
	}
	if g.level.Flyer.Y > h-g.level.Flyer.R {
		t.Errorf("flyer y = %v not confined to shrunk playfield", g.level.Flyer.Y)
	}

	// Still steps without panicking on the smallest playfield
	for range 200 {
		step(g, core.CommandImpulse)
	}
}

func TestConfigAppliedAtNextLevel(t *testing.T) {
	g := newTestGame(t)
	cfg := config.DefaultSkyflyerConfig()
	cfg.Physics.Gravity = 0.1
	cfg.Progression.Lives = 5
	g.SetConfig(cfg)

	quiet(g.level)
	hold(g)
	step(g)
	if g.level.Flyer.VY != 0.35 {
		t.Errorf("VY = %v, expected old gravity mid-level", g.level.Flyer.VY)
	}

	res := step(g, core.CommandRestart)
	if res.State.Lives != 5 {
		t.Errorf("Lives = %d, expected new config after restart", res.State.Lives)
	}
	quiet(g.level)
	hold(g)
	step(g)
	if g.level.Flyer.VY != 0.1 {
		t.Errorf("VY = %v, expected new gravity", g.level.Flyer.VY)
	}
}

func TestStepResultChanged(t *testing.T) {
	g := newTestGame(t)
	quiet(g.level)
	hold(g)

	if res := step(g); res.Changed {
		t.Error("quiet tick should not report a change")
	}
	if res := step(g, core.CommandTogglePause); !res.Changed {
		t.Error("pause should report a change")
	}
}
