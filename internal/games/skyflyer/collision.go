package skyflyer

import "github.com/vovakirdan/skyflyer/internal/core"

// resolve applies this tick's collision outcomes in fixed order:
// obstacle pairs, stars, rings, boss body, projectiles.
// Positions are read after movement and nothing moves during resolution.
func (g *Game) resolve(now *contacts) {
	lv := g.level
	f := &lv.Flyer
	body := f.Circle()

	// Obstacles use a slightly smaller circle so grazes are forgiven.
	inset := body
	inset.R = f.R - g.cfg.Flyer.ObstacleInset

	for i := range lv.Pairs {
		p := &lv.Pairs[i]
		if core.CircleBoxOverlap(inset, p.Top()) || core.CircleBoxOverlap(inset, p.Bottom(g.height)) {
			now.obstacle = true
			if !lv.touching.obstacle {
				g.damage()
			}
			break // at most one obstacle hit per tick
		}
		if !p.Passed && p.X+p.W < f.X {
			p.Passed = true
			g.creditPair()
		}
	}

	kept := lv.Stars[:0]
	for _, s := range lv.Stars {
		if !core.CirclesOverlap(body, s.Circle()) {
			kept = append(kept, s)
			continue
		}
		lv.burst(g.cfg.Particles, g.rng, s.X, s.Y, core.ColorStar)
		g.emit(core.EventStarCollected)
		g.collectStar()
	}
	lv.Stars = kept

	kept = lv.Rings[:0]
	for _, r := range lv.Rings {
		if !core.CirclesOverlap(body, r.Circle()) {
			kept = append(kept, r)
			continue
		}
		lv.burst(g.cfg.Particles, g.rng, r.X, r.Y, core.ColorShield)
		f.Shield = 1 // never stacks
		g.emit(core.EventShieldGained)
	}
	lv.Rings = kept

	if lv.Boss != nil && core.CircleBoxOverlap(body, lv.Boss.Body()) {
		now.boss = true
		if !lv.touching.boss {
			g.damage()
		}
	}

	bullets := lv.Bullets[:0]
	for _, b := range lv.Bullets {
		if core.CirclesOverlap(body, b.Circle()) {
			g.damage()
			continue
		}
		bullets = append(bullets, b)
	}
	lv.Bullets = bullets
}

// creditPair scores a passed obstacle pair and counts it toward the goal.
func (g *Game) creditPair() {
	if g.terminal() {
		return
	}
	g.score++
	lv := g.level
	if lv.Boss == nil && lv.GoalLeft > 0 {
		lv.GoalLeft--
		if lv.GoalLeft == 0 {
			g.requestAdvance()
		}
	}
}

// collectStar damages the boss on boss levels and scores otherwise.
func (g *Game) collectStar() {
	if g.terminal() {
		return
	}
	b := g.level.Boss
	if b == nil {
		g.score += g.cfg.Pickups.StarScore
		return
	}
	if b.HP <= 0 {
		return
	}
	b.HP--
	if b.HP == 0 {
		g.emit(core.EventBossDefeated)
		g.requestAdvance()
	}
}

// damage is the shared hit procedure: a shield absorbs the hit, otherwise
// a life is lost. It does nothing once the run has ended.
func (g *Game) damage() {
	if g.terminal() {
		return
	}
	lv := g.level
	f := &lv.Flyer

	if f.Shield > 0 {
		f.Shield = 0
		f.VY = g.cfg.Flyer.ShieldKnockback
		lv.burst(g.cfg.Particles, g.rng, f.X, f.Y, core.ColorShieldHit)
		g.emit(core.EventShieldBroken)
		return
	}

	g.lives--
	f.VY = g.cfg.Flyer.HitKnockback
	g.emit(core.EventLifeLost)
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver)
	}
}
