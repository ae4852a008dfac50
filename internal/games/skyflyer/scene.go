package skyflyer

import (
	"fmt"

	"github.com/vovakirdan/skyflyer/internal/core"
)

// Scene exports the drawable entity list for the current tick.
// The returned slices are copies.
func (g *Game) Scene() core.Scene {
	lv := g.level
	f := lv.Flyer

	sc := core.Scene{
		Width:  g.width,
		Height: g.height,
		Flyer: core.FlyerPose{
			X:        f.X,
			Y:        f.Y,
			R:        f.R,
			Tilt:     core.ClampF(f.VY/10, -0.6, 0.6),
			Shielded: f.Shield > 0,
		},
		Obstacles:   make([]core.ObstacleShape, len(lv.Pairs)),
		Stars:       make([]core.Circle, len(lv.Stars)),
		Rings:       make([]core.Circle, len(lv.Rings)),
		Projectiles: make([]core.Circle, len(lv.Bullets)),
		Particles:   make([]core.ParticleDot, len(lv.Particles)),
		LevelLabel:  g.levelLabel(),
		Banner:      g.banner(),
	}

	for i, p := range lv.Pairs {
		sc.Obstacles[i] = core.ObstacleShape{Top: p.Top(), Bottom: p.Bottom(g.height)}
	}
	for i, s := range lv.Stars {
		sc.Stars[i] = s.Circle()
	}
	for i, r := range lv.Rings {
		sc.Rings[i] = r.Circle()
	}
	for i, b := range lv.Bullets {
		sc.Projectiles[i] = b.Circle()
	}
	fade := g.cfg.Particles.FadeLife
	for i, p := range lv.Particles {
		sc.Particles[i] = core.ParticleDot{
			X:     p.X,
			Y:     p.Y,
			Alpha: core.ClampF(p.Life/fade, 0, 1),
			Color: p.Color,
		}
	}

	if b := lv.Boss; b != nil {
		sc.Boss = &core.BossPose{
			Body:  b.Body(),
			HP:    b.HP,
			MaxHP: b.MaxHP,
			Ratio: core.ClampF(float64(b.HP)/float64(max(b.MaxHP, 1)), 0, 1),
		}
	}

	return sc
}

func (g *Game) levelLabel() string {
	if g.cfg.IsBossLevel(g.levelNum) {
		return fmt.Sprintf("Level %d - Boss", g.levelNum)
	}
	return fmt.Sprintf("Level %d", g.levelNum)
}

// banner returns the overlay message; victory outranks game over, which
// outranks pause.
func (g *Game) banner() string {
	switch {
	case g.phase == PhaseVictory:
		return fmt.Sprintf("Victory! You beat all %d levels - Press R to replay", g.cfg.Progression.FinalLevel)
	case g.phase == PhaseGameOver:
		return "Game Over - Press R to restart"
	case g.State().Paused:
		return "Paused - Press P to resume"
	default:
		return ""
	}
}
