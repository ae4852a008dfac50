package skyflyer

import (
	"math"

	"github.com/vovakirdan/skyflyer/internal/core"
)

// Visual characters for rendering
const (
	FlyerChar      = '●'
	BeakLevel      = '>'
	BeakUp         = '/'
	BeakDown       = '\\'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	StarChar       = '*'
	RingChar       = 'o'
	BossChar       = '█'
	BossEye        = '•'
	BulletChar     = '•'
	ParticleChar   = '·'
	HillChar       = '░'
	HealthFullChar = '▬'
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// rect converts a world box to the cells it covers. Non-empty boxes cover
// at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if b.W > 0 {
		x1 = max(x1, x0+1)
	}
	if b.H > 0 {
		y1 = max(y1, y0+1)
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the scene scaled to fit the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sc := g.Scene()
	v := viewport{
		sx: float64(dst.Width()) / sc.Width,
		sy: float64(dst.Height()) / sc.Height,
	}

	g.drawHills(dst, v, sc)

	for _, o := range sc.Obstacles {
		drawObstacle(dst, v, o)
	}
	for _, s := range sc.Stars {
		dst.SetColored(v.col(s.X), v.row(s.Y), StarChar, core.ColorStar)
	}
	for _, r := range sc.Rings {
		dst.SetColored(v.col(r.X), v.row(r.Y), RingChar, core.ColorShield)
	}
	if sc.Boss != nil {
		drawBoss(dst, v, *sc.Boss)
	}
	for _, b := range sc.Projectiles {
		dst.SetColored(v.col(b.X), v.row(b.Y), BulletChar, core.ColorBullet)
	}
	drawFlyer(dst, v, sc.Flyer)
	for _, p := range sc.Particles {
		if p.Alpha < 0.3 {
			continue
		}
		dst.SetColored(v.col(p.X), v.row(p.Y), ParticleChar, p.Color)
	}

	dst.DrawText(1, 0, sc.LevelLabel, core.ColorInk)
	if sc.Banner != "" {
		drawBanner(dst, sc.Banner)
	}
}

// drawHills draws the rolling background strip along the floor.
func (g *Game) drawHills(dst *core.Screen, v viewport, sc core.Scene) {
	t := float64(g.level.Tick)
	for cx := range dst.Width() {
		x := (float64(cx) + 0.5) / v.sx
		top := sc.Height - 40 - math.Sin(t*0.02+x*0.02)*4
		for cy := v.row(top); cy < dst.Height(); cy++ {
			dst.SetColored(cx, cy, HillChar, core.ColorHill)
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, o core.ObstacleShape) {
	top := v.rect(o.Top)
	if top.H > 0 {
		dst.DrawRect(top, PipeChar, core.ColorPipe)
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorPipeCap)
	}
	bottom := v.rect(o.Bottom)
	if bottom.H > 0 {
		dst.DrawRect(bottom, PipeChar, core.ColorPipe)
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorPipeCap)
	}
}

func drawBoss(dst *core.Screen, v viewport, b core.BossPose) {
	body := v.rect(b.Body)
	dst.DrawRect(body, BossChar, core.ColorBoss)
	eyeY := v.row(b.Body.Y + b.Body.H*0.4)
	dst.SetColored(v.col(b.Body.X+b.Body.W*0.3), eyeY, BossEye, core.ColorInk)
	dst.SetColored(v.col(b.Body.X+b.Body.W*0.7), eyeY, BossEye, core.ColorInk)

	// Health bar one row above the body
	barY := body.Y - 1
	filled := int(math.Round(b.Ratio * float64(body.W)))
	dst.DrawHLine(body.X, barY, body.W, HealthFullChar, core.ColorMuted)
	dst.DrawHLine(body.X, barY, filled, HealthFullChar, core.ColorHealth)
}

func drawFlyer(dst *core.Screen, v viewport, f core.FlyerPose) {
	x, y := v.col(f.X), v.row(f.Y)
	dst.SetColored(x, y, FlyerChar, core.ColorFlyer)

	beak := BeakLevel
	switch {
	case f.Tilt <= -0.3:
		beak = BeakUp
	case f.Tilt >= 0.3:
		beak = BeakDown
	}
	dst.SetColored(x+1, y, beak, core.ColorBoss)

	if f.Shielded {
		dst.SetColored(x-1, y, '(', core.ColorShield)
		dst.SetColored(x+2, y, ')', core.ColorShield)
	}
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, text string) {
	w := dst.Width()
	h := dst.Height()
	textW := len([]rune(text))

	boxW := min(textW+4, w)
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorMuted)
	dst.DrawText(boxX+(boxW-textW)/2, boxY+1, text, core.ColorInk)
}
