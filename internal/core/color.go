package core

// Color is a palette entry for a screen cell or a drawable.
// Each color maps to a fixed hex value so terminal and browser
// presentations agree.
type Color uint8

// Palette used by the game.
const (
	ColorDefault   Color = iota
	ColorFlyer           // flyer body
	ColorStar            // star power-up, flyer wing, star burst
	ColorPipe            // obstacle body
	ColorPipeCap         // obstacle cap
	ColorShield          // ring pickup, shield halo, ring burst
	ColorBoss            // boss body, flyer beak
	ColorBullet          // boss projectiles
	ColorShieldHit       // burst when a shield absorbs a hit
	ColorHealth          // boss hit-point bar
	ColorInk             // text
	ColorHill            // background hills
	ColorMuted           // hit-point bar background, hints
)

var colorHex = [...]string{
	ColorDefault:   "",
	ColorFlyer:     "#0ea5e9",
	ColorStar:      "#38bdf8",
	ColorPipe:      "#10b981",
	ColorPipeCap:   "#059669",
	ColorShield:    "#22c55e",
	ColorBoss:      "#f59e0b",
	ColorBullet:    "#f97316",
	ColorShieldHit: "#94a3b8",
	ColorHealth:    "#ef4444",
	ColorInk:       "#0f172a",
	ColorHill:      "#bae6fd",
	ColorMuted:     "#e2e8f0",
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if int(c) >= len(colorHex) {
		return ""
	}
	return colorHex[c]
}

// String returns the hex value, or "default".
func (c Color) String() string {
	if h := c.Hex(); h != "" {
		return h
	}
	return "default"
}
