// Package core provides fundamental types and utilities for skyflyer.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Circle is a circle in world units, centered on (X, Y).
type Circle struct {
	X, Y float64
	R    float64
}

// Box is an axis-aligned rectangle in world units. (X, Y) is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CirclesOverlap reports whether two circles touch or overlap.
// Touching counts: the test is distance <= sum of radii.
func CirclesOverlap(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := a.R + b.R
	return dx*dx+dy*dy <= r*r
}

// CircleBoxOverlap reports whether a circle touches or overlaps a box.
// Uses the point of the box nearest to the circle center.
func CircleBoxOverlap(c Circle, b Box) bool {
	nearestX := ClampF(c.X, b.X, b.Right())
	nearestY := ClampF(c.Y, b.Y, b.Bottom())
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy <= c.R*c.R
}

// BoxCircleOverlap is CircleBoxOverlap with the arguments swapped.
func BoxCircleOverlap(b Box, c Circle) bool {
	return CircleBoxOverlap(c, b)
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// If hi < lo the range collapses to lo.
func ClampF(val, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
