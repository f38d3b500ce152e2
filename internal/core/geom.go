// Package core holds the screen buffer, geometry, input and runtime types
// shared by the games and the terminal platform. It imports only the
// standard library.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
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

// RectF is a rectangle in continuous world units.
// Simulations keep positions as float64 and only project to cells when drawing.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal spans of r and other overlap.
// Touching edges do not count as overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// Projection maps world units onto a screen region.
type Projection struct {
	WorldW, WorldH float64
	Cells          Rect
}

// Point converts a world coordinate to a cell coordinate.
func (p Projection) Point(x, y float64) (int, int) {
	cx := p.Cells.X + int(math.Floor(x*float64(p.Cells.W)/p.WorldW))
	cy := p.Cells.Y + int(math.Floor(y*float64(p.Cells.H)/p.WorldH))
	return cx, cy
}

// Rect converts a world rectangle to cells. The result is at least one cell
// wide and tall so small entities stay visible.
func (p Projection) Rect(r RectF) Rect {
	x0, y0 := p.Point(r.X, r.Y)
	x1, y1 := p.Point(r.Right(), r.Bottom())
	return NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
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
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
