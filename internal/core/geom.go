// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world units, stored as a center
// point and half-extents. Y grows downward.
type Box struct {
	CX, CY float64 // Center
	HW, HH float64 // Half width, half height
}

// NewBox creates a box from its center and half-extents.
func NewBox(cx, cy, hw, hh float64) Box {
	return Box{CX: cx, CY: cy, HW: hw, HH: hh}
}

// BoxFromCorner creates a box from its top-left corner and full size.
func BoxFromCorner(x, y, w, h float64) Box {
	return Box{CX: x + w/2, CY: y + h/2, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.HH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.HH }

// Intersects returns true if the two boxes overlap with positive area.
// Touching edges do not count as an overlap.
func (b Box) Intersects(o Box) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Top() >= o.Bottom() || o.Top() >= b.Bottom() {
		return false
	}
	return true
}

// Penetration returns how deep b overlaps o along each axis.
// Both values are positive when the boxes intersect.
func (b Box) Penetration(o Box) (dx, dy float64) {
	dx = math.Min(b.Right(), o.Right()) - math.Max(b.Left(), o.Left())
	dy = math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Top(), o.Top())
	return dx, dy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
