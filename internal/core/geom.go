// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer cell rectangle used for drawing into a Screen.
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

// Vec2 is a mutable float pair, used for velocities.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned box in world units.
// Y grows downward, so Top <= Bottom.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF creates a box from its four edges.
func NewRectF(left, top, right, bottom float64) RectF {
	return RectF{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// CenterX returns the horizontal midpoint.
func (r RectF) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY returns the vertical midpoint.
func (r RectF) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// Offset moves the box by (dx, dy).
func (r *RectF) Offset(dx, dy float64) {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
}

// OverlapsX reports whether the horizontal extents strictly overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.Right > other.Left && r.Left < other.Right
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
