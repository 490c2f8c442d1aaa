// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned square centred on a point, in world coordinates.
// Used for home arrival and enemy hit detection.
type Box struct {
	CX, CY float64 // Centre
	Size   float64 // Side length
}

// SquareAt creates a box of the given side length centred on (x, y).
func SquareAt(x, y, size float64) Box {
	return Box{CX: x, CY: y, Size: size}
}

// Min returns the top-left corner.
func (b Box) Min() (float64, float64) {
	return b.CX - b.Size/2, b.CY - b.Size/2
}

// Max returns the bottom-right corner.
func (b Box) Max() (float64, float64) {
	return b.CX + b.Size/2, b.CY + b.Size/2
}

// Contains reports whether (x, y) lies inside the box.
// Both bounds are inclusive on both axes.
func (b Box) Contains(x, y float64) bool {
	x1, y1 := b.Min()
	x2, y2 := b.Max()
	return x1 <= x && x <= x2 && y1 <= y && y <= y2
}

// Within reports whether the whole box lies inside [0, w] x [0, h].
func (b Box) Within(w, h float64) bool {
	x1, y1 := b.Min()
	x2, y2 := b.Max()
	return x1 >= 0 && y1 >= 0 && x2 <= w && y2 <= h
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
