// Package core provides fundamental types and utilities for the scene platform.
// It contains no external UI dependencies (especially no Bubble Tea) to keep
// scene logic pure and testable.
package core

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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FRect is a rectangle in world units (the coordinate space physics runs in).
type FRect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// Projection maps world units onto screen cells.
type Projection struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// X converts a world x-coordinate to a screen column.
func (p Projection) X(wx float64) int {
	if p.WorldW <= 0 {
		return 0
	}
	return int(wx * float64(p.ScreenW) / p.WorldW)
}

// Y converts a world y-coordinate to a screen row.
func (p Projection) Y(wy float64) int {
	if p.WorldH <= 0 {
		return 0
	}
	return int(wy * float64(p.ScreenH) / p.WorldH)
}

// Rect converts a world rectangle to screen cells. Non-empty world rectangles
// always cover at least one cell.
func (p Projection) Rect(r FRect) Rect {
	x, y := p.X(r.X), p.Y(r.Y)
	w := Max(p.X(r.Right())-x, 1)
	h := Max(p.Y(r.Bottom())-y, 1)
	return NewRect(x, y, w, h)
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
