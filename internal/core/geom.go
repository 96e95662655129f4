// Package core provides fundamental types and utilities for the frogger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in terminal cells, used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the range is empty and min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// WrapF maps val onto the half-open range [0, size) as on a torus.
// Values exactly at size map to 0 and -1 maps to size-1.
func WrapF(val, size float64) float64 {
	if size <= 0 {
		return val
	}
	w := math.Mod(val, size)
	if w < 0 {
		w += size
	}
	// Mod of a tiny negative value can round up to size itself
	if w >= size {
		w = 0
	}
	return w
}

// WrapI is the integer counterpart of WrapF.
func WrapI(val, size int) int {
	if size <= 0 {
		return val
	}
	w := val % size
	if w < 0 {
		w += size
	}
	return w
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
