package core

import "math"

// Vec is an immutable 2D vector in canvas units.
// Every operation returns a new value; the receiver is never modified.
type Vec struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec{}

// NewVec creates a vector from its components.
func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + b.
func (v Vec) Add(b Vec) Vec {
	return Vec{X: v.X + b.X, Y: v.Y + b.Y}
}

// Sub returns v - b, defined as v + (-1 * b).
func (v Vec) Sub(b Vec) Vec {
	return v.Add(b.Scale(-1))
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
