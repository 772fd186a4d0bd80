package convex

import (
	"fmt"
	"math"
)

// Vector represents a 2D point or displacement in model coordinates.
// Vectors are values: every method returns a new Vector.
type Vector struct {
	X, Y float64
}

// V is a convenience function to create a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.Div(length)
}

// Equals reports whether both components differ by at most eps.
// An eps of 0 requests exact equality.
func (v Vector) Equals(w Vector, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether both components are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
