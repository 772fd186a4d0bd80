package convex

import (
	"fmt"
	"math"
)

// Side names one of the two edge chains of a Region.
type Side int

const (
	// Left is the chain bounding a region from the left, plus its top edge.
	Left Side = iota
	// Right is the chain bounding a region from the right, plus its bottom edge.
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// HalfPlane is the set of points (x, y) such that a*x + b*y <= c.
// The zero value is not a valid half-plane; use NewHalfPlane or one of the
// named constructors.
type HalfPlane struct {
	a, b, c float64
	perp    Vector
}

// NewHalfPlane creates the half-plane a*x + b*y <= c.
// Returns ErrNonFiniteHalfPlane when a coefficient is NaN or infinite and
// ErrDegenerateHalfPlane when a and b are both zero.
func NewHalfPlane(a, b, c float64) (HalfPlane, error) {
	if !V(a, b).IsFinite() || math.IsNaN(c) || math.IsInf(c, 0) {
		return HalfPlane{}, fmt.Errorf("%w: %g*x + %g*y <= %g", ErrNonFiniteHalfPlane, a, b, c)
	}
	if a == 0 && b == 0 {
		return HalfPlane{}, ErrDegenerateHalfPlane
	}
	return HalfPlane{a: a, b: b, c: c, perp: V(a, b).Normalize()}, nil
}

// MustHalfPlane is like NewHalfPlane but panics instead of returning an
// error.
// Intended for literals in tests and demos.
func MustHalfPlane(a, b, c float64) HalfPlane {
	h, err := NewHalfPlane(a, b, c)
	if err != nil {
		panic(err)
	}
	return h
}

// Horizontal returns a half-plane bounded by the line y' = y.
// When below is true the line is the lower boundary (y' >= y),
// otherwise it is the upper boundary (y' <= y). It panics if y is not
// finite.
func Horizontal(y float64, below bool) HalfPlane {
	if below {
		return MustHalfPlane(0, -1, -y)
	}
	return MustHalfPlane(0, 1, y)
}

// Vertical returns a half-plane bounded by the line x' = x.
// When left is true the line is the left boundary (x' >= x),
// otherwise it is the right boundary (x' <= x). It panics if x is not
// finite.
func Vertical(x float64, left bool) HalfPlane {
	if left {
		return MustHalfPlane(-1, 0, -x)
	}
	return MustHalfPlane(1, 0, x)
}

// Through returns the half-plane whose boundary passes through p with the
// given outward normal. The normal does not need to be unit length.
func Through(p, normal Vector) (HalfPlane, error) {
	return NewHalfPlane(normal.X, normal.Y, normal.Dot(p))
}

// A returns the x coefficient.
func (h HalfPlane) A() float64 { return h.a }

// B returns the y coefficient.
func (h HalfPlane) B() float64 { return h.b }

// C returns the right-hand side.
func (h HalfPlane) C() float64 { return h.c }

// Perp returns the outward unit normal.
func (h HalfPlane) Perp() Vector { return h.perp }

// IsHorizontal reports whether the boundary line is horizontal.
func (h HalfPlane) IsHorizontal() bool { return h.a == 0 }

// IsVertical reports whether the boundary line is vertical.
func (h HalfPlane) IsVertical() bool { return h.b == 0 }

// Gradient returns the slope dy/dx of the boundary line.
// Vertical lines yield an infinity.
func (h HalfPlane) Gradient() float64 {
	return -h.a / h.b
}

// Parallel reports whether both half-planes have the same outward normal.
func (h HalfPlane) Parallel(o HalfPlane) bool {
	return h.perp.Equals(o.perp, 0)
}

// AntiParallel reports whether the outward normals are exact negations.
func (h HalfPlane) AntiParallel(o HalfPlane) bool {
	return h.perp.Equals(o.perp.Neg(), 0)
}

// Side returns the chain a lone half-plane is filed on: Left for a
// horizontal edge with the region below it or a non-horizontal edge facing
// left, Right otherwise.
func (h HalfPlane) Side() Side {
	if h.IsHorizontal() {
		if h.b > 0 {
			return Left
		}
		return Right
	}
	if h.a < 0 {
		return Left
	}
	return Right
}

// Distance returns the signed distance from p to the boundary line,
// negative inside the half-plane.
func (h HalfPlane) Distance(p Vector) float64 {
	return (h.a*p.X + h.b*p.Y - h.c) / math.Hypot(h.a, h.b)
}

// Contains reports whether p lies inside the half-plane, allowing eps of
// slack outside the boundary.
func (h HalfPlane) Contains(p Vector, eps float64) bool {
	return h.Distance(p) <= eps
}

// Anchor returns the point of the boundary line closest to the origin.
func (h HalfPlane) Anchor() Vector {
	return h.perp.Mul(h.c / math.Hypot(h.a, h.b))
}

// Direction returns a unit vector along the boundary line.
func (h HalfPlane) Direction() Vector {
	return V(-h.b, h.a).Normalize()
}

// sameLine reports whether both half-planes describe the same constraint.
func (h HalfPlane) sameLine(o HalfPlane) bool {
	return h.Parallel(o) && h.offset() == o.offset()
}

// offset is c scaled to a unit normal.
func (h HalfPlane) offset() float64 {
	return h.c / math.Hypot(h.a, h.b)
}

// xAt returns the x coordinate of the boundary line at height y.
// Only meaningful for non-horizontal half-planes.
func (h HalfPlane) xAt(y float64) float64 {
	return (h.c - h.b*y) / h.a
}

// yAt returns the y coordinate of the boundary line at x.
// Only meaningful for non-vertical half-planes.
func (h HalfPlane) yAt(x float64) float64 {
	return (h.c - h.a*x) / h.b
}

// slope returns dx/dy of the boundary line, the rate at which a
// non-horizontal edge moves sideways as the sweep line descends.
func (h HalfPlane) slope() float64 {
	return -h.b / h.a
}

func (h HalfPlane) String() string {
	return fmt.Sprintf("%gx + %gy <= %g", h.a, h.b, h.c)
}

// Intersection returns the point where the boundary lines of h1 and h2 meet.
// Parallel lines have no point intersection and yield false.
func Intersection(h1, h2 HalfPlane) (Vector, bool) {
	m := Rows(V(h1.a, h1.b), V(h2.a, h2.b))
	inv, err := m.Invert()
	if err != nil {
		return Vector{}, false
	}
	return inv.Apply(V(h1.c, h2.c)), true
}
