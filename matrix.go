package convex

// Matrix2 represents a 2x2 linear map in row-major order:
//
//	| A  B |
//	| C  D |
//
// which maps (x, y) to (A*x + B*y, C*x + D*y).
type Matrix2 struct {
	A, B float64
	C, D float64
}

// Rows creates a matrix from its two rows.
func Rows(r0, r1 Vector) Matrix2 {
	return Matrix2{
		A: r0.X, B: r0.Y,
		C: r1.X, D: r1.Y,
	}
}

// Scale returns the matrix with every entry multiplied by s.
func (m Matrix2) Scale(s float64) Matrix2 {
	return Matrix2{
		A: m.A * s, B: m.B * s,
		C: m.C * s, D: m.D * s,
	}
}

// Apply premultiplies v by the matrix.
func (m Matrix2) Apply(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Det returns the determinant.
func (m Matrix2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// Returns ErrSingularMatrix if the determinant is exactly zero.
func (m Matrix2) Invert() (Matrix2, error) {
	det := m.Det()
	if det == 0 {
		return Matrix2{}, ErrSingularMatrix
	}

	adj := Matrix2{
		A: m.D, B: -m.B,
		C: -m.C, D: m.A,
	}
	return adj.Scale(1 / det), nil
}
