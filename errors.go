package convex

import "errors"

// Sentinel errors for the convex package.
var (
	// ErrDegenerateHalfPlane is returned when a half-plane has a zero normal (a = b = 0).
	ErrDegenerateHalfPlane = errors.New("convex: degenerate half-plane")

	// ErrNonFiniteHalfPlane is returned when a coefficient is NaN or infinite.
	ErrNonFiniteHalfPlane = errors.New("convex: non-finite half-plane")

	// ErrSingularMatrix is returned when inverting a matrix with zero determinant.
	ErrSingularMatrix = errors.New("convex: singular matrix")

	// ErrEmptyRegion is returned when a region has no interior to draw.
	ErrEmptyRegion = errors.New("convex: empty region")

	// ErrUnboundedRegion is returned when a polygon is requested for a region
	// that is not finite on all four sides.
	ErrUnboundedRegion = errors.New("convex: unbounded region")

	// ErrInvalidViewport is returned for inverted or non-finite viewport bounds.
	ErrInvalidViewport = errors.New("convex: invalid viewport")
)
