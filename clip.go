package convex

import (
	"fmt"
	"math"
)

// vertexEpsilon is the distance below which two polygon vertices are
// considered the same point.
const vertexEpsilon = 1e-9

// BoundVertically returns r limited to yMin <= y <= yMax. Both bounds must
// be finite.
//
// The top bound is spliced in front of the left chain and the bottom bound
// after the right chain, and only the edges that reach between the two
// bounds are retained. A bound that lies outside the region leaves the
// region's own top or bottom vertex in place.
func BoundVertically(r Region, yMin, yMax float64) Region {
	bounds := Region{
		left:  []HalfPlane{Horizontal(yMax, false)},
		right: []HalfPlane{Horizontal(yMin, true)},
	}
	return Merge(r, bounds)
}

// BoundHorizontally returns r limited to xMin <= x <= xMax. Both bounds
// must be finite.
//
// The vertical bounds join the left and right chains at the heights where
// they become the deepest edge. Edges that never reach the opposite chain
// inside the bounds are dropped.
func BoundHorizontally(r Region, xMin, xMax float64) Region {
	bounds := Region{
		left:  []HalfPlane{Vertical(xMin, true)},
		right: []HalfPlane{Vertical(xMax, false)},
	}
	return Merge(r, bounds)
}

// Viewport is a finite axis-aligned rectangle in model coordinates.
type Viewport struct {
	XMin, YMin float64
	XMax, YMax float64
}

// Square returns the viewport [lo, hi] x [lo, hi].
func Square(lo, hi float64) Viewport {
	return Viewport{XMin: lo, YMin: lo, XMax: hi, YMax: hi}
}

// Validate returns ErrInvalidViewport for non-finite or inverted bounds.
func (vp Viewport) Validate() error {
	for _, v := range []float64{vp.XMin, vp.YMin, vp.XMax, vp.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrInvalidViewport, v)
		}
	}
	if vp.XMin >= vp.XMax || vp.YMin >= vp.YMax {
		return fmt.Errorf("%w: [%g, %g] x [%g, %g]", ErrInvalidViewport, vp.XMin, vp.XMax, vp.YMin, vp.YMax)
	}
	return nil
}

// Pad returns the viewport grown by d on every side.
func (vp Viewport) Pad(d float64) Viewport {
	return Viewport{
		XMin: vp.XMin - d, YMin: vp.YMin - d,
		XMax: vp.XMax + d, YMax: vp.YMax + d,
	}
}

// Width returns the horizontal extent.
func (vp Viewport) Width() float64 { return vp.XMax - vp.XMin }

// Height returns the vertical extent.
func (vp Viewport) Height() float64 { return vp.YMax - vp.YMin }

// Contains reports whether p lies inside the viewport.
func (vp Viewport) Contains(p Vector) bool {
	return p.X >= vp.XMin && p.X <= vp.XMax && p.Y >= vp.YMin && p.Y <= vp.YMax
}

// Bound returns r bounded on all four sides by the viewport.
func (vp Viewport) Bound(r Region) Region {
	return BoundHorizontally(BoundVertically(r, vp.YMin, vp.YMax), vp.XMin, vp.XMax)
}

// Clip bounds r to the viewport and returns its vertex ring.
func (vp Viewport) Clip(r Region) ([]Vector, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	return ToPolygon(vp.Bound(r))
}

// ToPolygon returns the vertices of a bounded region as a closed ring,
// counter-clockwise with y pointing up. The first vertex is not repeated at
// the end.
//
// The left chain is walked top to bottom and the right chain bottom to top;
// every vertex is the intersection of two consecutive edges, wrapping from
// the last edge back to the first.
//
// Returns ErrUnboundedRegion if r is not finite on all four sides and
// ErrEmptyRegion if r has no interior.
func ToPolygon(r Region) ([]Vector, error) {
	if r.IsEmpty() {
		return nil, ErrEmptyRegion
	}
	if !r.IsBounded() {
		return nil, ErrUnboundedRegion
	}

	edges := make([]HalfPlane, 0, r.NumEdges())
	edges = append(edges, r.left...)
	for i := len(r.right) - 1; i >= 0; i-- {
		edges = append(edges, r.right[i])
	}

	ring := make([]Vector, 0, len(edges))
	prev := edges[len(edges)-1]
	for _, e := range edges {
		p, ok := Intersection(prev, e)
		if !ok {
			return nil, fmt.Errorf("%w: consecutive edges %v and %v do not meet", ErrEmptyRegion, prev, e)
		}
		if n := len(ring); n == 0 || !ring[n-1].Equals(p, vertexEpsilon) {
			ring = append(ring, p)
		}
		prev = e
	}
	if n := len(ring); n > 1 && ring[n-1].Equals(ring[0], vertexEpsilon) {
		ring = ring[:n-1]
	}

	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: %d distinct vertices", ErrEmptyRegion, len(ring))
	}
	return ring, nil
}
