package convex

import (
	"math"
	"slices"
	"strings"
)

// Region is the boundary representation of a convex region as two edge
// chains.
//
// Each chain is ordered by the height at which a sweep line moving from top
// to bottom first meets the edge as a boundary of the region. A horizontal
// edge belongs to the left chain when the region lies below it (a top edge)
// and to the right chain when the region lies above it (a bottom edge), so
// a top edge can only open the left chain and a bottom edge can only close
// the right chain.
//
// Regions are immutable values produced by Intersect, Merge and the
// viewport clipper.
type Region struct {
	left, right []HalfPlane
	empty       bool
}

var (
	// R2 is the whole plane: both chains are empty.
	R2 = Region{}

	// Empty is the region with no interior.
	Empty = Region{empty: true}
)

// leaf returns the region bounded by the single half-plane h.
func leaf(h HalfPlane) Region {
	if h.Side() == Left {
		return Region{left: []HalfPlane{h}}
	}
	return Region{right: []HalfPlane{h}}
}

// Left returns a copy of the left chain.
func (r Region) Left() []HalfPlane { return slices.Clone(r.left) }

// Right returns a copy of the right chain.
func (r Region) Right() []HalfPlane { return slices.Clone(r.right) }

// NumEdges returns the total number of edges on both chains.
func (r Region) NumEdges() int { return len(r.left) + len(r.right) }

// IsEmpty reports whether the region is known to have no interior.
func (r Region) IsEmpty() bool { return r.empty }

// IsR2 reports whether the region is the whole plane.
func (r Region) IsR2() bool { return !r.empty && r.NumEdges() == 0 }

func (r Region) chain(side Side) []HalfPlane {
	if side == Left {
		return r.left
	}
	return r.right
}

// BottomY returns the y coordinate of the lower endpoint of edge i of the
// named chain.
//
// If the chain continues, the endpoint is where edge i meets edge i+1.
// Otherwise it is where edge i meets the last edge of the other chain. The
// result is -Inf when the other chain is empty, when that edge is parallel
// or anti-parallel to edge i, or when the two edges move apart going down,
// all of which leave the region unbounded below along edge i.
func (r Region) BottomY(side Side, i int) float64 {
	edges, other := r.chain(side), r.chain(side.Other())

	if i < len(edges)-1 {
		p, ok := Intersection(edges[i], edges[i+1])
		if !ok {
			return math.Inf(-1)
		}
		return p.Y
	}

	if len(other) == 0 {
		return math.Inf(-1)
	}

	e, last := edges[i], other[len(other)-1]
	if e.Parallel(last) || e.AntiParallel(last) || !closesBelow(side, e, last) {
		return math.Inf(-1)
	}
	p, ok := Intersection(e, last)
	if !ok {
		return math.Inf(-1)
	}
	return p.Y
}

// MaxY returns the highest y contained in the region, or +Inf if the region
// is unbounded above, together with the indices of the left and right edges
// that define the bound (-1 when an edge is not involved).
func (r Region) MaxY() (y float64, left, right int) {
	switch {
	case r.empty:
		return math.Inf(-1), -1, -1

	case len(r.left) > 0 && len(r.right) > 0:
		topLeft, topRight := r.left[0], r.right[0]

		if topLeft.AntiParallel(topRight) {
			if topLeft.IsHorizontal() {
				return topLeft.horizontalY(), 0, -1
			}
			return math.Inf(1), -1, -1
		}
		if topLeft.IsHorizontal() {
			return topLeft.horizontalY(), 0, 0
		}
		if topRight.IsHorizontal() || topRight.slope()-topLeft.slope() >= 0 {
			// The first edges move apart going up.
			return math.Inf(1), -1, -1
		}
		p, ok := Intersection(topLeft, topRight)
		if !ok {
			return math.Inf(1), -1, -1
		}
		return p.Y, 0, 0

	case len(r.left) > 0:
		if r.left[0].IsHorizontal() {
			return r.left[0].horizontalY(), 0, -1
		}
		return math.Inf(1), -1, -1

	default:
		return math.Inf(1), -1, -1
	}
}

// MinY returns the lowest y contained in the region, or -Inf if the region is
// unbounded below.
func (r Region) MinY() float64 {
	if r.empty {
		return math.Inf(1)
	}
	if floor, ok := r.floor(); ok {
		return floor.horizontalY()
	}
	if len(r.left) == 0 || len(r.right) == 0 {
		return math.Inf(-1)
	}
	return r.BottomY(Right, len(r.right)-1)
}

// IsBounded reports whether the region is finite on all four sides.
func (r Region) IsBounded() bool {
	if r.empty {
		return false
	}
	top, _, _ := r.MaxY()
	if math.IsInf(top, 0) || math.IsInf(r.MinY(), 0) {
		return false
	}
	return hasSlanted(r.left) && hasSlanted(r.right)
}

// Contains reports whether p satisfies every edge of the region, allowing
// eps of slack.
func (r Region) Contains(p Vector, eps float64) bool {
	if r.empty {
		return false
	}
	for _, e := range r.left {
		if !e.Contains(p, eps) {
			return false
		}
	}
	for _, e := range r.right {
		if !e.Contains(p, eps) {
			return false
		}
	}
	return true
}

// ceiling returns the horizontal top edge, if the region has one.
func (r Region) ceiling() (HalfPlane, bool) {
	if len(r.left) > 0 && r.left[0].IsHorizontal() {
		return r.left[0], true
	}
	return HalfPlane{}, false
}

// floor returns the horizontal bottom edge, if the region has one.
func (r Region) floor() (HalfPlane, bool) {
	if n := len(r.right); n > 0 && r.right[n-1].IsHorizontal() {
		return r.right[n-1], true
	}
	return HalfPlane{}, false
}

func (r Region) String() string {
	switch {
	case r.empty:
		return "Region{empty}"
	case r.IsR2():
		return "Region{R2}"
	}

	var sb strings.Builder
	sb.WriteString("Region{left: [")
	writeEdges(&sb, r.left)
	sb.WriteString("], right: [")
	writeEdges(&sb, r.right)
	sb.WriteString("]}")
	return sb.String()
}

func writeEdges(sb *strings.Builder, edges []HalfPlane) {
	for i, e := range edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
}

// horizontalY returns the height of a horizontal boundary line.
func (h HalfPlane) horizontalY() float64 {
	return h.c / h.b
}

func hasSlanted(edges []HalfPlane) bool {
	for _, e := range edges {
		if !e.IsHorizontal() {
			return true
		}
	}
	return false
}

// closesBelow reports whether edge e of the named chain and the last edge o
// of the other chain meet at the bottom of the region rather than moving
// apart as the sweep line descends.
func closesBelow(side Side, e, o HalfPlane) bool {
	switch {
	case e.IsHorizontal():
		// A bottom edge ends where it is; a lone top edge is handled by the
		// anti-parallel check or meets the right chain at its own height.
		return true
	case o.IsHorizontal():
		// Only a bottom edge (filed on the right) closes a left edge.
		return side == Left
	}

	l, rt := e, o
	if side == Right {
		l, rt = o, e
	}
	// Width of the region shrinks going down when it grows with y.
	return rt.slope()-l.slope() > 0
}
