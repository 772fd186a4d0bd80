package convex

import "math"

// Intersect returns the intersection of the given half-planes.
//
// The list is split in half, each half is intersected recursively and the
// two regions are combined with Merge. No half-plane is modified and the
// input slice is only read. An empty list yields R2.
func Intersect(halfPlanes []HalfPlane) Region {
	r := intersectRange(halfPlanes, 0, len(halfPlanes))
	Logger().Debug("convex: intersect", "halfplanes", len(halfPlanes), "region", r)
	return r
}

// intersectRange intersects halfPlanes[lo:hi]. The first half receives the
// extra element when the range has odd length.
func intersectRange(halfPlanes []HalfPlane, lo, hi int) Region {
	switch hi - lo {
	case 0:
		return R2
	case 1:
		return leaf(halfPlanes[lo])
	}

	mid := lo + (hi-lo+1)/2
	c1 := intersectRange(halfPlanes, lo, mid)
	c2 := intersectRange(halfPlanes, mid, hi)
	return Merge(c1, c2)
}

// Merge returns the intersection of two convex regions.
//
// Two single-edge regions with parallel or anti-parallel boundaries are
// combined directly. Every other pair is combined by sweeping a horizontal
// line from the top down over the boundaries of both regions, keeping the
// deeper of the two active edges on each side, and trimming the result to
// the heights where its left side stays left of its right side.
func Merge(c1, c2 Region) Region {
	switch {
	case c1.empty || c2.empty:
		return Empty
	case c1.IsR2():
		return c2
	case c2.IsR2():
		return c1
	}

	if c1.NumEdges() == 1 && c2.NumEdges() == 1 {
		if r, ok := mergeSingles(c1.only(), c2.only()); ok {
			return r
		}
	}
	return mergeSweep(c1, c2)
}

// only returns the sole edge of a single-edge region.
func (r Region) only() HalfPlane {
	if len(r.left) > 0 {
		return r.left[0]
	}
	return r.right[0]
}

// mergeSingles handles two lone half-planes whose boundaries never cross.
func mergeSingles(h1, h2 HalfPlane) (Region, bool) {
	switch {
	case h1.Parallel(h2):
		return leaf(tighter(h1, h2)), true
	case h1.AntiParallel(h2):
		// Kept even when the strip between them is empty.
		if h1.Side() == Left {
			return Region{left: []HalfPlane{h1}, right: []HalfPlane{h2}}, true
		}
		return Region{left: []HalfPlane{h2}, right: []HalfPlane{h1}}, true
	}
	return Region{}, false
}

// tighter returns whichever of two parallel half-planes is contained in the
// other.
func tighter(h1, h2 HalfPlane) HalfPlane {
	if h1.IsVertical() {
		x1, x2 := h1.c/h1.a, h2.c/h2.a
		if h1.a < 0 {
			// x >= x1: the larger bound wins.
			if x1 >= x2 {
				return h1
			}
			return h2
		}
		if x1 <= x2 {
			return h1
		}
		return h2
	}

	// Sample both lines at x = 0. h1 is the tighter one when its outward
	// normal points toward the sample on h2.
	s1 := V(0, h1.yAt(0))
	s2 := V(0, h2.yAt(0))
	if h1.perp.Dot(s2.Sub(s1)) >= 0 {
		return h1
	}
	return h2
}

// mergeSweep is the general case of Merge.
func mergeSweep(c1, c2 Region) Region {
	left := envelope(c1.boundaryOf(Left), c2.boundaryOf(Left), Left)
	right := envelope(c1.boundaryOf(Right), c2.boundaryOf(Right), Right)

	lo, hi, ok := feasible(left, right)
	if !ok {
		return Empty
	}

	// Neither region reaches above its own MaxY or below its own MinY.
	y1, _, _ := c1.MaxY()
	y2, _, _ := c2.MaxY()
	top := math.Min(hi, math.Min(y1, y2))
	bottom := math.Max(lo, math.Max(c1.MinY(), c2.MinY()))
	if !(top > bottom) {
		return Empty
	}

	var merged Region
	if ceiling, ok := lowerCeiling(c1, c2); ok && ceiling.horizontalY() < hi {
		merged.left = append(merged.left, ceiling)
	}
	merged.left = append(merged.left, left.within(bottom, top)...)
	merged.right = append(merged.right, right.within(bottom, top)...)
	if floor, ok := higherFloor(c1, c2); ok && floor.horizontalY() > lo {
		merged.right = append(merged.right, floor)
	}
	return merged
}

// lowerCeiling returns the lower of the two regions' top edges.
func lowerCeiling(c1, c2 Region) (HalfPlane, bool) {
	t1, ok1 := c1.ceiling()
	t2, ok2 := c2.ceiling()
	switch {
	case ok1 && ok2:
		if t2.horizontalY() < t1.horizontalY() {
			return t2, true
		}
		return t1, true
	case ok1:
		return t1, true
	}
	return t2, ok2
}

// higherFloor returns the higher of the two regions' bottom edges.
func higherFloor(c1, c2 Region) (HalfPlane, bool) {
	f1, ok1 := c1.floor()
	f2, ok2 := c2.floor()
	switch {
	case ok1 && ok2:
		if f2.horizontalY() > f1.horizontalY() {
			return f2, true
		}
		return f1, true
	case ok1:
		return f1, true
	}
	return f2, ok2
}
