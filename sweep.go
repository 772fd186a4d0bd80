package convex

import "math"

// piece is one edge of a boundary together with the height at which the
// sweep line leaves it. The piece starts where the previous one ends, or at
// +Inf for the first piece.
type piece struct {
	edge   HalfPlane
	bottom float64
}

// boundary is a side of a region written as x = f(y): the non-horizontal
// edges of one chain, top to bottom. The first and last pieces extend
// without limit, which leaves the region's own shape unchanged because its
// chains already cross outside its vertical extent.
type boundary []piece

// boundaryOf returns the non-horizontal edges of the chain on side.
func (r Region) boundaryOf(side Side) boundary {
	edges := r.chain(side)
	lo, hi := 0, len(edges)
	if _, ok := r.ceiling(); ok && side == Left {
		lo++
	}
	if _, ok := r.floor(); ok && side == Right {
		hi--
	}
	if hi <= lo {
		return nil
	}

	b := make(boundary, 0, hi-lo)
	for i := lo; i < hi; i++ {
		bottom := math.Inf(-1)
		if i < hi-1 {
			bottom = r.BottomY(side, i)
		}
		b = append(b, piece{edge: edges[i], bottom: bottom})
	}
	return b
}

// push appends e as the piece ending at bottom, extending the last piece
// instead when it lies on the same line.
func (b boundary) push(e HalfPlane, bottom float64) boundary {
	if n := len(b); n > 0 && b[n-1].edge.sameLine(e) {
		b[n-1].bottom = bottom
		return b
	}
	return append(b, piece{edge: e, bottom: bottom})
}

// within returns the edges whose span overlaps the open interval (lo, hi).
func (b boundary) within(lo, hi float64) []HalfPlane {
	var edges []HalfPlane
	top := math.Inf(1)
	for _, p := range b {
		if p.bottom < hi && top > lo {
			edges = append(edges, p.edge)
		}
		top = p.bottom
	}
	return edges
}

// span is a height interval of the sweep in which one piece of each of two
// boundaries is active.
type span struct {
	lo, hi float64
	p, q   HalfPlane
}

// sweep walks two boundaries from the top down and calls visit for every
// interval between consecutive events, where an event is the lower end of
// an active piece. The walk stops when no finite event remains, or at an
// event that is not a number, which only overflowing input produces.
func sweep(a, b boundary, visit func(span)) {
	i, j := 0, 0
	top := math.Inf(1)
	for {
		pa, pb := a[i], b[j]
		next := math.Min(math.Max(pa.bottom, pb.bottom), top)
		if next < top {
			visit(span{lo: next, hi: top, p: pa.edge, q: pb.edge})
		}
		if math.IsInf(next, -1) || math.IsNaN(next) {
			return
		}
		if pa.bottom >= next {
			i++
		}
		if pb.bottom >= next {
			j++
		}
		top = next
	}
}

// envelope merges two boundaries of the same side into the boundary of
// their intersection: on the left the larger x wins, on the right the
// smaller. Within each sweep interval the two active edges may cross once,
// which splits the interval.
func envelope(a, b boundary, side Side) boundary {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	var out boundary
	sweep(a, b, func(s span) {
		if y, ok := crossing(s.p, s.q); ok && y > s.lo && y < s.hi {
			out = out.push(deeper(s.p, s.q, side, probe(y, s.hi)), y)
			out = out.push(deeper(s.p, s.q, side, probe(s.lo, y)), s.lo)
			return
		}
		out = out.push(deeper(s.p, s.q, side, probe(s.lo, s.hi)), s.lo)
	})
	return out
}

// feasible returns the closed height interval where the left boundary lies
// at or to the left of the right boundary. The width right(y) - left(y) is
// concave in y, so the feasible heights are a single interval.
func feasible(left, right boundary) (lo, hi float64, ok bool) {
	if len(left) == 0 || len(right) == 0 {
		return math.Inf(-1), math.Inf(1), true
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	sweep(left, right, func(s span) {
		// width(y) = slope*y + offset over this interval.
		slope := s.q.slope() - s.p.slope()
		offset := s.q.intercept() - s.p.intercept()

		a, b := s.lo, s.hi
		switch {
		case slope == 0:
			if offset < 0 {
				return
			}
		case slope > 0:
			a = math.Max(a, -offset/slope)
		default:
			b = math.Min(b, -offset/slope)
		}
		if a > b {
			return
		}
		lo = math.Min(lo, a)
		hi = math.Max(hi, b)
	})
	return lo, hi, lo <= hi
}

// crossing returns the height at which two non-horizontal boundary lines
// cross, or false if they never do.
func crossing(p, q HalfPlane) (float64, bool) {
	sp, sq := p.slope(), q.slope()
	if sp == sq {
		return 0, false
	}
	return (q.intercept() - p.intercept()) / (sp - sq), true
}

// deeper returns the edge that bounds the intersection at height y.
// Ties keep p.
func deeper(p, q HalfPlane, side Side, y float64) HalfPlane {
	xp, xq := p.xAt(y), q.xAt(y)
	if side == Left {
		if xq > xp {
			return q
		}
		return p
	}
	if xq < xp {
		return q
	}
	return p
}

// probe returns a height strictly inside (lo, hi).
func probe(lo, hi float64) float64 {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(hi, 1):
		return lo + math.Max(1, math.Abs(lo))
	case math.IsInf(lo, -1):
		return hi - math.Max(1, math.Abs(hi))
	}
	return lo + (hi-lo)/2
}

// intercept returns x of a non-horizontal boundary line at y = 0.
func (h HalfPlane) intercept() float64 {
	return h.c / h.a
}
