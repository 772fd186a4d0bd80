package clip

import "math"

// Clipper cuts segments and lines against a rectangular window.
type Clipper struct {
	clip Rect
}

// NewClipper creates a clipper for the given window.
func NewClipper(clip Rect) *Clipper {
	return &Clipper{clip: clip}
}

// Rect returns the clip window.
func (c *Clipper) Rect() Rect {
	return c.clip
}

// Outcode constants for Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode computes the Cohen-Sutherland outcode for a point.
func (c *Clipper) outcode(p Point) int {
	code := outcodeInside

	if p.X < c.clip.X {
		code |= outcodeLeft
	} else if p.X > c.clip.Right() {
		code |= outcodeRight
	}

	if p.Y < c.clip.Y {
		code |= outcodeTop
	} else if p.Y > c.clip.Bottom() {
		code |= outcodeBottom
	}

	return code
}

// ClipSegment clips the segment p0-p1 to the window using the
// Cohen-Sutherland algorithm. The second result is false when no part of
// the segment lies inside. The clipped segment keeps the direction p0 to p1.
func (c *Clipper) ClipSegment(p0, p1 Point) (Segment, bool) {
	code0 := c.outcode(p0)
	code1 := c.outcode(p1)

	for {
		if (code0 | code1) == 0 {
			return Segment{P0: p0, P1: p1}, true
		}
		if (code0 & code1) != 0 {
			// Both outside the same boundary
			return Segment{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case (codeOut & outcodeTop) != 0:
			p = p0.Lerp(p1, (c.clip.Y-p0.Y)/(p1.Y-p0.Y))
			p.Y = c.clip.Y
		case (codeOut & outcodeBottom) != 0:
			p = p0.Lerp(p1, (c.clip.Bottom()-p0.Y)/(p1.Y-p0.Y))
			p.Y = c.clip.Bottom()
		case (codeOut & outcodeRight) != 0:
			p = p0.Lerp(p1, (c.clip.Right()-p0.X)/(p1.X-p0.X))
			p.X = c.clip.Right()
		case (codeOut & outcodeLeft) != 0:
			p = p0.Lerp(p1, (c.clip.X-p0.X)/(p1.X-p0.X))
			p.X = c.clip.X
		}

		if codeOut == code0 {
			p0 = p
			code0 = c.outcode(p0)
		} else {
			p1 = p
			code1 = c.outcode(p1)
		}
	}
}

// ClipLine clips the infinite line through anchor with direction dir to the
// window (Liang-Barsky with an unbounded parameter range). The returned
// segment runs along dir. The second result is false when the line misses
// the window or dir is zero.
func (c *Clipper) ClipLine(anchor, dir Point) (Segment, bool) {
	if dir.X == 0 && dir.Y == 0 {
		return Segment{}, false
	}

	t0, t1 := math.Inf(-1), math.Inf(1)
	edges := [4]struct{ p, q float64 }{
		{-dir.X, anchor.X - c.clip.X},
		{dir.X, c.clip.Right() - anchor.X},
		{-dir.Y, anchor.Y - c.clip.Y},
		{dir.Y, c.clip.Bottom() - anchor.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			// Parallel to this boundary
			if e.q < 0 {
				return Segment{}, false
			}
			continue
		}
		r := e.q / e.p
		if e.p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if t0 > t1 {
		return Segment{}, false
	}

	return Segment{P0: anchor.Add(dir.Mul(t0)), P1: anchor.Add(dir.Mul(t1))}, true
}
