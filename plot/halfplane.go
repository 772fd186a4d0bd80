package plot

import (
	"github.com/gogpu/convex"
	"github.com/gogpu/convex/internal/clip"
)

// HalfPlaneStyle describes how DrawHalfPlane renders one half-plane.
type HalfPlaneStyle struct {
	Line         Style
	Shade        Style
	ShadeWidth   float64
	Normal       Style
	NormalLength float64
}

// HalfPlane returns the style for a committed half-plane, or for the one
// being dragged when pending is true.
func (t Theme) HalfPlane(pending bool) HalfPlaneStyle {
	st := HalfPlaneStyle{
		Line:         t.Boundary,
		Shade:        t.Shade,
		ShadeWidth:   t.ShadeWidth,
		Normal:       t.Normal,
		NormalLength: t.NormalLength,
	}
	if pending {
		st.Line = t.Pending
	}
	return st
}

// DrawHalfPlane draws the boundary line of h across the whole target, a
// band on its inner side and a marker along its outward normal. It
// reports false when the line misses the target.
func DrawHalfPlane(s Surface, p Projection, h convex.HalfPlane, st HalfPlaneStyle) bool {
	anchor := p.Point(h.Anchor())
	dir := p.Direction(h.Direction())

	seg, ok := clip.NewClipper(p.frame()).ClipLine(toClip(anchor), toClip(dir))
	if !ok {
		return false
	}
	a, b := fromClip(seg.P0), fromClip(seg.P1)
	out := p.Direction(h.Perp()).Normalize()

	if st.ShadeWidth > 0 {
		in := out.Neg().Mul(st.ShadeWidth)
		s.Polygon([]convex.Vector{a, b, b.Add(in), a.Add(in)}, st.Shade)
	}
	s.Line(a, b, st.Line)
	if st.NormalLength > 0 {
		mid := a.Add(b).Mul(0.5)
		s.Line(mid, mid.Add(out.Mul(st.NormalLength)), st.Normal)
	}
	return true
}

// DrawRegion projects a model-space ring and draws it as one polygon.
func DrawRegion(s Surface, p Projection, ring []convex.Vector, st Style) {
	px := make([]convex.Vector, len(ring))
	for i, v := range ring {
		px[i] = p.Point(v)
	}
	s.Polygon(px, st)
}
