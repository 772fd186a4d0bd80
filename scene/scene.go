// Package scene keeps the half-planes of an interactive session and draws
// their intersection.
package scene

import (
	"fmt"
	"slices"

	"github.com/gogpu/convex"
	"github.com/gogpu/convex/plot"
)

// Scene accumulates committed half-planes plus at most one pending
// half-plane defined by an unfinished drag gesture.
//
// A drag starts on a point of the boundary line; the direction from that
// point to the pointer is the outward normal, so the half-plane keeps the
// side the drag moved away from.
//
// Example:
//
//	s := scene.New()
//	s.BeginDrag(convex.V(50, 50))
//	s.Drag(convex.V(60, 50)) // pending: x <= 50
//	s.EndDrag()
//	ring, err := s.Polygon()
//
// A Scene is not safe for concurrent use.
type Scene struct {
	opts options

	// committed only grows.
	committed []convex.HalfPlane
	pending   *convex.HalfPlane

	dragging  bool
	dragStart convex.Vector
	dragEnd   convex.Vector

	// version is incremented on each modification so callers can skip
	// redrawing an unchanged scene.
	version uint64
}

// New creates an empty scene.
func New(opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{opts: o}
}

// Add commits half-planes directly, bypassing the drag gesture.
func (s *Scene) Add(hs ...convex.HalfPlane) {
	if len(hs) == 0 {
		return
	}
	s.committed = append(s.committed, hs...)
	s.version++
}

// BeginDrag starts a gesture at p, discarding any unfinished one.
func (s *Scene) BeginDrag(p convex.Vector) {
	s.dragging = true
	s.dragStart, s.dragEnd = p, p
	s.pending = nil
	s.version++
}

// Drag moves the pointer of the current gesture to p and recomputes the
// pending half-plane. It reports whether a pending half-plane exists
// afterwards. A drag shorter than the scene epsilon keeps the previous
// pending half-plane.
func (s *Scene) Drag(p convex.Vector) bool {
	if !s.dragging {
		return false
	}
	s.dragEnd = p
	s.version++

	d := p.Sub(s.dragStart)
	if d.Length() <= s.opts.epsilon {
		return s.pending != nil
	}
	h, err := convex.Through(s.dragStart, d.Normalize())
	if err != nil {
		return s.pending != nil
	}
	s.pending = &h
	return true
}

// EndDrag finishes the gesture and commits its pending half-plane, if any.
func (s *Scene) EndDrag() (convex.HalfPlane, bool) {
	if !s.dragging {
		return convex.HalfPlane{}, false
	}
	s.dragging = false
	s.version++
	if s.pending == nil {
		return convex.HalfPlane{}, false
	}
	h := *s.pending
	s.pending = nil
	s.committed = append(s.committed, h)
	return h, true
}

// Cancel abandons the current gesture without committing.
func (s *Scene) Cancel() {
	if !s.dragging && s.pending == nil {
		return
	}
	s.dragging = false
	s.pending = nil
	s.version++
}

// Dragging reports whether a gesture is in progress.
func (s *Scene) Dragging() bool { return s.dragging }

// Pending returns the half-plane of the current gesture.
func (s *Scene) Pending() (convex.HalfPlane, bool) {
	if s.pending == nil {
		return convex.HalfPlane{}, false
	}
	return *s.pending, true
}

// Committed returns the number of committed half-planes.
func (s *Scene) Committed() int { return len(s.committed) }

// Version returns a counter that changes whenever the scene does.
func (s *Scene) Version() uint64 { return s.version }

// HalfPlanes returns the committed half-planes followed by the pending one.
func (s *Scene) HalfPlanes() []convex.HalfPlane {
	hs := slices.Clone(s.committed)
	if s.pending != nil {
		hs = append(hs, *s.pending)
	}
	return hs
}

// Viewport returns the padded rectangle regions are clipped to.
func (s *Scene) Viewport() convex.Viewport {
	return s.opts.viewport.Pad(s.opts.padding)
}

// Region intersects all half-planes of the scene.
func (s *Scene) Region() convex.Region {
	hs := s.HalfPlanes()
	r := convex.Intersect(hs)
	convex.Logger().Debug("scene: recompute",
		"halfplanes", len(hs),
		"pending", s.pending != nil,
		"region", r,
	)
	return r
}

// Polygon returns the region clipped to the padded viewport as a
// counter-clockwise ring.
func (s *Scene) Polygon() ([]convex.Vector, error) {
	ring, err := s.Viewport().Clip(s.Region())
	if err != nil {
		return nil, fmt.Errorf("scene: polygon: %w", err)
	}
	return ring, nil
}

// Contains reports whether p lies in the current region.
func (s *Scene) Contains(p convex.Vector) bool {
	return s.Region().Contains(p, s.opts.epsilon)
}

// Draw renders axes, the region and every half-plane onto dst. When the
// region cannot be drawn everything else still is, and the error is
// returned.
func (s *Scene) Draw(dst plot.Surface, p plot.Projection) error {
	th := s.opts.theme

	plot.DrawAxes(dst, p, th.Axis)

	ring, err := s.Polygon()
	if err != nil {
		convex.Logger().Warn("scene: region not drawn", "err", err)
	} else {
		plot.DrawRegion(dst, p, ring, th.Region)
	}

	committed := th.HalfPlane(false)
	for _, h := range s.committed {
		plot.DrawHalfPlane(dst, p, h, committed)
	}

	if s.pending != nil {
		st := th.HalfPlane(true)
		st.NormalLength = 0
		plot.DrawHalfPlane(dst, p, *s.pending, st)
	}
	if s.dragging {
		dst.Line(p.Point(s.dragStart), p.Point(s.dragEnd), th.Normal)
	}

	return err
}
