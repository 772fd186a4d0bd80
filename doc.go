// Package convex computes the intersection of half-planes in the plane and
// clips the resulting convex region to a viewport for drawing.
//
// # Overview
//
// A [HalfPlane] is the set of points with a*x + b*y <= c. [Intersect] turns
// a list of half-planes into a [Region] by divide and conquer: the list is
// split in half, both halves are intersected recursively and the results
// are combined with [Merge].
//
//	hs := []convex.HalfPlane{
//	    convex.Vertical(10, true),    // x >= 10
//	    convex.Vertical(60, false),   // x <= 60
//	    convex.Horizontal(10, true),  // y >= 10
//	    convex.Horizontal(60, false), // y <= 60
//	}
//	r := convex.Intersect(hs)
//	ring, err := convex.Square(-100, 200).Clip(r)
//
// # Regions
//
// A region is stored as two edge chains rather than a vertex list. The left
// chain holds the edges bounding the region from the left, and the right
// chain those bounding it from the right, each ordered top to bottom. A
// horizontal top edge opens the left chain and a horizontal bottom edge
// closes the right chain. [R2] is the whole plane and [Empty] the region
// with no interior.
//
// Regions may be unbounded. [ToPolygon] only accepts bounded regions, so
// callers bound a region with [BoundVertically] and [BoundHorizontally], or
// with [Viewport.Clip], before drawing it.
//
// # Coordinate System
//
// Model coordinates with y pointing up. Polygons are returned
// counter-clockwise in that system; the plot package flips y when
// projecting to pixels.
//
// # Concurrency
//
// All values are immutable and every operation returns new values, so
// regions and half-planes may be shared freely. The package holds no state
// between calls apart from the logger.
package convex
