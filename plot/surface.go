package plot

import (
	"github.com/gogpu/convex"
	"github.com/gogpu/convex/internal/clip"
)

// Surface is a drawing target in pixel coordinates, y pointing down.
//
// Implementations ignore the parts of a Style that do not apply: Line only
// strokes, Text only fills.
type Surface interface {
	Line(p0, p1 convex.Vector, s Style)
	Polygon(ring []convex.Vector, s Style)
	Text(p convex.Vector, text string, s Style)
}

func toClip(v convex.Vector) clip.Point {
	return clip.Pt(v.X, v.Y)
}

func fromClip(p clip.Point) convex.Vector {
	return convex.V(p.X, p.Y)
}
