package plot

import (
	"math"
	"testing"

	"github.com/gogpu/convex"
)

// Verify at compile time that both surfaces implement Surface.
var (
	_ Surface = (*Raster)(nil)
	_ Surface = (*SVG)(nil)
	_ Surface = (*recorder)(nil)
)

type recordedLine struct {
	p0, p1 convex.Vector
	style  Style
}

type recordedText struct {
	p     convex.Vector
	text  string
	style Style
}

// recorder is a Surface that remembers every call.
type recorder struct {
	lines    []recordedLine
	polygons [][]convex.Vector
	texts    []recordedText
}

func (r *recorder) Line(p0, p1 convex.Vector, s Style) {
	r.lines = append(r.lines, recordedLine{p0, p1, s})
}

func (r *recorder) Polygon(ring []convex.Vector, s Style) {
	r.polygons = append(r.polygons, append([]convex.Vector(nil), ring...))
}

func (r *recorder) Text(p convex.Vector, text string, s Style) {
	r.texts = append(r.texts, recordedText{p, text, s})
}

func mustProjection(t *testing.T, width, height int, lo, hi float64) Projection {
	t.Helper()
	p, err := NewProjection(width, height, lo, hi)
	if err != nil {
		t.Fatalf("NewProjection(%d, %d, %v, %v) error = %v", width, height, lo, hi, err)
	}
	return p
}

func assertVectorNear(t *testing.T, got, want convex.Vector) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}
