package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/convex"
	"github.com/gogpu/convex/internal/clip"
)

// AxisPadding is the margin in pixels kept free around the plot area for
// axis labels.
const AxisPadding = 30

// ErrInvalidProjection is returned when the pixel size leaves no room for
// the plot area or the model domain is empty.
var ErrInvalidProjection = errors.New("plot: invalid projection")

// linear maps the interval [d0, d1] onto [r0, r1].
type linear struct {
	d0, d1 float64
	r0, r1 float64
}

func (s linear) apply(v float64) float64 {
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

func (s linear) invert(p float64) float64 {
	return s.d0 + (p-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

// Projection maps model coordinates (y up) to pixel coordinates (y down).
//
// The model domain [lo, hi] is stretched over the longer pixel side of the
// plot area and truncated on the shorter side, so one model unit covers
// the same number of pixels in both directions.
type Projection struct {
	width, height int
	x, y          linear
}

// NewProjection creates a projection for a width x height pixel target
// showing the model domain [lo, hi] on its longer side.
func NewProjection(width, height int, lo, hi float64) (Projection, error) {
	w, h := float64(width), float64(height)
	if w <= 2*AxisPadding || h <= 2*AxisPadding {
		return Projection{}, fmt.Errorf("%w: size %dx%d leaves no plot area", ErrInvalidProjection, width, height)
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Projection{}, fmt.Errorf("%w: domain [%g, %g]", ErrInvalidProjection, lo, hi)
	}

	portrait := h > w
	aspect := (w - 2*AxisPadding) / (h - 2*AxisPadding)

	tx, ty := 1.0, 1/aspect
	if portrait {
		tx, ty = aspect, 1
	}

	return Projection{
		width:  width,
		height: height,
		x:      linear{d0: tx * lo, d1: tx * hi, r0: AxisPadding, r1: w - AxisPadding},
		y:      linear{d0: ty * lo, d1: ty * hi, r0: h - AxisPadding, r1: AxisPadding},
	}, nil
}

// Size returns the pixel size of the target.
func (p Projection) Size() (width, height int) {
	return p.width, p.height
}

// X maps a model x to a pixel column.
func (p Projection) X(x float64) float64 { return p.x.apply(x) }

// Y maps a model y to a pixel row.
func (p Projection) Y(y float64) float64 { return p.y.apply(y) }

// InvertX maps a pixel column back to model x.
func (p Projection) InvertX(px float64) float64 { return p.x.invert(px) }

// InvertY maps a pixel row back to model y.
func (p Projection) InvertY(py float64) float64 { return p.y.invert(py) }

// DX converts a model length along x to pixels.
func (p Projection) DX(d float64) float64 {
	return d * math.Abs(p.x.apply(1)-p.x.apply(0))
}

// DY converts a model length along y to pixels.
func (p Projection) DY(d float64) float64 {
	return d * math.Abs(p.y.apply(1)-p.y.apply(0))
}

// Point maps a model point to pixels.
func (p Projection) Point(v convex.Vector) convex.Vector {
	return convex.V(p.X(v.X), p.Y(v.Y))
}

// InvertPoint maps a pixel position back to model coordinates.
func (p Projection) InvertPoint(px convex.Vector) convex.Vector {
	return convex.V(p.InvertX(px.X), p.InvertY(px.Y))
}

// Direction maps a model direction to a pixel direction. The result is
// not normalized.
func (p Projection) Direction(d convex.Vector) convex.Vector {
	return convex.V(p.DX(d.X), -p.DY(d.Y))
}

// Domain returns the model rectangle shown inside the axis padding.
func (p Projection) Domain() convex.Viewport {
	return convex.Viewport{XMin: p.x.d0, YMin: p.y.d0, XMax: p.x.d1, YMax: p.y.d1}
}

// Visible returns the model rectangle covered by the whole target,
// padding included.
func (p Projection) Visible() convex.Viewport {
	return convex.Viewport{
		XMin: p.InvertX(0),
		YMin: p.InvertY(float64(p.height)),
		XMax: p.InvertX(float64(p.width)),
		YMax: p.InvertY(0),
	}
}

// frame returns the pixel rectangle of the whole target.
func (p Projection) frame() clip.Rect {
	return clip.NewRect(0, 0, float64(p.width), float64(p.height))
}
