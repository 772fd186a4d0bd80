package plot

import (
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/convex"
)

// SVG is a Surface that writes SVG elements to a stream. Coordinates are
// rounded to whole pixels.
type SVG struct {
	canvas *svg.SVG
	closed bool
}

// NewSVG starts an SVG document of the given size on w and paints the
// background.
func NewSVG(w io.Writer, width, height int, background RGBA) *SVG {
	s := &SVG{canvas: svg.New(w)}
	s.canvas.Start(width, height)
	if background.IsVisible() {
		s.canvas.Rect(0, 0, width, height, css(Style{Fill: background}))
	}
	return s
}

// Line strokes the segment p0-p1.
func (s *SVG) Line(p0, p1 convex.Vector, st Style) {
	if !st.Stroked() {
		return
	}
	s.canvas.Line(round(p0.X), round(p0.Y), round(p1.X), round(p1.Y), css(Style{Stroke: st.Stroke, Width: st.Width}))
}

// Polygon fills and strokes a closed ring.
func (s *SVG) Polygon(ring []convex.Vector, st Style) {
	if len(ring) < 3 || !(st.Filled() || st.Stroked()) {
		return
	}
	xs := make([]int, len(ring))
	ys := make([]int, len(ring))
	for i, p := range ring {
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	s.canvas.Polygon(xs, ys, css(st))
}

// Text writes a label with its baseline at p.
func (s *SVG) Text(p convex.Vector, text string, st Style) {
	if text == "" || !st.Fill.IsVisible() {
		return
	}
	size := st.FontSize
	if size <= 0 {
		size = 10
	}
	style := css(Style{Fill: st.Fill}) +
		";font-family:sans-serif;font-size:" + formatFloat(size) + "px" +
		";text-anchor:" + st.Align.String()
	s.canvas.Text(round(p.X), round(p.Y), text, style)
}

// Close ends the document. Further drawing is invalid.
func (s *SVG) Close() error {
	if !s.closed {
		s.canvas.End()
		s.closed = true
	}
	return nil
}

// css renders the drawable parts of st as an inline style declaration.
func css(st Style) string {
	var b strings.Builder
	if st.Filled() {
		b.WriteString("fill:" + st.Fill.Hex())
		if st.Fill.A < 1 {
			b.WriteString(";fill-opacity:" + formatFloat(st.Fill.A))
		}
	} else {
		b.WriteString("fill:none")
	}
	if st.Stroked() {
		b.WriteString(";stroke:" + st.Stroke.Hex())
		b.WriteString(";stroke-width:" + formatFloat(st.Width))
		if st.Stroke.A < 1 {
			b.WriteString(";stroke-opacity:" + formatFloat(st.Stroke.A))
		}
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func round(v float64) int {
	return int(math.Round(v))
}
