package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/convex"
	"github.com/gogpu/convex/internal/clip"
)

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

// loadLabelFont parses the embedded Go Regular font once per process.
func loadLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Raster is a Surface that draws anti-aliased shapes into an RGBA image.
type Raster struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	clip  *clip.Clipper
	faces map[float64]font.Face
}

// NewRaster creates a raster surface of the given size filled with
// background.
func NewRaster(width, height int, background RGBA) *Raster {
	r := &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:   vector.NewRasterizer(width, height),
		faces: make(map[float64]font.Face),
	}
	r.clip = clip.NewClipper(clip.NewRect(0, 0, float64(width), float64(height)))
	r.Clear(background)
	return r
}

// Image returns the backing image. It is shared, not copied.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the whole image with c, replacing its contents.
func (r *Raster) Clear(c RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Line strokes the segment p0-p1. The segment is clipped to the image
// first, so far-away endpoints are fine.
func (r *Raster) Line(p0, p1 convex.Vector, s Style) {
	if !s.Stroked() {
		return
	}
	r.begin()
	if !r.addStroke(p0, p1, s.Width) {
		return
	}
	r.paint(s.Stroke)
}

// Polygon fills and then strokes a closed ring.
func (r *Raster) Polygon(ring []convex.Vector, s Style) {
	if len(ring) < 2 {
		return
	}
	if s.Filled() && len(ring) >= 3 {
		r.begin()
		r.ras.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			r.ras.LineTo(float32(p.X), float32(p.Y))
		}
		r.ras.ClosePath()
		r.paint(s.Fill)
	}
	if s.Stroked() {
		r.begin()
		drawn := false
		for i, p := range ring {
			if r.addStroke(p, ring[(i+1)%len(ring)], s.Width) {
				drawn = true
			}
		}
		if drawn {
			r.paint(s.Stroke)
		}
	}
}

// Text draws a label with its baseline at p, aligned by s.Align.
func (r *Raster) Text(p convex.Vector, text string, s Style) {
	if text == "" || !s.Fill.IsVisible() {
		return
	}
	face, err := r.face(s.FontSize)
	if err != nil {
		convex.Logger().Warn("plot: label font unavailable", "err", err)
		return
	}

	x := p.X
	switch s.Align {
	case AlignMiddle:
		x -= fixedToFloat64(font.MeasureString(face, text)) / 2
	case AlignEnd:
		x -= fixedToFloat64(font.MeasureString(face, text))
	}

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(s.Fill.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(text)
}

// WritePNG encodes the image as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}
	return nil
}

// Close releases the font faces. The image stays usable.
func (r *Raster) Close() error {
	var first error
	for size, f := range r.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.faces, size)
	}
	return first
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c RGBA) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// addStroke adds the outline of a thick segment to the current path and
// reports whether any of it lies inside the image.
func (r *Raster) addStroke(p0, p1 convex.Vector, width float64) bool {
	grown := clip.NewClipper(r.clip.Rect().Inset(-width))
	seg, ok := grown.ClipSegment(toClip(p0), toClip(p1))
	if !ok {
		return false
	}
	a, b := fromClip(seg.P0), fromClip(seg.P1)
	d := b.Sub(a)
	if d.IsZero() {
		return false
	}
	n := convex.V(-d.Y, d.X).Normalize().Mul(width / 2)

	// Every quad winds the same way, so overlapping quads add up instead
	// of cancelling.
	r.ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	r.ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	r.ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	r.ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	r.ras.ClosePath()
	return true
}

func (r *Raster) face(size float64) (font.Face, error) {
	if size <= 0 {
		size = 10
	}
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	ft, err := loadLabelFont()
	if err != nil {
		return nil, fmt.Errorf("plot: parse label font: %w", err)
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("plot: label face: %w", err)
	}
	r.faces[size] = f
	return f, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
