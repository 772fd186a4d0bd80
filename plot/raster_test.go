package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/convex"
)

func TestRaster_Clear(t *testing.T) {
	r := NewRaster(8, 8, White)
	defer r.Close()

	if got := r.Image().RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v, want white", got)
	}
	r.Clear(Black)
	if got := r.Image().RGBAAt(7, 7); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("after Clear(Black) = %v", got)
	}
}

func TestRaster_PolygonFill(t *testing.T) {
	r := NewRaster(40, 40, White)
	defer r.Close()

	square := []convex.Vector{convex.V(10, 10), convex.V(30, 10), convex.V(30, 30), convex.V(10, 30)}
	r.Polygon(square, Style{Fill: Red})

	if got := r.Image().RGBAAt(20, 20); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside = %v, want red", got)
	}
	if got := r.Image().RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside = %v, want white", got)
	}
}

func TestRaster_TranslucentFill(t *testing.T) {
	r := NewRaster(20, 20, White)
	defer r.Close()

	r.Polygon([]convex.Vector{convex.V(0, 0), convex.V(20, 0), convex.V(20, 20), convex.V(0, 20)}, Style{Fill: Black.WithAlpha(0.5)})

	got := r.Image().RGBAAt(10, 10)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("half black over white = %v, want mid gray", got)
	}
}

func TestRaster_LineClipsFarEndpoints(t *testing.T) {
	r := NewRaster(40, 40, White)
	defer r.Close()

	r.Line(convex.V(-1e9, 35), convex.V(1e9, 35), Style{Stroke: Black, Width: 4})

	for _, x := range []int{0, 20, 39} {
		if got := r.Image().RGBAAt(x, 35); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("pixel (%d, 35) = %v, want black", x, got)
		}
	}
	if got := r.Image().RGBAAt(20, 20); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (20, 20) = %v, want white", got)
	}
}

func TestRaster_InvisibleStyleDrawsNothing(t *testing.T) {
	r := NewRaster(10, 10, White)
	defer r.Close()

	r.Line(convex.V(0, 5), convex.V(10, 5), Style{Stroke: Black})
	r.Polygon([]convex.Vector{convex.V(0, 0), convex.V(10, 0), convex.V(10, 10)}, Style{})
	r.Text(convex.V(0, 8), "x", Style{})

	for _, v := range r.Image().Pix {
		if v != 255 {
			t.Fatal("an invisible style changed the image")
		}
	}
}

func TestRaster_Text(t *testing.T) {
	r := NewRaster(60, 20, White)
	defer r.Close()

	r.Text(convex.V(30, 15), "100", Style{Fill: Black, FontSize: 12, Align: AlignMiddle})

	inked := 0
	img := r.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if img.RGBAAt(x, y).R < 128 {
				inked++
				if x < 10 || x > 50 {
					t.Errorf("ink at (%d, %d) is far from the centered label", x, y)
				}
			}
		}
	}
	if inked == 0 {
		t.Error("Text() drew nothing")
	}
}

func TestRaster_WritePNG(t *testing.T) {
	r := NewRaster(12, 7, White)
	defer r.Close()

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("decoded size = %dx%d, want 12x7", b.Dx(), b.Dy())
	}
}
