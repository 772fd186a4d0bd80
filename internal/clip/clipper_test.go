package clip

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func TestClipper_ClipSegment_FullyInside(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 100))

	seg, ok := c.ClipSegment(Pt(10, 10), Pt(90, 90))

	if !ok {
		t.Fatal("expected a segment")
	}
	assertPointEqual(t, seg.P0, Pt(10, 10))
	assertPointEqual(t, seg.P1, Pt(90, 90))
}

func TestClipper_ClipSegment_FullyOutside(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 100))

	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"left", Pt(-50, 50), Pt(-10, 50)},
		{"right", Pt(110, 50), Pt(150, 50)},
		{"top", Pt(50, -50), Pt(50, -10)},
		{"bottom", Pt(50, 110), Pt(50, 150)},
		{"diagonal outside", Pt(-10, -10), Pt(-5, -5)},
		{"misses corner", Pt(-10, 5), Pt(5, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if seg, ok := c.ClipSegment(tt.p0, tt.p1); ok {
				t.Errorf("expected no segment, got %v", seg)
			}
		})
	}
}

func TestClipper_ClipSegment_Crossing(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 100))

	tests := []struct {
		name         string
		p0, p1       Point
		want0, want1 Point
	}{
		{"from left", Pt(-50, 50), Pt(50, 50), Pt(0, 50), Pt(50, 50)},
		{"to right", Pt(50, 50), Pt(150, 50), Pt(50, 50), Pt(100, 50)},
		{"from top", Pt(50, -50), Pt(50, 50), Pt(50, 0), Pt(50, 50)},
		{"to bottom", Pt(50, 50), Pt(50, 150), Pt(50, 50), Pt(50, 100)},
		{"both sides", Pt(-50, 50), Pt(150, 50), Pt(0, 50), Pt(100, 50)},
		{"diagonal", Pt(-50, -50), Pt(150, 150), Pt(0, 0), Pt(100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := c.ClipSegment(tt.p0, tt.p1)
			if !ok {
				t.Fatal("expected a segment")
			}
			assertPointNear(t, seg.P0, tt.want0)
			assertPointNear(t, seg.P1, tt.want1)
		})
	}
}

func TestClipper_ClipLine(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 50))

	tests := []struct {
		name         string
		anchor, dir  Point
		want0, want1 Point
	}{
		{"horizontal", Pt(1000, 20), Pt(1, 0), Pt(0, 20), Pt(100, 20)},
		{"vertical reversed", Pt(30, -500), Pt(0, -2), Pt(30, 50), Pt(30, 0)},
		{"diagonal", Pt(0, 0), Pt(1, 1), Pt(0, 0), Pt(50, 50)},
		{"anchor far away", Pt(-1e6, -1e6+10), Pt(1, 1), Pt(0, 10), Pt(40, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := c.ClipLine(tt.anchor, tt.dir)
			if !ok {
				t.Fatal("expected a segment")
			}
			assertPointNear(t, seg.P0, tt.want0)
			assertPointNear(t, seg.P1, tt.want1)
		})
	}
}

func TestClipper_ClipLine_Misses(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 50))

	tests := []struct {
		name        string
		anchor, dir Point
	}{
		{"above", Pt(0, -1), Pt(1, 0)},
		{"right of window", Pt(101, 0), Pt(0, 1)},
		{"past the corner", Pt(0, -60), Pt(1, -1)},
		{"zero direction", Pt(50, 25), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if seg, ok := c.ClipLine(tt.anchor, tt.dir); ok {
				t.Errorf("expected no segment, got %v", seg)
			}
		})
	}
}

func TestClipper_ClipLine_Border(t *testing.T) {
	c := NewClipper(NewRect(0, 0, 100, 50))

	seg, ok := c.ClipLine(Pt(7, 0), Pt(1, 0))
	if !ok {
		t.Fatal("line along the top border should be kept")
	}
	if math.Abs(seg.P1.X-seg.P0.X) != 100 || seg.P0.Y != 0 || seg.P1.Y != 0 {
		t.Errorf("ClipLine() = %v, want the whole top border", seg)
	}
}

func TestRect_Inset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		d    float64
		want Rect
	}{
		{"shrink", NewRect(0, 0, 100, 60), 10, NewRect(10, 10, 80, 40)},
		{"grow", NewRect(10, 10, 10, 10), -5, NewRect(5, 5, 20, 20)},
		{"collapse", NewRect(0, 0, 10, 10), 20, NewRect(20, 20, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.d); got != tt.want {
				t.Errorf("Inset(%v) = %+v, want %+v", tt.d, got, tt.want)
			}
		})
	}
	if !NewRect(0, 0, 10, 10).Inset(20).IsEmpty() {
		t.Error("collapsed rectangle should be empty")
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	if !r.Contains(Pt(100, 50)) || !r.Contains(Pt(0, 0)) {
		t.Error("border points should be contained")
	}
	if r.Contains(Pt(50, 51)) {
		t.Error("(50, 51) lies below the window")
	}
}

func BenchmarkClipSegment_Crossing(b *testing.B) {
	c := NewClipper(NewRect(0, 0, 100, 100))
	for i := 0; i < b.N; i++ {
		c.ClipSegment(Pt(-50, -50), Pt(150, 150))
	}
}

func BenchmarkClipLine(b *testing.B) {
	c := NewClipper(NewRect(0, 0, 100, 100))
	for i := 0; i < b.N; i++ {
		c.ClipLine(Pt(-50, -50), Pt(1, 1))
	}
}

func assertPointEqual(t *testing.T, got, want Point) {
	t.Helper()
	if got.X != want.X || got.Y != want.Y {
		t.Errorf("point mismatch: got %v, want %v", got, want)
	}
}

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > testEpsilon || math.Abs(got.Y-want.Y) > testEpsilon {
		t.Errorf("point mismatch: got %v, want %v (epsilon=%v)", got, want, testEpsilon)
	}
}
