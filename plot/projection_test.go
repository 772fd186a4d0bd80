package plot

import (
	"errors"
	"testing"

	"github.com/gogpu/convex"
)

func TestNewProjection_Square(t *testing.T) {
	p := mustProjection(t, 160, 160, 0, 100)

	tests := []struct {
		model, pixel convex.Vector
	}{
		{convex.V(0, 0), convex.V(30, 130)},
		{convex.V(100, 100), convex.V(130, 30)},
		{convex.V(50, 25), convex.V(80, 105)},
	}

	for _, tt := range tests {
		assertVectorNear(t, p.Point(tt.model), tt.pixel)
		assertVectorNear(t, p.InvertPoint(tt.pixel), tt.model)
	}
}

func TestNewProjection_AspectTruncation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          convex.Viewport
	}{
		{"landscape", 260, 160, convex.Viewport{XMin: 0, YMin: 0, XMax: 100, YMax: 50}},
		{"portrait", 160, 260, convex.Viewport{XMin: 0, YMin: 0, XMax: 50, YMax: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProjection(t, tt.width, tt.height, 0, 100)
			if got := p.Domain(); got != tt.want {
				t.Errorf("Domain() = %+v, want %+v", got, tt.want)
			}
			if p.DX(1) != 2 || p.DY(1) != 2 {
				t.Errorf("DX(1), DY(1) = %v, %v, want 2, 2", p.DX(1), p.DY(1))
			}
		})
	}
}

func TestProjection_Direction(t *testing.T) {
	p := mustProjection(t, 160, 160, 0, 100)
	// Model y points up, pixel y points down.
	assertVectorNear(t, p.Direction(convex.V(1, 1)), convex.V(1, -1))
}

func TestProjection_Visible(t *testing.T) {
	p := mustProjection(t, 160, 160, 0, 100)
	want := convex.Viewport{XMin: -30, YMin: -30, XMax: 130, YMax: 130}
	got := p.Visible()
	if !convex.V(got.XMin, got.YMin).Equals(convex.V(want.XMin, want.YMin), 1e-9) ||
		!convex.V(got.XMax, got.YMax).Equals(convex.V(want.XMax, want.YMax), 1e-9) {
		t.Errorf("Visible() = %+v, want %+v", got, want)
	}
}

func TestNewProjection_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		lo, hi        float64
	}{
		{"too narrow", 60, 200, 0, 100},
		{"too short", 200, 50, 0, 100},
		{"empty domain", 200, 200, 5, 5},
		{"inverted domain", 200, 200, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProjection(tt.width, tt.height, tt.lo, tt.hi)
			if !errors.Is(err, ErrInvalidProjection) {
				t.Errorf("NewProjection() error = %v, want ErrInvalidProjection", err)
			}
		})
	}
}
