package convex

import (
	"math"
	"strings"
	"testing"
)

// Triangle with apex (0, 10) and base on y = 0.
var (
	triLeft   = MustHalfPlane(-1, 1, 10) // x >= y - 10
	triRight  = MustHalfPlane(1, 1, 10)  // x <= 10 - y
	triBottom = Horizontal(0, true)      // y >= 0
)

func triangle() Region {
	return Region{left: []HalfPlane{triLeft}, right: []HalfPlane{triRight, triBottom}}
}

func TestRegion_R2(t *testing.T) {
	if !R2.IsR2() || R2.NumEdges() != 0 || R2.IsEmpty() {
		t.Errorf("R2 = %v", R2)
	}
	y, l, r := R2.MaxY()
	if !math.IsInf(y, 1) || l != -1 || r != -1 {
		t.Errorf("R2.MaxY() = (%v, %d, %d), want (+Inf, -1, -1)", y, l, r)
	}
	if R2.IsBounded() {
		t.Error("R2 must not be bounded")
	}
	if !R2.Contains(V(1e9, -1e9), 0) {
		t.Error("R2 must contain every point")
	}
}

func TestRegion_Empty(t *testing.T) {
	if !Empty.IsEmpty() || Empty.IsR2() {
		t.Errorf("Empty = %v", Empty)
	}
	if Empty.Contains(V(0, 0), 1) {
		t.Error("Empty must contain nothing")
	}
}

func TestRegion_MaxY(t *testing.T) {
	tests := []struct {
		name        string
		r           Region
		want        float64
		left, right int
	}{
		{"triangle apex", triangle(), 10, 0, 0},
		{
			"downward wedge",
			Region{left: []HalfPlane{MustHalfPlane(-1, 1, 0)}, right: []HalfPlane{MustHalfPlane(1, 1, 0)}},
			0, 0, 0,
		},
		{
			"upward wedge",
			Region{left: []HalfPlane{MustHalfPlane(-1, -1, 0)}, right: []HalfPlane{MustHalfPlane(1, -1, 0)}},
			math.Inf(1), -1, -1,
		},
		{
			"vertical strip",
			Region{left: []HalfPlane{Vertical(0, true)}, right: []HalfPlane{Vertical(5, false)}},
			math.Inf(1), -1, -1,
		},
		{
			"horizontal strip",
			Region{left: []HalfPlane{Horizontal(60, false)}, right: []HalfPlane{Horizontal(10, true)}},
			60, 0, -1,
		},
		{"only right", Region{right: []HalfPlane{Vertical(5, false)}}, math.Inf(1), -1, -1},
		{"only left slanted", Region{left: []HalfPlane{Vertical(5, true)}}, math.Inf(1), -1, -1},
		{"only top edge", Region{left: []HalfPlane{Horizontal(7, false)}}, 7, 0, -1},
		{
			"top edge and right side",
			Region{left: []HalfPlane{Horizontal(7, false)}, right: []HalfPlane{Vertical(5, false)}},
			7, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, l, r := tt.r.MaxY()
			if y != tt.want && !(math.IsInf(y, 1) && math.IsInf(tt.want, 1)) {
				t.Errorf("MaxY() y = %v, want %v", y, tt.want)
			}
			if l != tt.left || r != tt.right {
				t.Errorf("MaxY() edges = (%d, %d), want (%d, %d)", l, r, tt.left, tt.right)
			}
		})
	}
}

func TestRegion_BottomY(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		side Side
		i    int
		want float64
	}{
		{"triangle left meets bottom", triangle(), Left, 0, 0},
		{"triangle right meets bottom", triangle(), Right, 0, 0},
		{"triangle bottom edge", triangle(), Right, 1, 0},
		{
			"downward wedge diverges",
			Region{left: []HalfPlane{MustHalfPlane(-1, 1, 0)}, right: []HalfPlane{MustHalfPlane(1, 1, 0)}},
			Left, 0, math.Inf(-1),
		},
		{
			"upward wedge closes",
			Region{left: []HalfPlane{MustHalfPlane(-1, -1, 0)}, right: []HalfPlane{MustHalfPlane(1, -1, 0)}},
			Right, 0, 0,
		},
		{
			"anti-parallel strip",
			Region{left: []HalfPlane{Vertical(0, true)}, right: []HalfPlane{Vertical(5, false)}},
			Left, 0, math.Inf(-1),
		},
		{"other chain empty", Region{left: []HalfPlane{Vertical(0, true)}}, Left, 0, math.Inf(-1)},
		{
			"next edge on same chain",
			Region{left: []HalfPlane{Horizontal(8, false), MustHalfPlane(-1, 1, 0)}},
			Left, 0, 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.BottomY(tt.side, tt.i)
			if got != tt.want && !(math.IsInf(got, -1) && math.IsInf(tt.want, -1)) {
				t.Errorf("BottomY(%v, %d) = %v, want %v", tt.side, tt.i, got, tt.want)
			}
		})
	}
}

func TestRegion_MinY(t *testing.T) {
	if got := triangle().MinY(); got != 0 {
		t.Errorf("triangle MinY() = %v, want 0", got)
	}
	wedge := Region{left: []HalfPlane{MustHalfPlane(-1, -1, 0)}, right: []HalfPlane{MustHalfPlane(1, -1, 0)}}
	if got := wedge.MinY(); got != 0 {
		t.Errorf("upward wedge MinY() = %v, want 0", got)
	}
	if got := (Region{left: []HalfPlane{Vertical(0, true)}}).MinY(); !math.IsInf(got, -1) {
		t.Errorf("half-plane MinY() = %v, want -Inf", got)
	}
}

func TestRegion_IsBounded(t *testing.T) {
	if !triangle().IsBounded() {
		t.Error("triangle should be bounded")
	}
	strip := Region{left: []HalfPlane{Horizontal(60, false)}, right: []HalfPlane{Horizontal(10, true)}}
	if strip.IsBounded() {
		t.Error("horizontal strip is unbounded in x")
	}
}

func TestRegion_Contains(t *testing.T) {
	r := triangle()
	if !r.Contains(V(0, 5), 0) {
		t.Error("triangle should contain (0, 5)")
	}
	if r.Contains(V(0, 11), 0) || r.Contains(V(8, 8), 0) {
		t.Error("triangle contains a point outside")
	}
}

func TestRegion_ChainsAreCopies(t *testing.T) {
	r := triangle()
	left := r.Left()
	left[0] = Vertical(100, true)
	if r.left[0] != triLeft {
		t.Error("Left() exposed the region's backing array")
	}
	if got := len(r.Right()); got != 2 {
		t.Errorf("len(Right()) = %d, want 2", got)
	}
}

func TestRegion_String(t *testing.T) {
	if got := R2.String(); got != "Region{R2}" {
		t.Errorf("R2.String() = %q", got)
	}
	if got := Empty.String(); got != "Region{empty}" {
		t.Errorf("Empty.String() = %q", got)
	}
	if got := triangle().String(); !strings.Contains(got, "left: [-1x + 1y <= 10]") {
		t.Errorf("triangle String() = %q", got)
	}
}
