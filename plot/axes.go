package plot

import (
	"math"
	"strconv"

	"github.com/gogpu/convex"
)

// tickSize is the length of a tick mark in pixels.
const tickSize = 6

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count evenly spaced round values in [lo, hi]. The
// spacing is 1, 2 or 5 times a power of ten.
func Ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}

	step := (hi - lo) / float64(count)
	power := math.Floor(math.Log10(step))
	ratio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}

	// Negative powers divide by an integer to keep values like 0.3 exact.
	var i1, i2 float64
	var value func(i float64) float64
	if power < 0 {
		inc := math.Pow(10, -power) / factor
		i1, i2 = math.Round(lo*inc), math.Round(hi*inc)
		if i1/inc < lo {
			i1++
		}
		if i2/inc > hi {
			i2--
		}
		value = func(i float64) float64 { return i / inc }
	} else {
		inc := math.Pow(10, power) * factor
		i1, i2 = math.Round(lo/inc), math.Round(hi/inc)
		if i1*inc < lo {
			i1++
		}
		if i2*inc > hi {
			i2--
		}
		value = func(i float64) float64 { return i * inc }
	}

	var ticks []float64
	for i := i1; i <= i2; i++ {
		ticks = append(ticks, value(i))
	}
	return ticks
}

// DrawAxes draws the x and y axes through the model origin, with labelled
// ticks. An axis whose origin lies outside the domain is pinned to the
// nearest edge of the plot area.
func DrawAxes(s Surface, p Projection, st Style) {
	d := p.Domain()
	w, h := p.Size()

	row := clamp(p.Y(0), AxisPadding, float64(h-AxisPadding))
	col := clamp(p.X(0), AxisPadding, float64(w-AxisPadding))

	size := st.FontSize
	if size <= 0 {
		size = 10
	}
	label := st
	label.Stroke = Transparent

	s.Line(convex.V(p.X(d.XMin), row), convex.V(p.X(d.XMax), row), st)
	label.Align = AlignMiddle
	for _, x := range Ticks(d.XMin, d.XMax, 10) {
		px := p.X(x)
		s.Line(convex.V(px, row), convex.V(px, row+tickSize), st)
		s.Text(convex.V(px, row+tickSize+size), formatTick(x), label)
	}

	s.Line(convex.V(col, p.Y(d.YMin)), convex.V(col, p.Y(d.YMax)), st)
	label.Align = AlignEnd
	for _, y := range Ticks(d.YMin, d.YMax, 10) {
		py := p.Y(y)
		s.Line(convex.V(col, py), convex.V(col-tickSize, py), st)
		s.Text(convex.V(col-tickSize-3, py+size/3), formatTick(y), label)
	}
}

func formatTick(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
