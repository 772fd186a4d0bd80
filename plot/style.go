package plot

// Align positions text horizontally relative to its anchor point.
type Align int

const (
	// AlignStart puts the anchor at the left end of the text.
	AlignStart Align = iota
	// AlignMiddle centers the text on the anchor.
	AlignMiddle
	// AlignEnd puts the anchor at the right end of the text.
	AlignEnd
)

// String returns the SVG text-anchor keyword for a.
func (a Align) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// Style describes how a Surface draws a primitive.
// Widths and font sizes are in pixels.
type Style struct {
	Stroke   RGBA
	Width    float64
	Fill     RGBA
	FontSize float64
	Align    Align
}

// Stroked reports whether the style draws outlines.
func (s Style) Stroked() bool {
	return s.Stroke.IsVisible() && s.Width > 0
}

// Filled reports whether the style fills areas.
func (s Style) Filled() bool {
	return s.Fill.IsVisible()
}

// Theme groups the styles used to draw a half-plane scene.
type Theme struct {
	Background RGBA
	Axis       Style
	Region     Style
	Boundary   Style
	Pending    Style
	Normal     Style
	Shade      Style
	// ShadeWidth is the thickness in pixels of the band drawn on the
	// inner side of each boundary line. Zero disables the band.
	ShadeWidth float64
	// NormalLength is the length in pixels of the outward normal marker.
	NormalLength float64
}

// DefaultTheme returns the light theme: a translucent pink region, black
// boundary lines and red normal markers.
func DefaultTheme() Theme {
	return Theme{
		Background:   White,
		Axis:         Style{Stroke: Black, Width: 1, Fill: Black, FontSize: 10},
		Region:       Style{Fill: Pink.WithAlpha(0.4)},
		Boundary:     Style{Stroke: Black, Width: 2},
		Pending:      Style{Stroke: Black, Width: 3},
		Normal:       Style{Stroke: Red, Width: 2},
		Shade:        Style{Fill: Lavender.WithAlpha(0.5)},
		ShadeWidth:   20,
		NormalLength: 20,
	}
}
