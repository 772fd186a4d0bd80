package scene

import (
	"github.com/gogpu/convex"
	"github.com/gogpu/convex/plot"
)

// Option configures a Scene during creation.
//
// Example:
//
//	s := scene.New(
//	    scene.WithViewport(convex.Square(-50, 50)),
//	    scene.WithPadding(0),
//	)
type Option func(*options)

// options holds optional configuration for Scene creation.
type options struct {
	viewport convex.Viewport
	padding  float64
	epsilon  float64
	theme    plot.Theme
}

// defaultOptions returns the default scene options: the domain [0, 100]²
// padded by 100 on every side, so region edges fall well outside the
// visible area.
func defaultOptions() options {
	return options{
		viewport: convex.Square(0, 100),
		padding:  100,
		epsilon:  1e-9,
		theme:    plot.DefaultTheme(),
	}
}

// WithViewport sets the model rectangle the scene is drawn in.
func WithViewport(vp convex.Viewport) Option {
	return func(o *options) {
		o.viewport = vp
	}
}

// WithPadding sets how far beyond the viewport regions are clipped.
// Negative values are treated as zero.
func WithPadding(d float64) Option {
	return func(o *options) {
		o.padding = max(d, 0)
	}
}

// WithEpsilon sets the tolerance for point containment and the shortest
// drag that defines a half-plane.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = max(eps, 0)
	}
}

// WithStyle sets the theme used by Draw.
func WithStyle(t plot.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}
