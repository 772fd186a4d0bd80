// Package plot draws half-planes and convex regions onto raster images and
// SVG documents.
//
// A [Projection] maps model coordinates to pixels the way a chart does:
// the model domain fills the longer side of the target inside a fixed
// padding, y is flipped so that it points up, and both axes share one
// scale. Drawing goes through the [Surface] interface, implemented by
// [Raster] (anti-aliased image.RGBA, PNG output, Go Regular labels) and
// [SVG].
//
//	proj, err := plot.NewProjection(800, 600, 0, 100)
//	if err != nil {
//	    return err
//	}
//	ras := plot.NewRaster(800, 600, plot.White)
//	defer ras.Close()
//	plot.DrawAxes(ras, proj, plot.DefaultTheme().Axis)
//	plot.DrawHalfPlane(ras, proj, convex.Vertical(10, true), plot.DefaultTheme().HalfPlane(false))
//	err = ras.WritePNG(w)
package plot
