// Command hpview opens a window for building a convex region by hand.
//
// Press the left mouse button on the boundary line of a new half-plane and
// drag away from the side to keep; releasing the button commits it.
// Escape abandons the current drag, Q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/convex"
	"github.com/gogpu/convex/plot"
	"github.com/gogpu/convex/scene"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		lo      = flag.Float64("lo", 0, "lower end of the model range on the longer side")
		hi      = flag.Float64("hi", 100, "upper end of the model range on the longer side")
		input   = flag.String("in", "", "file with initial half-planes, one \"a b c\" per line")
		verbose = flag.Bool("v", false, "log recomputation details")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	convex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	proj, err := plot.NewProjection(*width, *height, *lo, *hi)
	if err != nil {
		log.Fatalf("Invalid window: %v", err)
	}

	s := scene.New(scene.WithViewport(proj.Domain()))
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open: %v", err)
		}
		hs, err := scene.ReadHalfPlanes(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *input, err)
		}
		s.Add(hs...)
	}

	g := newGame(s, proj)

	ebiten.SetWindowTitle("Half-plane intersection")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(g)
	_ = g.ras.Close()
	if err != nil {
		log.Fatalf("Window failed: %v", err)
	}
}

type game struct {
	scene *scene.Scene
	proj  plot.Projection
	theme plot.Theme

	ras   *plot.Raster
	frame *ebiten.Image

	// drawn is the scene version currently in frame.
	drawn    uint64
	rendered bool

	lastX, lastY int
}

func newGame(s *scene.Scene, proj plot.Projection) *game {
	w, h := proj.Size()
	th := plot.DefaultTheme()
	return &game{
		scene: s,
		proj:  proj,
		theme: th,
		ras:   plot.NewRaster(w, h, th.Background),
		frame: ebiten.NewImage(w, h),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.Cancel()
	}

	x, y := ebiten.CursorPosition()
	moved := x != g.lastX || y != g.lastY
	g.lastX, g.lastY = x, y
	p := g.proj.InvertPoint(convex.V(float64(x), float64(y)))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.scene.BeginDrag(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if !g.scene.Dragging() {
			break
		}
		g.scene.Drag(p)
		if h, ok := g.scene.EndDrag(); ok {
			convex.Logger().Info("hpview: half-plane added", "halfplane", h.String(), "total", g.scene.Committed())
		}
	case moved && g.scene.Dragging():
		g.scene.Drag(p)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.rendered || g.scene.Version() != g.drawn {
		g.ras.Clear(g.theme.Background)
		// Undrawable regions are logged by the scene; the rest of the
		// frame is still useful.
		_ = g.scene.Draw(g.ras, g.proj)
		g.frame.WritePixels(g.ras.Image().Pix)
		g.drawn = g.scene.Version()
		g.rendered = true
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.proj.Size()
}
