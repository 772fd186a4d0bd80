// Command hpdemo renders the intersection of half-planes to a PNG or SVG
// file.
//
// Half-planes a*x + b*y <= c come from a file with one "a b c" triple per
// line, from repeated -hp flags, or default to a small sample:
//
//	hpdemo -in planes.txt -output region.svg
//	hpdemo -hp "1 0 60" -hp "-1 0 -10" -hp "0 1 60" -hp "0 -1 -10"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/convex"
	"github.com/gogpu/convex/plot"
	"github.com/gogpu/convex/scene"
)

// sample is a square turned by 45 degrees.
var sample = []convex.HalfPlane{
	convex.MustHalfPlane(-1, -1, -10),
	convex.MustHalfPlane(1, 1, 60),
	convex.MustHalfPlane(1, -1, 0),
	convex.MustHalfPlane(-1, 1, 30),
}

// halfPlaneFlags collects repeated -hp values.
type halfPlaneFlags []convex.HalfPlane

func (f *halfPlaneFlags) String() string {
	parts := make([]string, len(*f))
	for i, h := range *f {
		parts[i] = h.String()
	}
	return strings.Join(parts, "; ")
}

func (f *halfPlaneFlags) Set(s string) error {
	h, err := scene.ParseHalfPlane(s)
	if err != nil {
		return err
	}
	*f = append(*f, h)
	return nil
}

type config struct {
	width, height int
	output        string
	format        string
	input         string
	lo, hi        float64
	padding       float64
	halfPlanes    []convex.HalfPlane
}

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "halfplanes.png", "output file")
		format  = flag.String("format", "", "output format: png or svg (default from -output extension)")
		input   = flag.String("in", "", "file with one half-plane \"a b c\" per line")
		domain  = flag.String("domain", "0,100", "model range lo,hi shown on the longer side")
		padding = flag.Float64("pad", 100, "distance beyond the domain regions are clipped to")
		verbose = flag.Bool("v", false, "log recomputation details")
	)
	var planes halfPlaneFlags
	flag.Var(&planes, "hp", "half-plane \"a b c\" meaning a*x + b*y <= c (repeatable)")
	flag.Parse()

	if *verbose {
		convex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	lo, hi, err := parseDomain(*domain)
	if err != nil {
		log.Fatalf("Invalid -domain: %v", err)
	}

	cfg := config{
		width:      *width,
		height:     *height,
		output:     *output,
		format:     *format,
		input:      *input,
		lo:         lo,
		hi:         hi,
		padding:    *padding,
		halfPlanes: planes,
	}
	if err := run(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Half-planes rendered to %s (%dx%d)\n", cfg.output, cfg.width, cfg.height)
}

func run(cfg config) error {
	hs := cfg.halfPlanes
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		read, err := scene.ReadHalfPlanes(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.input, err)
		}
		hs = append(hs, read...)
	}
	if len(hs) == 0 {
		hs = sample
	}

	format, err := outputFormat(cfg.format, cfg.output)
	if err != nil {
		return err
	}
	proj, err := plot.NewProjection(cfg.width, cfg.height, cfg.lo, cfg.hi)
	if err != nil {
		return err
	}

	s := scene.New(
		scene.WithViewport(proj.Domain()),
		scene.WithPadding(cfg.padding),
	)
	s.Add(hs...)

	out, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := render(out, format, s, proj); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func render(w io.Writer, format string, s *scene.Scene, proj plot.Projection) error {
	width, height := proj.Size()
	bg := plot.DefaultTheme().Background

	switch format {
	case "svg":
		doc := plot.NewSVG(w, width, height, bg)
		drawScene(s, doc, proj)
		return doc.Close()
	default:
		ras := plot.NewRaster(width, height, bg)
		defer ras.Close()
		drawScene(s, ras, proj)
		return ras.WritePNG(w)
	}
}

// drawScene draws s and reports an undrawable region without failing:
// an empty intersection is a valid result.
func drawScene(s *scene.Scene, dst plot.Surface, proj plot.Projection) {
	err := s.Draw(dst, proj)
	switch {
	case err == nil:
	case errors.Is(err, convex.ErrEmptyRegion):
		log.Printf("The half-planes have no common area")
	default:
		log.Printf("Region not drawn: %v", err)
	}
}

func outputFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	switch f := strings.ToLower(format); f {
	case "png", "svg":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func parseDomain(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want lo,hi, got %q", s)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
