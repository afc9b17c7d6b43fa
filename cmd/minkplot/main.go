package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"minkowski/diagram"
	"minkowski/lorentz"
)

type flagPointsValue struct {
	coords []diagram.Coord
}

func (fp *flagPointsValue) String() string {
	parts := make([]string, len(fp.coords))
	for i, c := range fp.coords {
		parts[i] = fmt.Sprintf("%g,%g", c.X, c.T)
	}
	return strings.Join(parts, ";")
}

func parseCoord(s string) (diagram.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return diagram.Coord{}, fmt.Errorf("can't parse %q as x,t", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return diagram.Coord{}, err
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return diagram.Coord{}, err
	}
	return diagram.Coord{X: x, T: t}, nil
}

func (fp *flagPointsValue) Set(s string) error {
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCoord(part)
		if err != nil {
			return err
		}
		fp.coords = append(fp.coords, c)
	}
	return nil
}

// flags
var (
	flagV      float64
	flagOut    string
	flagPoints flagPointsValue
	flagColor  string
	flagFn     string
	flagCurve  string
	flagAlign  string
	flagClip   bool
	flagExtent float64
	flagSize   float64
)

func init() {
	flag.Float64Var(&flagV, "v", 0, "boost velocity as a fraction of c")
	flag.StringVar(&flagOut, "out", "diagram.png", "output file (.png or .svg)")
	flag.Var(&flagPoints, "points", "events to place, as x,t;x,t;...")
	flag.StringVar(&flagColor, "color", diagram.DefaultPointColor, "color of placed events")
	flag.StringVar(&flagFn, "fn", "", "builtin curve to project (sin or parabola)")
	flag.StringVar(&flagCurve, "curve", "", "svg file with a polyline to project")
	flag.StringVar(&flagAlign, "align", "", "two events x1,t1;x2,t2: boost so they share a time axis")
	flag.BoolVar(&flagClip, "clip", true, "clip boosted geometry to the diagram extent")
	flag.Float64Var(&flagExtent, "extent", 5, "half-width of the diagram in both axes")
	flag.Float64Var(&flagSize, "size", 0, "marker radius of placed events in diagram units (0 for default)")
}

func builtinCurve(name string) (diagram.CurveFunc, error) {
	switch name {
	case "sin":
		return func(xs []float64) ([]float64, error) {
			ys := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = math.Sin(x)
			}
			return ys, nil
		}, nil
	case "parabola":
		return func(xs []float64) ([]float64, error) {
			ys := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = x * x / 5
			}
			return ys, nil
		}, nil
	}
	return nil, fmt.Errorf("unknown builtin curve %q (want sin or parabola)", name)
}

func svgCurve(name string, extent float64) (diagram.CurveFunc, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	xs, ys, err := diagram.CurveFromSVG(f, extent)
	if err != nil {
		return nil, err
	}
	return diagram.FixedCurve(xs, ys), nil
}

var cssColors = map[string]color.RGBA{
	"lightgray": {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	"red":       {R: 0xcc, A: 0xff},
	"blue":      {B: 0xcc, A: 0xff},
	"green":     {G: 0x99, A: 0xff},
	"orange":    {R: 0xff, G: 0xa5, A: 0xff},
	"purple":    {R: 0x80, B: 0x80, A: 0xff},
	"teal":      {G: 0x80, B: 0x80, A: 0xff},
	"black":     {A: 0xff},
}

func rgba(name string) color.Color {
	if c, ok := cssColors[name]; ok {
		return c
	}
	return color.Black
}

func savePNG(f *diagram.Frame, v float64, out string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("v = %.3gc", v)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "t"
	p.X.Min, p.X.Max = f.Bounds.Min[0], f.Bounds.Max[0]
	p.Y.Min, p.Y.Max = f.Bounds.Min[1], f.Bounds.Max[1]
	for _, l := range f.Lines {
		xys := make(plotter.XYs, len(l.Path.V))
		for i, pt := range l.Path.V {
			xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.Color = rgba(l.Style.Color)
		ln.Width = vg.Points(l.Style.Width)
		if l.Style.Dashed {
			ln.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(ln)
	}
	for _, mk := range f.Markers {
		sc, err := plotter.NewScatter(plotter.XYs{{X: mk.At[0], Y: mk.At[1]}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = rgba(mk.Event.Color)
		sc.GlyphStyle.Radius = vg.Points(4 * mk.Event.Radius() / diagram.DefaultPointSize)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, out)
}

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()

	scene := diagram.NewScene()
	scene.Grid.Extent = flagExtent
	scene.ClipToExtent = flagClip
	scene.Velocity = flagV

	if flagAlign != "" {
		var pts flagPointsValue
		if err := pts.Set(flagAlign); err != nil {
			fail("bad -align: %v", err)
		}
		if len(pts.coords) != 2 {
			fail("-align needs exactly two events, got %d", len(pts.coords))
		}
		a, b := pts.coords[0], pts.coords[1]
		v, err := lorentz.Align(a.X, a.T, b.X, b.T)
		if err != nil {
			fail("can't align %v and %v: %v", a, b, err)
		}
		fmt.Printf("aligning velocity v = %.6gc\n", v)
		scene.Velocity = v
		scene.Points.Add(diagram.Event{Coord: a, Color: flagColor, Size: flagSize})
		scene.Points.Add(diagram.Event{Coord: b, Color: flagColor, Size: flagSize})
	}

	if _, err := lorentz.New(scene.Velocity); err != nil {
		fail("bad velocity %g: %v", scene.Velocity, err)
	}

	for _, c := range flagPoints.coords {
		scene.Points.Add(diagram.Event{Coord: c, Color: flagColor, Size: flagSize})
	}

	if flagFn != "" && flagCurve != "" {
		fail("-fn and -curve are mutually exclusive")
	}
	if flagFn != "" {
		fn, err := builtinCurve(flagFn)
		if err != nil {
			fail("%v", err)
		}
		scene.Curve = fn
	}
	if flagCurve != "" {
		fn, err := svgCurve(flagCurve, scene.Grid.Extent)
		if err != nil {
			fail("can't load curve from %s: %v", flagCurve, err)
		}
		scene.Curve = fn
	}

	frame, err := scene.Render()
	if err != nil {
		fail("render: %v", err)
	}
	if frame.CurveErr != nil {
		fmt.Fprintf(os.Stderr, "curve not drawn: %v\n", frame.CurveErr)
	}

	switch filepath.Ext(flagOut) {
	case ".svg":
		out, err := os.Create(flagOut)
		if err != nil {
			fail("failed to open output file: %v", err)
		}
		if err := frame.WriteSVG(out); err != nil {
			fail("write svg: %v", err)
		}
		if err := out.Close(); err != nil {
			fail("write svg: %v", err)
		}
	default:
		if err := savePNG(frame, scene.Velocity, flagOut); err != nil {
			fail("write plot: %v", err)
		}
	}
}
