package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"minkowski/diagram"
	"minkowski/lorentz"
	"minkowski/tui"
)

var (
	flagV     = flag.Float64("v", 0, "initial boost velocity as a fraction of c")
	flagCurve = flag.String("curve", "", "svg file with a polyline to project as a worldline")
)

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()

	scene := diagram.NewScene()
	scene.ClipToExtent = true
	scene.Velocity = lorentz.Clamp(*flagV, tui.VelocityLimit)

	if *flagCurve != "" {
		f, err := os.Open(*flagCurve)
		if err != nil {
			fail("can't open %s: %v", *flagCurve, err)
		}
		xs, ys, err := diagram.CurveFromSVG(f, scene.Grid.Extent)
		f.Close()
		if err != nil {
			fail("can't load curve from %s: %v", *flagCurve, err)
		}
		scene.Curve = diagram.FixedCurve(xs, ys)
	}

	p := tea.NewProgram(tui.New(scene), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail("%v", err)
	}
}
