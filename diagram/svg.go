package diagram

import (
	"bufio"
	"fmt"
	"io"

	"minkowski/paths"
)

// svgSimplifyTol thins densely sampled lines before export without
// visibly moving anything: straight axis and cone samples collapse
// to their endpoints, curve samples survive untouched.
const svgSimplifyTol = 1e-6

// WriteSVG writes the frame as a standalone SVG document, one group
// per role with the role's stroke color and dash pattern, followed
// by the event markers. Time increases upwards, so the t coordinate
// is negated into SVG's downward y axis.
func (f *Frame) WriteSVG(w io.Writer) error {
	var werr error
	bi := bufio.NewWriter(w)
	wr := func(format string, args ...interface{}) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bi, format, args...)
	}

	width := f.Bounds.Max[0] - f.Bounds.Min[0]
	height := f.Bounds.Max[1] - f.Bounds.Min[1]
	wr(`<svg height="500" width="500" viewBox="%g %g %g %g" version="1.1" xmlns="http://www.w3.org/2000/svg">`,
		f.Bounds.Min[0], -f.Bounds.Max[1], width, height)
	wr("\n")

	// One group per run of lines sharing a role keeps the drawing
	// order of the frame.
	i := 0
	for i < len(f.Lines) {
		role := f.Lines[i].Role
		st := f.Lines[i].Style
		wr(`<g fill="none" stroke="%s" stroke-width="%g"`, st.Color, st.Width*0.04)
		if st.Dashed {
			wr(` stroke-dasharray="0.2 0.2"`)
		}
		wr(" data-role=\"%s\">\n", role)
		for ; i < len(f.Lines) && f.Lines[i].Role == role; i++ {
			p := paths.SimplifyPath(f.Lines[i].Path, svgSimplifyTol)
			if len(p.V) == 0 {
				continue
			}
			wr(`<path d="`)
			for j, v := range p.V {
				if j == 0 {
					wr("M %.3f, %.3f", v[0], -v[1])
				} else {
					wr(" %.3f, %.3f", v[0], -v[1])
				}
			}
			wr("\"/>\n")
		}
		wr("</g>\n")
	}

	for _, m := range f.Markers {
		wr("<circle cx=\"%.3f\" cy=\"%.3f\" r=\"%.3f\" fill=\"%s\"/>\n", m.At[0], -m.At[1], m.Event.Radius(), m.Event.Color)
	}

	wr("</svg>")
	if werr == nil {
		werr = bi.Flush()
	}
	return werr
}
