package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minkowski/diagram"
	"minkowski/paths"
)

// ANSI-256 codes for the core's CSS-style color tokens. Unknown
// tokens fall back to the default foreground.
var ansiColors = map[string]string{
	"lightgray": "240",
	"red":       "160",
	"blue":      "33",
	"green":     "35",
	"black":     "255", // axis highlight, inverted for dark terminals
	"orange":    "208",
	"purple":    "135",
	"teal":      "44",
	"yellow":    "220",
}

// A raster accumulates frame geometry on a 2x4 braille microgrid
// per terminal cell, with one color per cell. Later strokes win the
// cell color, so drawing in frame order keeps curves and cones on
// top of the reference grid.
type raster struct {
	w, h  int
	mask  [][]uint8
	color [][]string
}

func newRaster(w, h int) *raster {
	mask := make([][]uint8, h)
	color := make([][]string, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		color[i] = make([]string, w)
	}
	return &raster{w: w, h: h, mask: mask, color: color}
}

// braille dot bits for micro position (rx, ry) within a cell.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (r *raster) setPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= r.w || cy >= r.h {
		return
	}
	r.mask[cy][cx] |= brailleBits[rx][ry]
	r.color[cy][cx] = color
}

// line draws a microgrid segment with Bresenham stepping.
func (r *raster) line(x0, y0, x1, y1 int, color string) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y0 - y1
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.setPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawPath projects a frame path into the raster using the given
// bounds-to-microgrid mapping.
func (r *raster) drawPath(p paths.Path, b paths.Bounds, color string) {
	var px, py int
	for i, v := range p.V {
		mx, my := microXY(v, b, r.w, r.h)
		if i > 0 {
			r.line(px, py, mx, my, color)
		}
		px, py = mx, my
	}
}

// drawLine rasterizes one tagged frame line.
func (r *raster) drawLine(l diagram.Line, b paths.Bounds) {
	r.drawPath(l.Path, b, ansiColors[l.Style.Color])
}

// microXY maps diagram coordinates into the microgrid, time
// increasing upwards.
func microXY(v paths.Vec2, b paths.Bounds, w, h int) (int, int) {
	nx := (v[0] - b.Min[0]) / (b.Max[0] - b.Min[0])
	nt := (v[1] - b.Min[1]) / (b.Max[1] - b.Min[1])
	return int(nx * float64(w*2-1)), int((1 - nt) * float64(h*4-1))
}

// cellXY maps diagram coordinates to a terminal cell.
func cellXY(v paths.Vec2, b paths.Bounds, w, h int) (int, int) {
	mx, my := microXY(v, b, w, h)
	return mx / 2, my / 4
}

// An overlayGlyph replaces one cell of the rendered raster with a
// styled glyph (event markers, the placement cursor).
type overlayGlyph struct {
	cx, cy int
	glyph  rune
	color  string
}

// compose renders the raster as styled terminal rows with the glyph
// overlays applied on top, batching runs of equally colored cells to
// keep the escape-sequence overhead down.
func (r *raster) compose(overlays []overlayGlyph) []string {
	type cellOverride struct {
		glyph rune
		color string
	}
	m := map[[2]int]cellOverride{}
	for _, o := range overlays {
		if o.cx < 0 || o.cx >= r.w || o.cy < 0 || o.cy >= r.h {
			continue
		}
		m[[2]int{o.cx, o.cy}] = cellOverride{glyph: o.glyph, color: o.color}
	}
	out := make([]string, r.h)
	for y := 0; y < r.h; y++ {
		var sb strings.Builder
		runColor := ""
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < r.w; x++ {
			c := ""
			var ch rune = ' '
			if o, ok := m[[2]int{x, y}]; ok {
				ch = o.glyph
				c = o.color
			} else if mask := r.mask[y][x]; mask != 0 {
				ch = rune(0x2800 + int(mask))
				c = r.color[y][x]
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run = append(run, ch)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
