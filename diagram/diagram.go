// Package diagram builds renderable spacetime-diagram frames: the
// fixed reference grid, the boosted coordinate grid, light cones,
// user-placed events and an optional projected curve. The package
// computes geometry only; drawing it is left to rendering
// collaborators such as a chart library or a terminal raster.
package diagram

import (
	"minkowski/paths"
)

// Role tags a line with its function in the diagram, so rendering
// collaborators can style and filter without knowing the geometry.
type Role string

const (
	RoleReference Role = "reference"
	RoleTimeLine  Role = "time-line"
	RoleSpaceLine Role = "space-line"
	RoleAxis      Role = "axis-highlight"
	RoleLightCone Role = "light-cone"
	RoleCurve     Role = "curve"
)

// Style is an opaque rendering hint attached to lines and events.
// Color is a CSS-style token; the core never interprets it.
type Style struct {
	Color  string
	Width  float64
	Dashed bool
}

// Conventional diagram styling: gray fixed reference grid, red lines
// of constant t', blue lines of constant x', dashed green cones.
var (
	StyleReference = Style{Color: "lightgray", Width: 0.5}
	StyleTimeLine  = Style{Color: "red", Width: 1}
	StyleSpaceLine = Style{Color: "blue", Width: 1}
	StyleAxis      = Style{Color: "black", Width: 1, Dashed: true}
	StyleLightCone = Style{Color: "green", Width: 1, Dashed: true}
	StyleCurve     = Style{Color: "orange", Width: 1.5}
)

func styleFor(r Role) Style {
	switch r {
	case RoleTimeLine:
		return StyleTimeLine
	case RoleSpaceLine:
		return StyleSpaceLine
	case RoleAxis:
		return StyleAxis
	case RoleLightCone:
		return StyleLightCone
	case RoleCurve:
		return StyleCurve
	}
	return StyleReference
}

// A Line is one tagged polyline of a renderable frame.
type Line struct {
	Role  Role
	Style Style
	Path  paths.Path
}

// A Marker is one user-placed event together with its transformed
// position.
type Marker struct {
	Event Event
	At    paths.Vec2
}

// A Frame is the complete renderable output of one recomputation
// cycle: every grid line, cone, event marker and (when present) the
// projected curve, in drawing order.
type Frame struct {
	Bounds  paths.Bounds
	Lines   []Line
	Markers []Marker

	// CurveErr records a curve evaluation failure for this cycle.
	// The rest of the frame is still valid and renderable.
	CurveErr error
}

// Clip trims every boosted line to the frame bounds, splitting lines
// that leave and re-enter the extent. Reference grid and light cones
// are constructed inside the bounds already and are left alone.
func (f *Frame) Clip() {
	var out []Line
	for _, l := range f.Lines {
		switch l.Role {
		case RoleReference, RoleLightCone:
			out = append(out, l)
		default:
			for _, part := range paths.ClipPath(l.Path, f.Bounds) {
				out = append(out, Line{Role: l.Role, Style: l.Style, Path: part})
			}
		}
	}
	f.Lines = out
}

func linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic("diagram: need at least two samples")
	}
	r := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range r {
		r[i] = lo + float64(i)*step
	}
	r[n-1] = hi
	return r
}

func constants(v float64, n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = v
	}
	return r
}
