// Package paths provides tools for manipulating the 2d polylines
// that make up a spacetime diagram: bounded path sets, clipping to
// the diagram extent, simplification of dense samples, and polyline
// import from SVG files.
//
// Coordinates follow the diagram convention: the first component is
// space (x), the second is time (t), increasing upwards.
package paths

import "math"

// Vec2 is a 2-dimensional vector.
type Vec2 [2]float64

// A Path is a contiguous series of line segments, from the
// first point in the V slice to the last.
type Path struct {
	V []Vec2
}

// FromSamples builds a path from parallel coordinate slices.
// The slices must have the same length.
func FromSamples(xs, ts []float64) Path {
	if len(xs) != len(ts) {
		panic("paths: mismatched sample lengths")
	}
	v := make([]Vec2, len(xs))
	for i := range xs {
		v[i] = Vec2{xs[i], ts[i]}
	}
	return Path{V: v}
}

// Bounds describes an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec2
}

// Square returns the bounds of a square diagram reaching extent
// units from the origin in every direction.
func Square(extent float64) Bounds {
	return Bounds{
		Min: Vec2{-extent, -extent},
		Max: Vec2{extent, extent},
	}
}

// Paths is a set of paths, along with a view bounds.
type Paths struct {
	Bounds Bounds
	P      []Path
}

// TightenBounds adjusts the bounds to exactly contain the paths.
// If there are no paths, the bounds are set to zero.
func (ps *Paths) TightenBounds() {
	inf := math.Inf(1)
	min := Vec2{inf, inf}
	max := Vec2{-inf, -inf}
	i := 0
	for _, p := range ps.P {
		for _, v := range p.V {
			i++
			min[0] = math.Min(min[0], v[0])
			min[1] = math.Min(min[1], v[1])
			max[0] = math.Max(max[0], v[0])
			max[1] = math.Max(max[1], v[1])
		}
	}
	if i == 0 {
		ps.Bounds = Bounds{}
		return
	}
	ps.Bounds = Bounds{
		Min: min,
		Max: max,
	}
}

// Transform resizes all paths so that the rectangle forming the
// current bounds is the size of the new bounds. The bounds are also
// updated to the new bounds. A new bounds with inverted axes flips
// the paths, which is how SVG's downward y axis is mapped onto the
// diagram's upward time axis.
func (ps *Paths) Transform(nb Bounds) {
	ob := ps.Bounds
	for _, p := range ps.P {
		for i, v := range p.V {
			x, t := v[0], v[1]
			x -= ob.Min[0]
			x /= ob.Max[0] - ob.Min[0]
			x *= nb.Max[0] - nb.Min[0]
			x += nb.Min[0]

			t -= ob.Min[1]
			t /= ob.Max[1] - ob.Min[1]
			t *= nb.Max[1] - nb.Min[1]
			t += nb.Min[1]
			p.V[i] = Vec2{x, t}
		}
	}
	ps.Bounds = nb
}

// move adds a new (initially empty) path starting at x,
// unless the last path already ends at x.
func (ps *Paths) move(x Vec2) {
	if len(ps.P) == 0 {
		ps.P = append(ps.P, Path{V: []Vec2{x}})
		return
	}
	p := &ps.P[len(ps.P)-1]
	if len(p.V) > 0 && p.V[len(p.V)-1] == x {
		return
	}
	ps.P = append(ps.P, Path{V: []Vec2{x}})
}

// line extends the last path with an edge that goes to x.
func (ps *Paths) line(x Vec2) {
	p := &ps.P[len(ps.P)-1]
	p.V = append(p.V, x)
}

func vec2dist(v0, v1 Vec2) float64 {
	dx := v0[0] - v1[0]
	dy := v0[1] - v1[1]
	return math.Sqrt(dx*dx + dy*dy)
}
