package paths

// Transformed grid lines at high boost velocities reach far outside
// the diagram extent; clipping keeps the renderable frame inside
// the view bounds.

type outcode uint

const (
	ocInside outcode = 0
	ocLeft   outcode = 1
	ocRight  outcode = 2
	ocBelow  outcode = 4
	ocAbove  outcode = 8
)

func (b Bounds) outcode(v Vec2) outcode {
	var c outcode
	if v[0] < b.Min[0] {
		c |= ocLeft
	} else if v[0] > b.Max[0] {
		c |= ocRight
	}
	if v[1] < b.Min[1] {
		c |= ocBelow
	} else if v[1] > b.Max[1] {
		c |= ocAbove
	}
	return c
}

// clipSegment clips the segment v0-v1 against b using the
// Cohen-Sutherland algorithm, from
// https://en.wikipedia.org/wiki/Cohen%E2%80%93Sutherland_algorithm.
// It reports false if no part of the segment lies inside b.
func clipSegment(v0, v1 Vec2, b Bounds) (Vec2, Vec2, bool) {
	c0 := b.outcode(v0)
	c1 := b.outcode(v1)
	for {
		if c0 == ocInside && c1 == ocInside {
			return v0, v1, true
		}
		if c0&c1 != 0 {
			return v0, v1, false
		}
		out := c0
		if c1 > c0 {
			out = c1
		}
		var v Vec2
		switch {
		case out&ocAbove != 0:
			v = Vec2{v0[0] + (v1[0]-v0[0])*(b.Max[1]-v0[1])/(v1[1]-v0[1]), b.Max[1]}
		case out&ocBelow != 0:
			v = Vec2{v0[0] + (v1[0]-v0[0])*(b.Min[1]-v0[1])/(v1[1]-v0[1]), b.Min[1]}
		case out&ocRight != 0:
			v = Vec2{b.Max[0], v0[1] + (v1[1]-v0[1])*(b.Max[0]-v0[0])/(v1[0]-v0[0])}
		case out&ocLeft != 0:
			v = Vec2{b.Min[0], v0[1] + (v1[1]-v0[1])*(b.Min[0]-v0[0])/(v1[0]-v0[0])}
		}
		if out == c0 {
			v0 = v
			c0 = b.outcode(v0)
		} else {
			v1 = v
			c1 = b.outcode(v1)
		}
	}
}

// ClipPath clips a single path against b. Parts of the path outside
// the bounds are dropped, so one path may come back as several.
func ClipPath(p Path, b Bounds) []Path {
	var parts []Path
	var cur *Path
	var cont bool
	for i := 1; i < len(p.V); i++ {
		v0, v1, ok := clipSegment(p.V[i-1], p.V[i], b)
		if !ok {
			cont = false
			continue
		}
		if v0 != p.V[i-1] || !cont {
			parts = append(parts, Path{})
			cur = &parts[len(parts)-1]
			cur.V = append(cur.V, v0)
		}
		cur.V = append(cur.V, v1)
		cont = v1 == p.V[i]
	}
	// drop degenerate parts with fewer than two vertices.
	j := 0
	for i := 0; i < len(parts); i++ {
		if len(parts[i].V) < 2 {
			continue
		}
		parts[j] = parts[i]
		j++
	}
	return parts[:j]
}

// Clip removes all line segments outside the given bounds.
// If a path crosses the bounds, it's broken into multiple paths.
func (ps *Paths) Clip(b Bounds) {
	var result []Path
	for _, p := range ps.P {
		result = append(result, ClipPath(p, b)...)
	}
	ps.P = result
}
