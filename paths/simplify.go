package paths

import (
	"math"
)

func vec2linedist(v, s, e Vec2) float64 {
	ds := vec2dist(v, s)
	de := vec2dist(v, e)
	n := Vec2{e[1] - s[1], s[0] - e[0]}
	dp := v[0]*n[0] + v[1]*n[1]
	return math.Min(math.Min(math.Abs(dp), ds), de)
}

func simplifyPath(v []Vec2, tol float64) []Vec2 {
	worst := 0
	worstD := 0.0
	for i := 1; i < len(v)-1; i++ {
		d := vec2linedist(v[i], v[0], v[len(v)-1])
		if d > worstD {
			worst = i
			worstD = d
		}
	}
	if worstD <= tol {
		return []Vec2{v[0], v[len(v)-1]}
	}
	lefts := simplifyPath(v[:worst+1], tol)
	rights := simplifyPath(v[worst:], tol)
	return append(lefts, rights[1:]...)
}

// SimplifyPath removes points from a single path, with the
// guarantee that all removed points are within the given tolerance
// (distance) from the new path. Densely sampled straight lines
// shrink to their two endpoints.
func SimplifyPath(p Path, tol float64) Path {
	if len(p.V) < 3 {
		return p
	}
	return Path{V: simplifyPath(p.V, tol)}
}

// Simplify applies SimplifyPath to every path in the set.
func (ps *Paths) Simplify(tol float64) {
	for i, p := range ps.P {
		ps.P[i] = SimplifyPath(p, tol)
	}
}
