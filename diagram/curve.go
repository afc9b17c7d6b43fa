package diagram

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"minkowski/lorentz"
	"minkowski/paths"
)

// ErrCurveEval reports a failure of the external curve evaluator or
// a non-finite sample. It never aborts grid or point rendering; the
// Scene records it on the frame instead.
var ErrCurveEval = errors.New("diagram: curve evaluation failed")

// CurveFunc is the contract with the external expression-evaluation
// collaborator: given the sample positions, it returns one value per
// position. The core consumes only the numbers and never parses
// expression text.
type CurveFunc func(xs []float64) ([]float64, error)

// SampleCurve evaluates fn on n samples across [-extent, extent].
// Evaluator errors, a wrong result cardinality, and non-finite
// values all surface as ErrCurveEval.
func SampleCurve(fn CurveFunc, extent float64, n int) (xs, ys []float64, err error) {
	xs = linspace(-extent, extent, n)
	ys, err = fn(xs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCurveEval, err)
	}
	if len(ys) != len(xs) {
		return nil, nil, fmt.Errorf("%w: evaluator returned %d values for %d samples", ErrCurveEval, len(ys), len(xs))
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, fmt.Errorf("%w: non-finite value %v at x = %v", ErrCurveEval, y, xs[i])
		}
	}
	return xs, ys, nil
}

// ProjectCurve boosts a sampled curve into the moving frame,
// treating the y values as the time coordinate. The result has the
// same cardinality as the input.
func ProjectCurve(b lorentz.Boost, xs, ys []float64) (paths.Path, error) {
	if len(xs) != len(ys) {
		return paths.Path{}, fmt.Errorf("%w: %d xs vs %d ys", ErrCurveEval, len(xs), len(ys))
	}
	xp, tp := b.Apply(xs, ys)
	return paths.FromSamples(xp, tp), nil
}

// CurveFromSVG reads the longest polyline out of an SVG file and
// rescales it into the diagram extent, flipping the downward SVG y
// axis onto the upward time axis. The result is usable wherever
// evaluator samples are.
func CurveFromSVG(r io.Reader, extent float64) (xs, ys []float64, err error) {
	ps, err := paths.FromSVG(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCurveEval, err)
	}
	best := -1
	for i, p := range ps.P {
		if best < 0 || len(p.V) > len(ps.P[best].V) {
			best = i
		}
	}
	if best < 0 || len(ps.P[best].V) < 2 {
		return nil, nil, fmt.Errorf("%w: no polyline in svg", ErrCurveEval)
	}
	ps.P = ps.P[best : best+1]
	ps.TightenBounds()
	b := ps.Bounds
	if b.Min[0] == b.Max[0] || b.Min[1] == b.Max[1] {
		return nil, nil, fmt.Errorf("%w: svg polyline is degenerate", ErrCurveEval)
	}
	ps.Transform(paths.Bounds{
		Min: paths.Vec2{-extent, extent},
		Max: paths.Vec2{extent, -extent},
	})
	// Hand-drawn exports carry far more points than the curve
	// needs; thin collinear runs before sampling.
	ps.Simplify(1e-6)
	p := ps.P[0]
	xs = make([]float64, len(p.V))
	ys = make([]float64, len(p.V))
	for i, v := range p.V {
		xs[i], ys[i] = v[0], v[1]
	}
	return xs, ys, nil
}

// FixedCurve adapts a pre-sampled curve, such as an imported SVG
// polyline, to the evaluator contract. Samples are ordered by x and
// the curve is evaluated by linear interpolation, clamped to its end
// values outside the sampled range.
func FixedCurve(xs, ys []float64) CurveFunc {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	type sample struct{ x, y float64 }
	pts := make([]sample, n)
	for i := 0; i < n; i++ {
		pts[i] = sample{xs[i], ys[i]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].x < pts[j].x })
	return func(q []float64) ([]float64, error) {
		if len(pts) == 0 {
			return nil, fmt.Errorf("%w: empty curve", ErrCurveEval)
		}
		out := make([]float64, len(q))
		for i, x := range q {
			j := sort.Search(len(pts), func(k int) bool { return pts[k].x >= x })
			switch {
			case j == 0:
				out[i] = pts[0].y
			case j == len(pts):
				out[i] = pts[len(pts)-1].y
			default:
				a, b := pts[j-1], pts[j]
				if b.x == a.x {
					out[i] = b.y
				} else {
					out[i] = a.y + (b.y-a.y)*(x-a.x)/(b.x-a.x)
				}
			}
		}
		return out, nil
	}
}
