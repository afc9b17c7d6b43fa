package diagram

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"minkowski/lorentz"
)

func TestSampleCurve(t *testing.T) {
	parabola := func(xs []float64) ([]float64, error) {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = x * x / 5
		}
		return ys, nil
	}
	xs, ys, err := SampleCurve(parabola, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 100 || len(ys) != 100 {
		t.Fatalf("got %d/%d samples, want 100", len(xs), len(ys))
	}
	if xs[0] != -5 || xs[99] != 5 {
		t.Errorf("sample range [%v, %v], want [-5, 5]", xs[0], xs[99])
	}
}

func TestSampleCurveErrors(t *testing.T) {
	cases := []struct {
		desc string
		fn   CurveFunc
	}{
		{"evaluator error", func(xs []float64) ([]float64, error) {
			return nil, fmt.Errorf("parse error at offset 3")
		}},
		{"wrong cardinality", func(xs []float64) ([]float64, error) {
			return xs[:len(xs)-1], nil
		}},
		{"non-finite value", func(xs []float64) ([]float64, error) {
			ys := make([]float64, len(xs))
			ys[len(ys)/2] = math.Inf(1)
			return ys, nil
		}},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if _, _, err := SampleCurve(c.fn, 5, 20); !errors.Is(err, ErrCurveEval) {
				t.Errorf("got err %v, want ErrCurveEval", err)
			}
		})
	}
}

func TestProjectCurveIdentity(t *testing.T) {
	b, err := lorentz.New(0)
	if err != nil {
		t.Fatal(err)
	}
	xs := []float64{-1, 0, 1}
	ys := []float64{2, 0, 2}
	p, err := ProjectCurve(b, xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		if p.V[i][0] != xs[i] || p.V[i][1] != ys[i] {
			t.Errorf("identity projection moved sample %d: %v", i, p.V[i])
		}
	}
}

func TestProjectCurveMismatch(t *testing.T) {
	b, err := lorentz.New(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ProjectCurve(b, []float64{1, 2}, []float64{1}); !errors.Is(err, ErrCurveEval) {
		t.Errorf("got err %v, want ErrCurveEval", err)
	}
}

func TestCurveFromSVG(t *testing.T) {
	svg := `<svg width="100" height="100">
	  <path d="M 0, 100 50, 0 100, 100"/>
	</svg>`
	xs, ys, err := CurveFromSVG(strings.NewReader(svg), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 3 {
		t.Fatalf("got %d samples, want 3", len(xs))
	}
	// The drawing spans the whole extent; its peak (y = 0 in SVG,
	// so the top) maps to t = +5.
	if xs[0] != -5 || xs[2] != 5 {
		t.Errorf("xs = %v, want endpoints at ±5", xs)
	}
	if ys[0] != -5 || ys[1] != 5 || ys[2] != -5 {
		t.Errorf("ys = %v, want [-5, 5, -5]", ys)
	}
}

func TestCurveFromSVGNoPolyline(t *testing.T) {
	svg := `<svg width="10" height="10"></svg>`
	if _, _, err := CurveFromSVG(strings.NewReader(svg), 5); !errors.Is(err, ErrCurveEval) {
		t.Errorf("got err %v, want ErrCurveEval", err)
	}
}

func TestFixedCurveInterpolates(t *testing.T) {
	fn := FixedCurve([]float64{-2, 0, 2}, []float64{0, 4, 0})
	ys, err := fn([]float64{-3, -1, 0, 1, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 2, 4, 2, 0}
	for i := range want {
		if math.Abs(ys[i]-want[i]) > 1e-12 {
			t.Errorf("ys[%d] = %v, want %v", i, ys[i], want[i])
		}
	}
}

func TestCurveFromSVGThinsCollinearPoints(t *testing.T) {
	svg := `<svg width="10" height="10">
<path d="M 0, 10 L 2, 8 L 5, 5 L 10, 0"/>
</svg>`
	xs, ys, err := CurveFromSVG(strings.NewReader(svg), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("got %d samples, want collinear drawing thinned to 2", len(xs))
	}
	if xs[0] != -5 || xs[1] != 5 {
		t.Errorf("xs = %v, want endpoints at ±5", xs)
	}
}
