package paths

import (
	"reflect"
	"testing"
)

type clipTestCase struct {
	bounds Bounds
	path   Path
	want   []Path
}

func TestClip(t *testing.T) {
	b := func(x0, y0, x1, y1 float64) Bounds {
		return Bounds{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
	}
	p := func(args ...float64) Path {
		if len(args)%2 != 0 {
			t.Fatalf("p helper needs an even number of args, got %v", args)
		}
		path := Path{}
		for i := 0; i < len(args); i += 2 {
			path.V = append(path.V, Vec2{args[i], args[i+1]})
		}
		return path
	}

	cases := []clipTestCase{
		{
			// horizontal grid line leaving the extent on the right
			bounds: b(-5, -5, 5, 5),
			path:   p(-3, 2, 8, 2),
			want:   []Path{p(-3, 2, 5, 2)},
		},
		{
			// line crossing the whole extent
			bounds: b(-5, -5, 5, 5),
			path:   p(-8, 0, 8, 0),
			want:   []Path{p(-5, 0, 5, 0)},
		},
		{
			// steep boosted time line leaving through the top
			bounds: b(-5, -5, 5, 5),
			path:   p(0, 0, 2, 10),
			want:   []Path{p(0, 0, 1, 5)},
		},
		{
			// fully outside
			bounds: b(-5, -5, 5, 5),
			path:   p(6, 6, 10, 10),
			want:   nil,
		},
		{
			// path dips out of the extent and comes back: split in two
			bounds: b(-5, -5, 5, 5),
			path:   p(-4, 4, 0, 8, 4, 4),
			want:   []Path{p(-4, 4, -3, 5), p(3, 5, 4, 4)},
		},
	}
	for _, c := range cases {
		arg := &Paths{
			Bounds: b(-100, -100, 100, 100),
			P:      []Path{c.path},
		}
		ps := &Paths{
			Bounds: arg.Bounds,
			P:      []Path{{V: append([]Vec2{}, c.path.V...)}},
		}
		ps.Clip(c.bounds)
		if !reflect.DeepEqual(ps.P, c.want) {
			t.Errorf("%v.Clip(%v).P = %v, want %v", arg, c.bounds, ps.P, c.want)
		}
	}
}

func TestFromSamples(t *testing.T) {
	got := FromSamples([]float64{-1, 0, 1}, []float64{2, 3, 4})
	want := Path{V: []Vec2{{-1, 2}, {0, 3}, {1, 4}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromSamples = %v, want %v", got, want)
	}
}

func TestSquare(t *testing.T) {
	got := Square(5)
	want := Bounds{Min: Vec2{-5, -5}, Max: Vec2{5, 5}}
	if got != want {
		t.Errorf("Square(5) = %v, want %v", got, want)
	}
}

func TestTransformFlip(t *testing.T) {
	// Mapping onto bounds with an inverted time axis flips the
	// paths, as used when importing SVG (y grows downwards there).
	ps := &Paths{
		Bounds: Bounds{Max: Vec2{10, 10}},
		P:      []Path{{V: []Vec2{{0, 0}, {10, 10}}}},
	}
	ps.Transform(Bounds{Min: Vec2{-5, 5}, Max: Vec2{5, -5}})
	want := []Path{{V: []Vec2{{-5, 5}, {5, -5}}}}
	if !reflect.DeepEqual(ps.P, want) {
		t.Errorf("flipped transform = %v, want %v", ps.P, want)
	}
}
