package diagram

import (
	"math"
	"reflect"
	"testing"

	"minkowski/lorentz"
)

func mustBoost(t *testing.T, v float64) lorentz.Boost {
	t.Helper()
	b, err := lorentz.New(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func countRoles(lines []Line) map[Role]int {
	m := map[Role]int{}
	for _, l := range lines {
		m[l.Role]++
	}
	return m
}

func TestBuildLineCounts(t *testing.T) {
	g := DefaultGrid()
	lines := g.Build(mustBoost(t, 0.5))
	got := countRoles(lines)
	want := map[Role]int{
		RoleReference: 22,
		RoleTimeLine:  11,
		RoleSpaceLine: 11,
		RoleAxis:      2,
		RoleLightCone: 2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("role counts = %v, want %v", got, want)
	}
	if len(lines) != 48 {
		t.Errorf("total line count = %d, want 48", len(lines))
	}
}

func TestBuildZeroVelocity(t *testing.T) {
	g := DefaultGrid()
	lines := g.Build(mustBoost(t, 0))
	// With no boost, the transformed time lines trace exactly the
	// horizontal reference lines.
	var ref, tls []Line
	for _, l := range lines {
		switch l.Role {
		case RoleReference:
			ref = append(ref, l)
		case RoleTimeLine:
			tls = append(tls, l)
		}
	}
	for i, l := range tls {
		if !reflect.DeepEqual(l.Path, ref[i].Path) {
			t.Errorf("time line %d differs from its reference line under identity boost", i)
		}
	}
}

func TestLightConesUnboosted(t *testing.T) {
	g := DefaultGrid()
	cones := func(v float64) []Line {
		var out []Line
		for _, l := range g.Build(mustBoost(t, v)) {
			if l.Role == RoleLightCone {
				out = append(out, l)
			}
		}
		return out
	}
	slow := cones(0)
	fast := cones(0.95)
	if !reflect.DeepEqual(slow, fast) {
		t.Error("light cones changed with velocity; they must be emitted unboosted")
	}
	for _, l := range slow {
		for _, v := range l.Path.V {
			if math.Abs(v[0]) != math.Abs(v[1]) {
				t.Fatalf("cone point %v is not on x = ±t", v)
			}
		}
	}
}

func TestBuildFiniteAtExtremeVelocity(t *testing.T) {
	g := DefaultGrid()
	for _, l := range g.Build(mustBoost(t, 0.99)) {
		for _, v := range l.Path.V {
			if math.IsNaN(v[0]) || math.IsInf(v[0], 0) || math.IsNaN(v[1]) || math.IsInf(v[1], 0) {
				t.Fatalf("non-finite geometry %v in role %s", v, l.Role)
			}
		}
	}
}

func TestLinspace(t *testing.T) {
	got := linspace(-5, 5, 11)
	if len(got) != 11 || got[0] != -5 || got[10] != 5 || got[5] != 0 {
		t.Errorf("linspace(-5, 5, 11) = %v", got)
	}
}
