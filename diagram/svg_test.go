package diagram

import (
	"bytes"
	"strings"
	"testing"

	"minkowski/paths"
)

func TestWriteSVG(t *testing.T) {
	s := NewScene()
	s.Velocity = 0.5
	s.Points.Add(Event{Coord: Coord{X: 1, T: 2}, Color: "purple"})
	f, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}

	var bb bytes.Buffer
	if err := f.WriteSVG(&bb); err != nil {
		t.Fatal(err)
	}
	out := bb.String()

	for _, want := range []string{
		`stroke="lightgray"`,
		`stroke="red"`,
		`stroke="blue"`,
		`data-role="light-cone"`,
		`stroke-dasharray`,
		`fill="purple"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output missing %s", want)
		}
	}
}

// The exporter's output must stay readable by the polyline importer,
// so an exported frame can come back as a curve source.
func TestWriteSVGReadableByImporter(t *testing.T) {
	s := NewScene()
	s.Velocity = 0.25
	f, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	var bb bytes.Buffer
	if err := f.WriteSVG(&bb); err != nil {
		t.Fatal(err)
	}
	ps, err := paths.FromSVG(&bb)
	if err != nil {
		t.Fatalf("importer rejected exported frame: %v", err)
	}
	if len(ps.P) != len(f.Lines) {
		t.Errorf("imported %d paths from %d exported lines", len(ps.P), len(f.Lines))
	}
}

// Axis and cone lines are sampled densely for boosting, but they are
// straight, so export should carry only their endpoints.
func TestWriteSVGThinsDenseLines(t *testing.T) {
	s := NewScene()
	f, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	var bb bytes.Buffer
	if err := f.WriteSVG(&bb); err != nil {
		t.Fatal(err)
	}
	out := bb.String()

	i := strings.Index(out, `data-role="axis-highlight">`)
	if i < 0 {
		t.Fatal("no axis group in output")
	}
	g := out[i:]
	g = g[:strings.Index(g, "</g>")]
	// One comma per exported point; two axes of two points each.
	if n := strings.Count(g, ","); n != 4 {
		t.Errorf("axis group carries %d points, want 4:\n%s", n, g)
	}
}

func TestWriteSVGMarkerSize(t *testing.T) {
	s := NewScene()
	s.Points.Add(Event{Coord: Coord{X: 1, T: 1}, Color: "teal", Size: 0.3})
	s.Points.Add(Event{Coord: Coord{X: 2, T: 2}, Color: "teal"})
	f, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	var bb bytes.Buffer
	if err := f.WriteSVG(&bb); err != nil {
		t.Fatal(err)
	}
	out := bb.String()
	if !strings.Contains(out, `r="0.300"`) {
		t.Errorf("sized marker missing from output:\n%s", out)
	}
	if !strings.Contains(out, `r="0.120"`) {
		t.Errorf("default-sized marker missing from output:\n%s", out)
	}
}
