package paths

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

// A worldline-style test svg with a nested, transformed group, the
// shape a drawing tool typically saves.
var testSVG = `
<svg width="200" height="100">
   <path d="M 20, 80 60, 40 100, 60"/>
   <g transform="translate(100, 0) scale(2)" stroke="black" fill="none">
	   <path d="M10,40 40, 10"/>
	   <g transform="translate(5,5)">
		   <line x1="0" y1="0" x2="10" y2="20"/>
	   </g>
   </g>
</svg>`

func TestSVG(t *testing.T) {
	got, err := FromSVG(strings.NewReader(testSVG))
	if err != nil {
		t.Fatalf("failed to parse svg: %v", err)
	}
	want := &Paths{
		Bounds: Bounds{Max: Vec2{200, 100}},
		P: []Path{
			{V: []Vec2{{20, 80}, {60, 40}, {100, 60}}},
			{V: []Vec2{{120, 80}, {180, 20}}},
			{V: []Vec2{{110, 10}, {130, 50}}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("svg parse. Got:\n%v\nWant:\n%v\n", got, want)
	}
}

// TestSVGRoundTrip parses paths out of an svg, writes them back
// to a new svg file, parses the paths out of that, and then checks
// that the paths (or bounds) don't change.
func TestSVGRoundTrip(t *testing.T) {
	got, err := FromSVG(strings.NewReader(testSVG))
	if err != nil {
		t.Fatalf("failed to parse svg: %v", err)
	}
	if len(got.P) == 0 {
		t.Fatalf("expected some paths")
	}
	var bb bytes.Buffer
	if err := got.SVG(&bb); err != nil {
		t.Fatalf("failed to write back svg: %v", err)
	}
	got2, err := FromSVG(&bb)
	if err != nil {
		t.Fatalf("failed to re-parse svg: %v", err)
	}
	if !reflect.DeepEqual(got, got2) {
		t.Errorf("svg round-trip not identity. Started with:\n%v\nGot:\n%v", got, got2)
	}
}
