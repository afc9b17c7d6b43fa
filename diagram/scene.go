package diagram

import (
	"minkowski/lorentz"
	"minkowski/paths"
)

// A Scene holds the state a UI collaborator carries between
// recomputation cycles: the resolved velocity, the grid sampling,
// the point registry and an optional curve. Velocity resolution
// (slider vs. numeric field) happens in the UI; the scene accepts
// one value per cycle.
type Scene struct {
	Velocity float64
	Grid     Grid
	Points   *Registry
	Curve    CurveFunc

	// ClipToExtent trims boosted geometry to the diagram bounds.
	ClipToExtent bool
}

// NewScene returns a scene with the default grid, an empty registry
// and zero velocity.
func NewScene() *Scene {
	return &Scene{
		Grid:   DefaultGrid(),
		Points: NewRegistry(),
	}
}

// Render recomputes the full frame for the current state. An
// invalid velocity is fatal to the cycle: the error is returned
// before any geometry is built and no partial frame exists. A
// failing curve is recoverable: its error is recorded on the frame
// while the grid and the events still render.
func (s *Scene) Render() (*Frame, error) {
	b, err := lorentz.New(s.Velocity)
	if err != nil {
		return nil, err
	}

	f := &Frame{
		Bounds: paths.Square(s.Grid.Extent),
		Lines:  s.Grid.Build(b),
	}

	for _, e := range s.Points.Events() {
		xp, tp := b.XT(e.X, e.T)
		f.Markers = append(f.Markers, Marker{Event: e, At: paths.Vec2{xp, tp}})
	}

	if s.Curve != nil {
		xs, ys, err := SampleCurve(s.Curve, s.Grid.Extent, s.Grid.Dense)
		if err == nil {
			var p paths.Path
			p, err = ProjectCurve(b, xs, ys)
			if err == nil {
				f.Lines = append(f.Lines, Line{Role: RoleCurve, Style: StyleCurve, Path: p})
			}
		}
		f.CurveErr = err
	}

	if s.ClipToExtent {
		f.Clip()
	}
	return f, nil
}

// Toggle snaps a raw clicked position to the grid and toggles the
// event there, using the given color for a new event.
func (s *Scene) Toggle(raw paths.Vec2, color string) {
	if color == "" {
		color = DefaultPointColor
	}
	s.Points.Toggle(Snap(raw), color)
}
