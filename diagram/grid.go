package diagram

import (
	"minkowski/lorentz"
	"minkowski/paths"
)

// Grid describes the untransformed sampling of the diagram: a square
// extent with Steps grid lines per family, and a denser sampling for
// the highlighted axes and the light cones.
type Grid struct {
	Extent float64 // half-width of the square diagram
	Steps  int     // grid lines per family
	Dense  int     // samples for axes and cones
}

// DefaultGrid matches the usual presentation: ticks at every integer
// from -5 to 5.
func DefaultGrid() Grid {
	return Grid{Extent: 5, Steps: 11, Dense: 100}
}

// Build computes every grid line of the diagram for the given boost:
// the unboosted reference grid, the boosted time and space lines,
// the boosted axis highlights, and the light cones. The light cones
// x = ±t are invariant under any boost, so they are emitted
// unboosted rather than recomputed through the transform.
//
// The result has 2*Steps reference lines, Steps time lines, Steps
// space lines, two axes and two cones, in that drawing order.
func (g Grid) Build(b lorentz.Boost) []Line {
	ticks := linspace(-g.Extent, g.Extent, g.Steps)
	dense := linspace(-g.Extent, g.Extent, g.Dense)

	var lines []Line
	add := func(role Role, p paths.Path) {
		lines = append(lines, Line{Role: role, Style: styleFor(role), Path: p})
	}

	// Fixed visual anchor: one horizontal and one vertical
	// unboosted line per tick.
	for _, tv := range ticks {
		add(RoleReference, paths.FromSamples(ticks, constants(tv, g.Steps)))
	}
	for _, xv := range ticks {
		add(RoleReference, paths.FromSamples(constants(xv, g.Steps), ticks))
	}

	// Lines of constant t and of constant x, boosted pointwise.
	for _, tv := range ticks {
		xp, tp := b.Apply(ticks, constants(tv, g.Steps))
		add(RoleTimeLine, paths.FromSamples(xp, tp))
	}
	for _, xv := range ticks {
		xp, tp := b.Apply(constants(xv, g.Steps), ticks)
		add(RoleSpaceLine, paths.FromSamples(xp, tp))
	}

	// Highlighted axes: x = 0 over a dense time sample, t = 0 over a
	// dense space sample.
	xp, tp := b.Apply(constants(0, g.Dense), dense)
	add(RoleAxis, paths.FromSamples(xp, tp))
	xp, tp = b.Apply(dense, constants(0, g.Dense))
	add(RoleAxis, paths.FromSamples(xp, tp))

	// Light cones x = t and x = -t.
	neg := make([]float64, g.Dense)
	for i, v := range dense {
		neg[i] = -v
	}
	add(RoleLightCone, paths.FromSamples(dense, dense))
	add(RoleLightCone, paths.FromSamples(dense, neg))

	return lines
}
