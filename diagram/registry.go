package diagram

import (
	"math"

	"minkowski/paths"
)

// DefaultPointColor is the placement color when the user has not
// picked one (the originals default their color picker to purple).
const DefaultPointColor = "purple"

// Coord is an event's position on the untransformed grid. It is the
// event's identity in the registry.
type Coord struct {
	X, T float64
}

// DefaultPointSize is the marker radius, in diagram units, used
// when an event does not set its own.
const DefaultPointSize = 0.12

// An Event is a user-placed spacetime point with a display color
// and an optional marker size.
type Event struct {
	Coord
	Color string

	// Size is the marker radius in diagram units; zero means
	// DefaultPointSize.
	Size float64
}

// Radius returns the event's marker radius, defaulted.
func (e Event) Radius() float64 {
	if e.Size > 0 {
		return e.Size
	}
	return DefaultPointSize
}

// Snap rounds a raw clicked position to the nearest integer grid
// intersection, in untransformed coordinates, before it is handed
// to Toggle or Add.
func Snap(v paths.Vec2) Coord {
	return Coord{X: math.Round(v[0]), T: math.Round(v[1])}
}

type regEntry struct {
	ev      Event
	deleted bool
}

// A Registry owns the user-placed events of one interactive session.
// Events are keyed by coordinate: adding at an occupied coordinate
// restyles the existing event instead of duplicating geometry, which
// also makes click-driven toggling idempotent in pairs. Iteration
// order is insertion order, so rendered output is reproducible.
//
// Removed entries are tombstoned and compacted once they outnumber
// the live ones, keeping every operation O(1) amortized.
type Registry struct {
	entries []regEntry
	index   map[Coord]int
	live    int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: map[Coord]int{}}
}

// Add inserts an event, or restyles the existing event at the same
// coordinates.
func (r *Registry) Add(e Event) {
	if r.index == nil {
		r.index = map[Coord]int{}
	}
	if i, ok := r.index[e.Coord]; ok {
		r.entries[i].ev = e
		return
	}
	r.index[e.Coord] = len(r.entries)
	r.entries = append(r.entries, regEntry{ev: e})
	r.live++
}

// Has reports whether an event exists at c.
func (r *Registry) Has(c Coord) bool {
	_, ok := r.index[c]
	return ok
}

// Get returns the event at c, if any.
func (r *Registry) Get(c Coord) (Event, bool) {
	i, ok := r.index[c]
	if !ok {
		return Event{}, false
	}
	return r.entries[i].ev, true
}

// Toggle removes the event at c if present, and otherwise adds one
// with the given color. It backs click-driven placement.
func (r *Registry) Toggle(c Coord, color string) {
	if r.Has(c) {
		r.Remove(c)
		return
	}
	r.Add(Event{Coord: c, Color: color})
}

// Remove deletes the event at c. Removing an absent coordinate is a
// no-op, not an error.
func (r *Registry) Remove(c Coord) {
	i, ok := r.index[c]
	if !ok {
		return
	}
	r.entries[i].deleted = true
	delete(r.index, c)
	r.live--
	if r.live*2 < len(r.entries) {
		r.compact()
	}
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.entries = nil
	r.index = map[Coord]int{}
	r.live = 0
}

// Len returns the number of events.
func (r *Registry) Len() int { return r.live }

// Events returns the events in insertion order.
func (r *Registry) Events() []Event {
	out := make([]Event, 0, r.live)
	for _, e := range r.entries {
		if !e.deleted {
			out = append(out, e.ev)
		}
	}
	return out
}

func (r *Registry) compact() {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !e.deleted {
			r.index[e.ev.Coord] = len(kept)
			kept = append(kept, e)
		}
	}
	r.entries = kept
}
