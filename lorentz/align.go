package lorentz

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateAlignment reports two simultaneous, spatially
// separated events: no finite boost puts them on one time-axis line.
var ErrDegenerateAlignment = errors.New("lorentz: events are simultaneous, no aligning boost exists")

// ErrSuperluminalAlignment reports an event pair whose alignment
// would require a velocity at or beyond the speed of light.
var ErrSuperluminalAlignment = errors.New("lorentz: alignment requires superluminal velocity")

// Align returns the velocity of the frame in which the events
// (x1, t1) and (x2, t2) lie on a common line of constant position,
// parallel to the boosted time axis. The events must be distinct;
// choosing exactly two of them is the caller's responsibility.
//
// The velocity is dx/dt. Align fails with ErrDegenerateAlignment
// when dt is zero and with ErrSuperluminalAlignment when
// |dx/dt| >= 1; otherwise the result is guaranteed valid for New.
func Align(x1, t1, x2, t2 float64) (float64, error) {
	dx := x2 - x1
	dt := t2 - t1
	if dt == 0 {
		return 0, fmt.Errorf("%w: dt = 0 between (%v, %v) and (%v, %v)", ErrDegenerateAlignment, x1, t1, x2, t2)
	}
	v := dx / dt
	if math.Abs(v) >= 1 {
		return 0, fmt.Errorf("%w: dx/dt = %v", ErrSuperluminalAlignment, v)
	}
	return v, nil
}
