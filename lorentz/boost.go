// Package lorentz implements Lorentz boosts in 1+1 and 2+1
// dimensions, together with the solver that finds the boost
// aligning two events along a common transformed time axis.
//
// All velocities are fractions of the speed of light, so the
// valid range is the open interval (-1, 1).
package lorentz

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidVelocity reports a velocity whose magnitude is at or
// beyond the speed of light, for which no finite Lorentz factor
// exists.
var ErrInvalidVelocity = errors.New("lorentz: velocity magnitude must be below 1")

// A Boost is a Lorentz transformation along the x axis at a fixed
// relative velocity. Boosts must be created with New so that the
// velocity is validated before the Lorentz factor is computed.
type Boost struct {
	v     float64
	gamma float64
}

// New returns the boost for velocity v, or ErrInvalidVelocity if
// |v| >= 1 (including NaN).
func New(v float64) (Boost, error) {
	if !(math.Abs(v) < 1) {
		return Boost{}, fmt.Errorf("%w: v = %v", ErrInvalidVelocity, v)
	}
	return Boost{v: v, gamma: 1 / math.Sqrt(1-v*v)}, nil
}

// V returns the boost velocity.
func (b Boost) V() float64 { return b.v }

// Gamma returns the Lorentz factor 1/sqrt(1-v^2).
func (b Boost) Gamma() float64 { return b.gamma }

// Inverse returns the boost that undoes b.
func (b Boost) Inverse() Boost {
	return Boost{v: -b.v, gamma: b.gamma}
}

// XT transforms a single event, returning its coordinates in the
// moving frame.
func (b Boost) XT(x, t float64) (xp, tp float64) {
	return b.gamma * (x - b.v*t), b.gamma * (t - b.v*x)
}

// Apply transforms whole sampled ranges at once, element-wise.
// The two slices must have the same length.
func (b Boost) Apply(xs, ts []float64) (xp, tp []float64) {
	if len(xs) != len(ts) {
		panic("lorentz: mismatched sample lengths")
	}
	xp = make([]float64, len(xs))
	tp = make([]float64, len(ts))
	for i := range xs {
		xp[i], tp[i] = b.XT(xs[i], ts[i])
	}
	return xp, tp
}

// A Boost2 is the planar extension: a boost with velocity
// components (vx, vy) in the x-y plane.
type Boost2 struct {
	vx, vy float64
	gamma  float64
}

// New2 returns the planar boost for velocity (vx, vy), or
// ErrInvalidVelocity if vx*vx+vy*vy >= 1.
func New2(vx, vy float64) (Boost2, error) {
	v2 := vx*vx + vy*vy
	if !(v2 < 1) {
		return Boost2{}, fmt.Errorf("%w: |v|^2 = %v", ErrInvalidVelocity, v2)
	}
	return Boost2{vx: vx, vy: vy, gamma: 1 / math.Sqrt(1-v2)}, nil
}

// V returns the velocity components.
func (b Boost2) V() (vx, vy float64) { return b.vx, b.vy }

// Gamma returns the Lorentz factor.
func (b Boost2) Gamma() float64 { return b.gamma }

// Inverse returns the boost that undoes b.
func (b Boost2) Inverse() Boost2 {
	return Boost2{vx: -b.vx, vy: -b.vy, gamma: b.gamma}
}

// XYT transforms a single planar event.
func (b Boost2) XYT(x, y, t float64) (xp, yp, tp float64) {
	return b.gamma * (x - b.vx*t),
		b.gamma * (y - b.vy*t),
		b.gamma * (t - b.vx*x - b.vy*y)
}

// Apply transforms sampled planar ranges element-wise. All three
// slices must have the same length.
func (b Boost2) Apply(xs, ys, ts []float64) (xp, yp, tp []float64) {
	if len(xs) != len(ys) || len(xs) != len(ts) {
		panic("lorentz: mismatched sample lengths")
	}
	xp = make([]float64, len(xs))
	yp = make([]float64, len(ys))
	tp = make([]float64, len(ts))
	for i := range xs {
		xp[i], yp[i], tp[i] = b.XYT(xs[i], ys[i], ts[i])
	}
	return xp, yp, tp
}

// Clamp limits v to [-limit, limit]. UI collaborators use it to keep
// slider-style input strictly inside the valid range (the usual
// limit is 0.99).
func Clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
