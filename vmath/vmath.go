package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapUnit wraps v into [0,1), treating the unit interval as circular
// Handles negative inputs: WrapUnit(-0.25) = 0.75
func WrapUnit(v float64) float64 {
	v = math.Mod(v, 1.0)
	if v < 0 {
		v += 1.0
	}
	return v
}

// CircularDelta returns the signed shortest distance from b to a on the
// unit circle, in [-0.5, 0.5). An event at 0.98 and a phase of 0.01 are
// 0.03 apart, not 0.97
func CircularDelta(a, b float64) float64 {
	d := WrapUnit(a - b)
	if d >= 0.5 {
		d -= 1.0
	}
	return d
}

// EaseSin is a half-sine envelope over t in [0,1]: zero at both ends,
// peak 1.0 at t=0.5, derivative bounded by π
// Inputs outside [0,1] return 0
func EaseSin(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return math.Sin(math.Pi * t)
}

// EaseCos is the smooth 0→1 ramp 0.5-0.5*cos(πt), clamped outside [0,1]
func EaseCos(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}
