// Package response holds the elementwise environmental response curves shared
// by the model catalog. Kernels are scalar; Map lifts them over a driver
// series without mutating it.
package response

import "math"

// Map applies f elementwise, returning a fresh slice.
func Map(xs []float64, f func(float64) float64) []float64 {
	o := make([]float64, len(xs))
	for i, x := range xs {
		o[i] = f(x)
	}
	return o
}

// GDD is the growing-degree-day forcing rate above a base temperature.
func GDD(t, tbase float64) float64 {
	if t > tbase {
		return t - tbase
	}
	return 0.
}

// CDD is the chilling-degree-day deficit rate below a base temperature
// (non-positive; accumulates downward).
func CDD(t, tbase float64) float64 {
	if t < tbase {
		return t - tbase
	}
	return 0.
}

// ChillDay counts a day as chilling when below the base temperature.
func ChillDay(t, tbase float64) float64 {
	if t < tbase {
		return 1.
	}
	return 0.
}

// Triangular rises linearly from 0 at tmin to 1 at topt and falls back to 0
// at tmax; 0 outside [tmin, tmax]. Callers must guarantee tmin < topt < tmax.
func Triangular(t, tmin, topt, tmax float64) float64 {
	switch {
	case t <= tmin || t >= tmax:
		return 0.
	case t <= topt:
		return (t - tmin) / (topt - tmin)
	default:
		return (tmax - t) / (tmax - topt)
	}
}

// Bell is the smooth single-peaked chilling response
// 1/(1+exp(a·(t−c)²+b·(t−c))), always in (0,1).
func Bell(t, a, b, c float64) float64 {
	return 1. / (1. + math.Exp(a*(t-c)*(t-c)+b*(t-c)))
}

// Sigmoid is the monotonic forcing response 1/(1+exp(−b·(t−c))), in (0,1).
func Sigmoid(t, b, c float64) float64 {
	return 1. / (1. + math.Exp(-b*(t-c)))
}

// RampUp maps x onto [0,1] linearly between lo and hi. Callers must
// guarantee lo < hi.
func RampUp(x, lo, hi float64) float64 {
	switch {
	case x <= lo:
		return 0.
	case x >= hi:
		return 1.
	default:
		return (x - lo) / (hi - lo)
	}
}

// RampDown is the mirrored ramp, 1 at/below lo falling to 0 at/above hi.
func RampDown(x, lo, hi float64) float64 {
	return 1. - RampUp(x, lo, hi)
}
