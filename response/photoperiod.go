package response

import "math"

// Daylength units differ across the catalog (hours, decihours, day fraction);
// each model's configuration states which scaler it reads.

// DayFraction scales daylength hours to a fraction of the day.
func DayFraction(l float64) float64 { return l / 24. }

// Decihour is the power-law photoperiod weight (l/10)^k on decihours.
func Decihour(l, k float64) float64 { return math.Pow(l/10., k) }

// PhotoGate opens (1) only when daylength is at or above lcrit and has not
// shortened since the previous day; shortening days close the gate.
func PhotoGate(l, lprev, lcrit float64) float64 {
	if l >= lcrit && l >= lprev {
		return 1.
	}
	return 0.
}
