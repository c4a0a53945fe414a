package phenor

import "math"

// sindex converts a 1-based literature day number (a free parameter, so
// possibly fractional or out of range) to a clamped row index.
func sindex(t0 float64, nd int) int {
	i := int(math.Round(t0)) - 1
	if i < 0 {
		return 0
	}
	if i > nd {
		return nd
	}
	return i
}

// startAtDoy returns the row holding the anchor day-of-year label, or 0 when
// the label is absent from the series.
func startAtDoy(doy []int, anchor int) int {
	for j, d := range doy {
		if d == anchor {
			return j
		}
	}
	return 0
}

// accumulate returns the running cumulative sum of a rate series with rows
// before t0 forced to zero. The input is never modified.
func accumulate(rate []float64, t0 int) []float64 {
	s := make([]float64, len(rate))
	sum := 0.
	for j, r := range rate {
		if j >= t0 {
			sum += r
		}
		s[j] = sum
	}
	return s
}

// hardGate is the binary chilling switch: exactly 0 until the requirement is
// met, exactly 1 from that day forward.
func hardGate(sc, creq float64) float64 {
	if sc >= creq {
		return 1.
	}
	return 0.
}

// softRamp scales forcing from cini up to full efficacy as chilling
// progresses, clipped to 1 once the requirement is met.
func softRamp(sc, cini, creq float64) float64 {
	if sc >= creq {
		return 1.
	}
	k := cini + sc*(1.-cini)/creq
	if k > 1. {
		return 1.
	}
	if k < 0. {
		return 0.
	}
	return k
}
