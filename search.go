package phenor

// noCrossing marks a column whose criterion is never met; it resolves to
// DateUndefined, never to an error.
const noCrossing = -1

// dateAt maps a crossing row to its day-of-year label.
func dateAt(doy []int, j int) float64 {
	if j < 0 || j >= len(doy) {
		return DateUndefined
	}
	return float64(doy[j])
}

// firstAtOrAbove scans forward from row `from` for the first value >= crit.
func firstAtOrAbove(s []float64, from int, crit float64) int {
	if from < 0 {
		from = 0
	}
	for j := from; j < len(s); j++ {
		if s[j] >= crit {
			return j
		}
	}
	return noCrossing
}

// firstAtOrBelow is the deficit-accumulation mirror (crit <= 0 in practice).
func firstAtOrBelow(s []float64, from int, crit float64) int {
	if from < 0 {
		from = 0
	}
	for j := from; j < len(s); j++ {
		if s[j] <= crit {
			return j
		}
	}
	return noCrossing
}

// firstPositive finds the first strictly positive value, the sign-change
// crossing used by moving-threshold couplings.
func firstPositive(s []float64, from int) int {
	if from < 0 {
		from = 0
	}
	for j := from; j < len(s); j++ {
		if s[j] > 0. {
			return j
		}
	}
	return noCrossing
}

// firstSmoothedAtOrAbove applies a centered rolling mean of odd width w and
// returns the first full-window row whose mean reaches crit. Rows too close
// to either boundary for a full window are undefined (no padding).
func firstSmoothedAtOrAbove(s []float64, w int, crit float64) int {
	n, h := len(s), w/2
	if w > n {
		return noCrossing
	}
	sum := 0.
	for j := 0; j < w; j++ {
		sum += s[j]
	}
	fw := float64(w)
	for j := h; j+h < n; j++ {
		if sum/fw >= crit {
			return j
		}
		if j+h+1 < n {
			sum += s[j+h+1] - s[j-h]
		}
	}
	return noCrossing
}

// firstWindowSum scans forward from row `from` for the first row whose
// w-day forward sum reaches crit, stopping at the first hit and never
// reading a partial window past the last row. Series shorter than the
// window cannot trigger.
func firstWindowSum(p []float64, from, w int, crit float64) int {
	if from < 0 {
		from = 0
	}
	if from+w > len(p) {
		return noCrossing
	}
	sum := 0.
	for j := from; j < from+w; j++ {
		sum += p[j]
	}
	for j := from; ; j++ {
		if sum >= crit {
			return j
		}
		if j+w+1 > len(p) {
			return noCrossing
		}
		sum += p[j+w] - p[j]
	}
}
