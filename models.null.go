package phenor

import (
	"math"

	"github.com/scelmendorf/phenor/forcing"
)

// buildNM is the null reference model: every site is predicted at the
// rounded mean of the observed transition dates. par: ()
func buildNM(_ []float64, frc *forcing.Forcing) (siteFn, error) {
	s, n := 0., 0
	for _, v := range frc.TransitionDates {
		if math.IsNaN(v) || v == DateUndefined {
			continue
		}
		s += v
		n++
	}
	if n == 0 {
		return undefinedEverywhere, nil
	}
	mu := math.Round(s / float64(n))
	return func(int) float64 { return mu }, nil
}
