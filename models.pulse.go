package phenor

import (
	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// pulseWindow is the forward precipitation window of the rainfall-pulse
// trigger (days).
const pulseWindow = 8

// buildGR is the grassland rainfall-pulse model: sigmoidal forcing counts
// only once the 8-day forward precipitation sum first reaches pcrit; the
// gate latches open from that day forward. The pulse search is early-exit —
// it stops at the first trigger instead of rolling sums over the whole
// series. par: (t0, pcrit, b, c, fcrit)
func buildGR(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, pcrit, b, c, fcrit := sindex(par[0], nd), par[1], par[2], par[3], par[4]
	return func(k int) float64 {
		jw := firstWindowSum(frc.Pi[k], t0, pulseWindow, pcrit)
		if jw == noCrossing {
			return DateUndefined
		}
		ti := frc.Ti[k]
		rf := make([]float64, len(ti))
		for j := jw; j < len(rf); j++ {
			rf[j] = response.Sigmoid(ti[j], b, c)
		}
		return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, jw), jw, fcrit))
	}, nil
}
