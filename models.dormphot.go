package phenor

import (
	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// buildDP is the dormancy-photoperiod model, a three-tier nested gate:
// a dormancy-release sub-accumulation DS (cool days, decreasing sigmoid)
// must reach dcrit before chilling counts; chilling must reach ccrit before
// forcing counts; forcing itself passes a hard photoperiod gate that is open
// only on non-shortening days at or above pcrit hours.
// par: (t0, ads, bds, dcrit, ac, cc, ccrit, bf, cf, pcrit, fcrit)
func buildDP(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0 := sindex(par[0], nd)
	ads, bds, dcrit := par[1], par[2], par[3]
	ac, cc, ccrit := par[4], par[5], par[6]
	bf, cf := par[7], par[8]
	pcrit, fcrit := par[9], par[10]
	return func(k int) float64 {
		ti, li := frc.Ti[k], frc.Li[k]

		sds := accumulate(response.Map(ti, func(t float64) float64 { return response.Sigmoid(t, -ads, bds) }), t0)
		td := firstAtOrAbove(sds, t0, dcrit)
		if td == noCrossing {
			return DateUndefined
		}

		sc := accumulate(response.Map(ti, func(t float64) float64 { return response.Sigmoid(t, -ac, cc) }), td)
		tc := firstAtOrAbove(sc, td, ccrit)
		if tc == noCrossing {
			return DateUndefined
		}

		rf := make([]float64, len(ti))
		for j := range rf {
			lprev := li[j]
			if j > 0 {
				lprev = li[j-1]
			}
			rf[j] = response.PhotoGate(li[j], lprev, pcrit) * response.Sigmoid(ti[j], bf, cf)
		}
		return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, tc), tc, fcrit))
	}, nil
}
