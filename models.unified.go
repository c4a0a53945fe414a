package phenor

import (
	"math"

	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// unified builds the exponential-suppression family (Chuine's unified model):
// bell-shaped chilling accumulates from t0; forcing accumulates only once the
// chilling requirement creq is met; the event is the first strictly positive
// value of Sf − w·exp(f·Sc), i.e. the forcing sum overtaking a critical
// threshold that decays with accumulated chill. UM1 adds the decihour
// photoperiod weight. par: (t0, ac, bc, cc, bf, cf, w, f, creq[, pk])
func unified(photo bool) builder {
	return func(par []float64, frc *forcing.Forcing) (siteFn, error) {
		nd, _ := frc.Dims()
		t0 := sindex(par[0], nd)
		ac, bc, cc := par[1], par[2], par[3]
		bf, cf := par[4], par[5]
		w, f, creq := par[6], par[7], par[8]
		var pk float64
		if photo {
			pk = par[9]
		}
		return func(k int) float64 {
			ti := frc.Ti[k]
			sc := accumulate(response.Map(ti, func(t float64) float64 { return response.Bell(t, ac, bc, cc) }), t0)
			t1 := firstAtOrAbove(sc, t0, creq)
			if t1 == noCrossing {
				return DateUndefined
			}
			rf := make([]float64, len(ti))
			for j := range rf {
				rf[j] = response.Sigmoid(ti[j], bf, cf)
				if photo {
					rf[j] *= response.Decihour(frc.Li[k][j], pk)
				}
			}
			sf := accumulate(rf, t1)
			resid := make([]float64, len(ti))
			for j := range resid {
				resid[j] = sf[j] - w*math.Exp(f*sc[j])
			}
			return dateAt(frc.Doy, firstPositive(resid, t1))
		}, nil
	}
}
