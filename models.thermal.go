package phenor

import (
	"math"

	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// buildLIN regresses the event date on the post-t0 mean temperature:
// doy = round(a·mean(Ti) + b). par: (t0, a, b)
func buildLIN(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, a, b := sindex(par[0], nd), par[1], par[2]
	return func(k int) float64 {
		ti := frc.Ti[k][t0:]
		if len(ti) == 0 {
			return DateUndefined
		}
		s := 0.
		for _, t := range ti {
			s += t
		}
		return math.Round(a*s/float64(len(ti)) + b)
	}, nil
}

// thermal builds the forcing-only family: growing-degree-day (TT) or sigmoid
// (TTs) rates, optionally photothermal (×L/24: PTT, PTTs).
// par: (t0, tbase, fcrit) or (t0, b, c, fcrit)
func thermal(sig, photo bool) builder {
	return func(par []float64, frc *forcing.Forcing) (siteFn, error) {
		nd, _ := frc.Dims()
		t0 := sindex(par[0], nd)
		var rate func(t float64) float64
		var fcrit float64
		if sig {
			b, c := par[1], par[2]
			fcrit = par[3]
			rate = func(t float64) float64 { return response.Sigmoid(t, b, c) }
		} else {
			tbase := par[1]
			fcrit = par[2]
			rate = func(t float64) float64 { return response.GDD(t, tbase) }
		}
		return func(k int) float64 {
			rf := response.Map(frc.Ti[k], rate)
			if photo {
				for j, l := range frc.Li[k] {
					rf[j] *= response.DayFraction(l)
				}
			}
			return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, t0), t0, fcrit))
		}, nil
	}
}

// buildM1 weights growing degree days by the decihour photoperiod power law.
// par: (t0, tbase, k, fcrit)
func buildM1(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, tbase, pk, fcrit := sindex(par[0], nd), par[1], par[2], par[3]
	return func(k int) float64 {
		ti, li := frc.Ti[k], frc.Li[k]
		rf := make([]float64, len(ti))
		for j := range rf {
			rf[j] = response.Decihour(li[j], pk) * response.GDD(ti[j], tbase)
		}
		return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, t0), t0, fcrit))
	}, nil
}

// buildM1s is M1 with a sigmoidal forcing response.
// par: (t0, b, c, k, fcrit)
func buildM1s(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, b, c, pk, fcrit := sindex(par[0], nd), par[1], par[2], par[3], par[4]
	return func(k int) float64 {
		ti, li := frc.Ti[k], frc.Li[k]
		rf := make([]float64, len(ti))
		for j := range rf {
			rf[j] = response.Decihour(li[j], pk) * response.Sigmoid(ti[j], b, c)
		}
		return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, t0), t0, fcrit))
	}, nil
}

// buildCDD accumulates a cold deficit below tbase; the event is the first
// downward crossing of fcrit (fcrit <= 0). par: (t0, tbase, fcrit)
func buildCDD(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, tbase, fcrit := sindex(par[0], nd), par[1], par[2]
	return func(k int) float64 {
		rf := response.Map(frc.Ti[k], func(t float64) float64 { return response.CDD(t, tbase) })
		return dateAt(frc.Doy, firstAtOrBelow(accumulate(rf, t0), t0, fcrit))
	}, nil
}

// buildAT is the alternating model: the forcing requirement decays
// exponentially with the number of chill days, Sf >= a + b·exp(c·NCD).
// par: (t0, tbase, a, b, c)
func buildAT(par []float64, frc *forcing.Forcing) (siteFn, error) {
	nd, _ := frc.Dims()
	t0, tbase, a, b, c := sindex(par[0], nd), par[1], par[2], par[3], par[4]
	return func(k int) float64 {
		ti := frc.Ti[k]
		sc := accumulate(response.Map(ti, func(t float64) float64 { return response.ChillDay(t, tbase) }), t0)
		sf := accumulate(response.Map(ti, func(t float64) float64 { return response.GDD(t, tbase) }), t0)
		resid := make([]float64, len(ti))
		for j := range resid {
			resid[j] = sf[j] - (a + b*math.Exp(c*sc[j]))
		}
		return dateAt(frc.Doy, firstPositive(resid, t0))
	}, nil
}
