package phenor

import (
	"fmt"

	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// chillKernel selects the chilling response for the dual-phase families:
// triangular (Topt/Tmin/Tmax) or bell-shaped (a/b/c). Triangular draws that
// collapse a flank are rejected before any evaluation.
func chillKernel(bell bool, p []float64) (func(float64) float64, error) {
	if bell {
		a, b, c := p[0], p[1], p[2]
		return func(t float64) float64 { return response.Bell(t, a, b, c) }, nil
	}
	topt, tmin, tmax := p[0], p[1], p[2]
	if !(tmin < topt && topt < tmax) {
		return nil, fmt.Errorf("%w: triangular response requires tmin < topt < tmax (%g, %g, %g)", ErrDegenerate, tmin, topt, tmax)
	}
	return func(t float64) float64 { return response.Triangular(t, tmin, topt, tmax) }, nil
}

// sequential builds the hard-gate chilling/forcing family: forcing degree
// days count only once accumulated chilling reaches creq, optionally
// photothermal (×L/24). Draws whose chilling start is not strictly before the
// forcing start are structurally invalid and resolve to an all-undefined
// vector. par: (t0, t0chill, tbase, <chill 3>, creq, fcrit)
func sequential(bell, photo bool) builder {
	return func(par []float64, frc *forcing.Forcing) (siteFn, error) {
		nd, _ := frc.Dims()
		t0, t0c := sindex(par[0], nd), sindex(par[1], nd)
		tbase := par[2]
		chill, err := chillKernel(bell, par[3:6])
		if err != nil {
			return nil, err
		}
		creq, fcrit := par[6], par[7]
		if t0c >= t0 {
			return undefinedEverywhere, nil
		}
		return func(k int) float64 {
			ti := frc.Ti[k]
			sc := accumulate(response.Map(ti, chill), t0c)
			rf := make([]float64, len(ti))
			for j := range rf {
				rf[j] = hardGate(sc[j], creq) * response.GDD(ti[j], tbase)
				if photo {
					rf[j] *= response.DayFraction(frc.Li[k][j])
				}
			}
			return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, t0), t0, fcrit))
		}, nil
	}
}

// parallel builds the soft-ramp family: forcing proceeds at a fraction cini
// before the chilling requirement and ramps linearly to full efficacy,
// optionally weighted by the decihour photoperiod power law.
// par: (t0, t0chill, tbase, <chill 3>, cini, creq, fcrit)
// photo adds pk before fcrit: (..., cini, creq, pk, fcrit)
func parallel(bell, photo bool) builder {
	return func(par []float64, frc *forcing.Forcing) (siteFn, error) {
		nd, _ := frc.Dims()
		t0, t0c := sindex(par[0], nd), sindex(par[1], nd)
		tbase := par[2]
		chill, err := chillKernel(bell, par[3:6])
		if err != nil {
			return nil, err
		}
		cini, creq := par[6], par[7]
		var pk, fcrit float64
		if photo {
			pk, fcrit = par[8], par[9]
		} else {
			fcrit = par[8]
		}
		if creq <= 0. {
			return nil, fmt.Errorf("%w: parallel coupling requires creq > 0 (%g)", ErrDegenerate, creq)
		}
		if t0c >= t0 {
			return undefinedEverywhere, nil
		}
		return func(k int) float64 {
			ti := frc.Ti[k]
			sc := accumulate(response.Map(ti, chill), t0c)
			rf := make([]float64, len(ti))
			for j := range rf {
				rf[j] = softRamp(sc[j], cini, creq) * response.GDD(ti[j], tbase)
				if photo {
					rf[j] *= response.Decihour(frc.Li[k][j], pk)
				}
			}
			return dateAt(frc.Doy, firstAtOrAbove(accumulate(rf, t0), t0, fcrit))
		}, nil
	}
}
