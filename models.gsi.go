package phenor

import (
	"fmt"

	"github.com/scelmendorf/phenor/forcing"
	"github.com/scelmendorf/phenor/response"
)

// gsiWindow is the centered smoothing window of the growing season index
// (Jolly et al. 2005).
const gsiWindow = 21

// gsiAnchor is the day-of-year label anchoring the accumulated variant's
// start row; series lacking it start at the first row.
const gsiAnchor = -11

// gsi builds the growing-season-index family: the daily index is the product
// of a minimum-temperature ramp, a photoperiod ramp (hours) and an inverted
// VPD ramp. SGSI takes the first 21-day smoothed index at or above fcrit;
// AGSI accumulates the raw index from the doy −11 anchor.
// par: (tlo, thi, plo, phi, vlo, vhi, fcrit)
func gsi(accumulated bool) builder {
	return func(par []float64, frc *forcing.Forcing) (siteFn, error) {
		tlo, thi := par[0], par[1]
		plo, phi := par[2], par[3]
		vlo, vhi := par[4], par[5]
		fcrit := par[6]
		if !(tlo < thi) || !(plo < phi) || !(vlo < vhi) {
			return nil, fmt.Errorf("%w: gsi ramps require lo < hi", ErrDegenerate)
		}
		return func(k int) float64 {
			tn, li, vpd := frc.Tmini[k], frc.Li[k], frc.VPDi[k]
			idx := make([]float64, len(tn))
			for j := range idx {
				idx[j] = response.RampUp(tn[j], tlo, thi) *
					response.RampUp(li[j], plo, phi) *
					response.RampDown(vpd[j], vlo, vhi)
			}
			if accumulated {
				t0 := startAtDoy(frc.Doy, gsiAnchor)
				return dateAt(frc.Doy, firstAtOrAbove(accumulate(idx, t0), t0, fcrit))
			}
			return dateAt(frc.Doy, firstSmoothedAtOrAbove(idx, gsiWindow, fcrit))
		}, nil
	}
}
