package phenor

import (
	"math"

	"github.com/scelmendorf/phenor/forcing"
)

// testForcing builds one synthetic calendar year (doy 1..365) for ns sites:
// a seasonal temperature cycle (cold January, warm July) with a small per-site
// offset, mid-latitude daylength, steady rainfall and constant VPD.
func testForcing(ns int) *forcing.Forcing {
	const nd = 365
	frc := &forcing.Forcing{
		Doy:             make([]int, nd),
		Ti:              make([][]float64, ns),
		Tmini:           make([][]float64, ns),
		Tmaxi:           make([][]float64, ns),
		Li:              make([][]float64, ns),
		Pi:              make([][]float64, ns),
		VPDi:            make([][]float64, ns),
		Lat:             make([]float64, ns),
		TransitionDates: make([]float64, ns),
	}
	for j := 0; j < nd; j++ {
		frc.Doy[j] = j + 1
	}
	for k := 0; k < ns; k++ {
		lat := 45. + float64(k)
		frc.Lat[k] = lat
		frc.TransitionDates[k] = float64(120 + k)
		ti := make([]float64, nd)
		tn := make([]float64, nd)
		tx := make([]float64, nd)
		li := make([]float64, nd)
		pi := make([]float64, nd)
		vpd := make([]float64, nd)
		for j := 0; j < nd; j++ {
			t := 5. - 10.*math.Cos(2.*math.Pi*float64(j+1)/365.) + 0.1*float64(k)
			ti[j] = t
			tn[j] = t - 5.
			tx[j] = t + 5.
			li[j] = forcing.Daylength(frc.Doy[j], lat)
			pi[j] = 2.
			vpd[j] = 1000.
		}
		frc.Ti[k] = ti
		frc.Tmini[k] = tn
		frc.Tmaxi[k] = tx
		frc.Li[k] = li
		frc.Pi[k] = pi
		frc.VPDi[k] = vpd
	}
	return frc
}

// goodPars trigger an event on testForcing for every catalog model.
var goodPars = map[string][]float64{
	"LIN":  {1, 1, 100},
	"TT":   {1, 5, 100},
	"TTs":  {1, 0.2, 10, 50},
	"PTT":  {1, 5, 60},
	"PTTs": {1, 0.2, 10, 30},
	"M1":   {1, 5, 2, 150},
	"M1s":  {1, 0.2, 10, 2, 40},
	"CDD":  {1, 0, -100},
	"AT":   {1, 5, 50, 500, -0.05},
	"SQ":   {30, 1, 5, 2, -10, 10, 50, 100},
	"SQb":  {30, 1, 5, 0.01, 0, 0, 50, 100},
	"SM1":  {30, 1, 5, 2, -10, 10, 50, 50},
	"SM1b": {30, 1, 5, 0.01, 0, 0, 50, 50},
	"PA":   {30, 1, 5, 2, -10, 10, 0.1, 50, 100},
	"PAb":  {30, 1, 5, 0.01, 0, 0, 0.1, 50, 100},
	"PM1":  {30, 1, 5, 2, -10, 10, 0.1, 50, 2, 60},
	"PM1b": {30, 1, 5, 0.01, 0, 0, 0.1, 50, 2, 60},
	"UN":   {1, 0.01, 0, 0, 0.2, 10, 300, -0.05, 30},
	"UM1":  {1, 0.01, 0, 0, 0.2, 10, 300, -0.05, 30, 2},
	"SGSI": {0, 10, 10, 14, 500, 4000, 0.4},
	"AGSI": {0, 10, 10, 14, 500, 4000, 20},
	"GR":   {1, 10, 0.2, 10, 20},
	"DP":   {1, 0.5, 10, 15, 0.5, 5, 30, 0.2, 10, 11, 20},
	"NM":   {},
}
