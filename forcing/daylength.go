package forcing

import (
	"fmt"
	"math"
)

// Daylength returns hours of daylight for a day of year and latitude (dd)
// following the CBM model of Forsythe et al. (1995). Negative labels wrap to
// the prior fall.
func Daylength(doy int, lat float64) float64 {
	d := float64(doy)
	if d < 1 {
		d += 365.
	}
	p := math.Asin(0.39795 * math.Cos(0.2163108+2.*math.Atan(0.9671396*math.Tan(0.00860*(d-186.)))))
	latr := lat * math.Pi / 180.
	cosdl := (math.Sin(0.8333*math.Pi/180.) + math.Sin(latr)*math.Sin(p)) / (math.Cos(latr) * math.Cos(p))
	if cosdl < -1. { // polar night
		cosdl = -1.
	} else if cosdl > 1. { // polar day
		cosdl = 1.
	}
	return 24. - 24./math.Pi*math.Acos(cosdl)
}

// BuildDaylength populates Li from Doy and site latitudes, for driver sets
// whose ingest stage delivered no daylength series.
func (frc *Forcing) BuildDaylength() error {
	nd, ns := frc.Dims()
	if len(frc.Lat) != ns {
		return fmt.Errorf(" forcing.BuildDaylength: %d latitudes, expected %d", len(frc.Lat), ns)
	}
	li := make([][]float64, ns)
	for k := range li {
		li[k] = make([]float64, nd)
		for j, d := range frc.Doy {
			li[k][j] = Daylength(d, frc.Lat[k])
		}
	}
	frc.Li = li
	return nil
}
