package forcing

// Forcing holds the daily driver series for a batch of sites. Every present
// matrix is site-major [site][day] and shares the same day count (= len(Doy))
// and site count. The evaluation engine treats a Forcing as read-only.
type Forcing struct {
	Doy    []int       // [day] day-of-year labels; may begin negative when the accumulation year starts the prior fall
	Ti     [][]float64 // [site][day] mean daily temperature (°C)
	Tmini  [][]float64 // [site][day] daily minimum temperature (°C)
	Tmaxi  [][]float64 // [site][day] daily maximum temperature (°C)
	Li     [][]float64 // [site][day] daylength (hr)
	Pi     [][]float64 // [site][day] precipitation (mm)
	VPDi   [][]float64 // [site][day] vapour-pressure deficit (Pa)
	Lat    []float64   // [site] latitude (dd), daylength builder only
	Cids   []int       // [site] raster cell ID, raster output only
	TransitionDates []float64 // [site] observed event DOY, null model and skill scoring only
}

// Dims returns the day and site counts.
func (frc *Forcing) Dims() (nd, ns int) {
	nd = len(frc.Doy)
	for _, m := range [][][]float64{frc.Ti, frc.Tmini, frc.Tmaxi, frc.Li, frc.Pi, frc.VPDi} {
		if m != nil {
			return nd, len(m)
		}
	}
	return nd, len(frc.TransitionDates)
}
