package forcing

// Subset returns a deep copy holding only the given site columns, in the
// given order. It never aliases the receiver's storage.
func (frc *Forcing) Subset(sites []int) *Forcing {
	sub := &Forcing{Doy: append([]int(nil), frc.Doy...)}
	pick := func(m [][]float64) [][]float64 {
		if m == nil {
			return nil
		}
		o := make([][]float64, len(sites))
		for i, k := range sites {
			o[i] = append([]float64(nil), m[k]...)
		}
		return o
	}
	sub.Ti = pick(frc.Ti)
	sub.Tmini = pick(frc.Tmini)
	sub.Tmaxi = pick(frc.Tmaxi)
	sub.Li = pick(frc.Li)
	sub.Pi = pick(frc.Pi)
	sub.VPDi = pick(frc.VPDi)
	if frc.Lat != nil {
		sub.Lat = make([]float64, len(sites))
		for i, k := range sites {
			sub.Lat[i] = frc.Lat[k]
		}
	}
	if frc.Cids != nil {
		sub.Cids = make([]int, len(sites))
		for i, k := range sites {
			sub.Cids[i] = frc.Cids[k]
		}
	}
	if frc.TransitionDates != nil {
		sub.TransitionDates = make([]float64, len(sites))
		for i, k := range sites {
			sub.TransitionDates[i] = frc.TransitionDates[k]
		}
	}
	return sub
}
