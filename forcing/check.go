package forcing

import "fmt"

// Required names the driver series a model cannot run without.
type Required uint8

const (
	NeedTi Required = 1 << iota
	NeedTmini
	NeedTmaxi
	NeedLi
	NeedPi
	NeedVPDi
	NeedTransitions
)

// Check verifies that every required series is present and that all present
// matrices share the Forcing's day and site counts.
func (frc *Forcing) Check(need Required) error {
	nd, ns := frc.Dims()
	if nd == 0 {
		return fmt.Errorf(" forcing.Check: empty doy axis")
	}

	mats := []struct {
		name string
		m    [][]float64
		req  Required
	}{
		{"Ti", frc.Ti, NeedTi},
		{"Tmini", frc.Tmini, NeedTmini},
		{"Tmaxi", frc.Tmaxi, NeedTmaxi},
		{"Li", frc.Li, NeedLi},
		{"Pi", frc.Pi, NeedPi},
		{"VPDi", frc.VPDi, NeedVPDi},
	}
	for _, s := range mats {
		if s.m == nil {
			if need&s.req != 0 {
				return fmt.Errorf(" forcing.Check: %s required but absent", s.name)
			}
			continue
		}
		if len(s.m) != ns {
			return fmt.Errorf(" forcing.Check: %s holds %d sites, expected %d", s.name, len(s.m), ns)
		}
		for k, col := range s.m {
			if len(col) != nd {
				return fmt.Errorf(" forcing.Check: %s site %d holds %d days, expected %d", s.name, k, len(col), nd)
			}
		}
	}

	if need&NeedTransitions != 0 {
		if frc.TransitionDates == nil {
			return fmt.Errorf(" forcing.Check: transition dates required but absent")
		}
		if len(frc.TransitionDates) != ns {
			return fmt.Errorf(" forcing.Check: transition dates hold %d sites, expected %d", len(frc.TransitionDates), ns)
		}
	}
	return nil
}
