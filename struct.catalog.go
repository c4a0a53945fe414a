package phenor

import (
	"sort"

	"github.com/scelmendorf/phenor/forcing"
)

// daylengthUnit tags how a model reads the Li series. The catalog is explicit
// because the literature mixes hours, decihours and day fractions with no
// type distinction.
type daylengthUnit uint8

const (
	lunitNone        daylengthUnit = iota
	lunitDayFraction               // L/24
	lunitDecihour                  // (L/10)^k
	lunitHours                     // compared against thresholds in hours
)

// siteFn computes the predicted DOY for one site column. Kernels touch no
// shared state and may run concurrently.
type siteFn func(k int) float64

// builder validates a parameter draw against one forcing set and returns the
// per-site kernel. Validation failures (degenerate response parameters) abort
// the whole call; the chilling-before-forcing ordering violation instead
// yields an all-undefined kernel so samplers can probe it without crashing.
type builder func(par []float64, frc *forcing.Forcing) (siteFn, error)

type modelDef struct {
	npar  int
	needs forcing.Required
	lunit daylengthUnit
	build builder
}

var catalog = map[string]modelDef{
	"LIN":  {3, forcing.NeedTi, lunitNone, buildLIN},
	"TT":   {3, forcing.NeedTi, lunitNone, thermal(false, false)},
	"TTs":  {4, forcing.NeedTi, lunitNone, thermal(true, false)},
	"PTT":  {3, forcing.NeedTi | forcing.NeedLi, lunitDayFraction, thermal(false, true)},
	"PTTs": {4, forcing.NeedTi | forcing.NeedLi, lunitDayFraction, thermal(true, true)},
	"M1":   {4, forcing.NeedTi | forcing.NeedLi, lunitDecihour, buildM1},
	"M1s":  {5, forcing.NeedTi | forcing.NeedLi, lunitDecihour, buildM1s},
	"CDD":  {3, forcing.NeedTi, lunitNone, buildCDD},
	"AT":   {5, forcing.NeedTi, lunitNone, buildAT},
	"SQ":   {8, forcing.NeedTi, lunitNone, sequential(false, false)},
	"SQb":  {8, forcing.NeedTi, lunitNone, sequential(true, false)},
	"SM1":  {8, forcing.NeedTi | forcing.NeedLi, lunitDayFraction, sequential(false, true)},
	"SM1b": {8, forcing.NeedTi | forcing.NeedLi, lunitDayFraction, sequential(true, true)},
	"PA":   {9, forcing.NeedTi, lunitNone, parallel(false, false)},
	"PAb":  {9, forcing.NeedTi, lunitNone, parallel(true, false)},
	"PM1":  {10, forcing.NeedTi | forcing.NeedLi, lunitDecihour, parallel(false, true)},
	"PM1b": {10, forcing.NeedTi | forcing.NeedLi, lunitDecihour, parallel(true, true)},
	"UN":   {9, forcing.NeedTi, lunitNone, unified(false)},
	"UM1":  {10, forcing.NeedTi | forcing.NeedLi, lunitDecihour, unified(true)},
	"SGSI": {7, forcing.NeedTmini | forcing.NeedLi | forcing.NeedVPDi, lunitHours, gsi(false)},
	"AGSI": {7, forcing.NeedTmini | forcing.NeedLi | forcing.NeedVPDi, lunitHours, gsi(true)},
	"GR":   {5, forcing.NeedTi | forcing.NeedPi, lunitNone, buildGR},
	"DP":   {11, forcing.NeedTi | forcing.NeedLi, lunitHours, buildDP},
	"NM":   {0, forcing.NeedTransitions, lunitNone, buildNM},
}

// Models lists the catalog names in stable order.
func Models() []string {
	names := make([]string, 0, len(catalog))
	for m := range catalog {
		names = append(names, m)
	}
	sort.Strings(names)
	return names
}

// Arity returns a model's fixed parameter count.
func Arity(model string) (int, bool) {
	def, ok := catalog[model]
	return def.npar, ok
}

// undefinedEverywhere is the kernel for parameter draws that violate a
// structural constraint (chilling start not before forcing start).
func undefinedEverywhere(int) float64 { return DateUndefined }
