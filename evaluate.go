package phenor

import (
	"fmt"

	"github.com/scelmendorf/phenor/forcing"
)

// Evaluate runs one model over every site column and returns the predicted
// event DOY per site, DateUndefined where the criterion is never met. The
// call is a pure function of (par, frc); frc is read-only throughout.
func Evaluate(model string, par []float64, frc *forcing.Forcing) ([]float64, error) {
	fn, ns, err := prepare(model, par, frc)
	if err != nil {
		return nil, err
	}
	doys := make([]float64, ns)
	for k := range doys {
		doys[k] = fn(k)
	}
	return doys, nil
}

func prepare(model string, par []float64, frc *forcing.Forcing) (siteFn, int, error) {
	def, ok := catalog[model]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	if len(par) != def.npar {
		return nil, 0, fmt.Errorf("%w: %s expects %d parameters, got %d", ErrParameterArity, model, def.npar, len(par))
	}
	if err := frc.Check(def.needs); err != nil {
		return nil, 0, fmt.Errorf("%w: %s:%v", ErrMissingDriver, model, err)
	}
	fn, err := def.build(par, frc)
	if err != nil {
		return nil, 0, err
	}
	_, ns := frc.Dims()
	return fn, ns, nil
}
