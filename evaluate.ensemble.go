package phenor

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/montanaflynn/stats"
	"github.com/scelmendorf/phenor/forcing"
	"golang.org/x/sync/errgroup"
)

// Bounds hold per-parameter sampling limits for a forward ensemble.
type Bounds struct{ Low, High []float64 }

// Ensemble holds one forward run per Latin-hypercube parameter draw. Draws
// that land on a degenerate corner of the parameter space are kept as
// all-undefined rows rather than aborting the batch.
type Ensemble struct {
	Par [][]float64 // [draw][param]
	Doy [][]float64 // [draw][site]
}

// EvaluateEnsemble screens forward uncertainty: n Latin-hypercube draws from
// b, evaluated concurrently, deterministically seeded. When samplefp is
// non-empty the sample space is logged as CSV lines. This performs no
// calibration; no objective is optimized.
func EvaluateEnsemble(model string, b Bounds, frc *forcing.Forcing, n int, seed int64, nwrkrs int, samplefp string) (*Ensemble, error) {
	def, ok := catalog[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	p := def.npar
	if len(b.Low) != p || len(b.High) != p {
		return nil, fmt.Errorf("%w: %s bounds need %d parameters, got %d/%d", ErrParameterArity, model, p, len(b.Low), len(b.High))
	}
	if nwrkrs < 1 {
		nwrkrs = runtime.NumCPU()
	}
	_, ns := frc.Dims()

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, n, p, false)

	ens := &Ensemble{Par: make([][]float64, n), Doy: make([][]float64, n)}
	for k := 0; k < n; k++ {
		ut := make([]float64, p)
		for j := 0; j < p; j++ {
			ut[j] = mmaths.LinearTransform(b.Low[j], b.High[j], sp.U[j][k])
		}
		ens.Par[k] = ut
	}

	if len(samplefp) > 0 { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", ens.Par[k][j])
			}
		}
		mmio.WriteLines(samplefp, lns)
	}

	var g errgroup.Group
	g.SetLimit(nwrkrs)
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			d, err := Evaluate(model, ens.Par[k], frc)
			if err != nil {
				if errors.Is(err, ErrDegenerate) { // invalid corner of the sample space
					d = make([]float64, ns)
					for i := range d {
						d[i] = DateUndefined
					}
				} else {
					return err
				}
			}
			ens.Doy[k] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ens, nil
}

// EnsembleSummary condenses an ensemble per site over its defined draws.
type EnsembleSummary struct {
	Mean, P10, P90 []float64 // DateUndefined where no draw triggered
	NDefined       []int
}

func (e *Ensemble) Summary() EnsembleSummary {
	ns := 0
	if len(e.Doy) > 0 {
		ns = len(e.Doy[0])
	}
	sum := EnsembleSummary{
		Mean:     make([]float64, ns),
		P10:      make([]float64, ns),
		P90:      make([]float64, ns),
		NDefined: make([]int, ns),
	}
	for i := 0; i < ns; i++ {
		v := make([]float64, 0, len(e.Doy))
		for _, d := range e.Doy {
			if d[i] != DateUndefined {
				v = append(v, d[i])
			}
		}
		sum.NDefined[i] = len(v)
		if len(v) == 0 {
			sum.Mean[i], sum.P10[i], sum.P90[i] = DateUndefined, DateUndefined, DateUndefined
			continue
		}
		sum.Mean[i], _ = stats.Mean(v)
		if q, err := stats.Percentile(v, 10.); err == nil {
			sum.P10[i] = q
		} else {
			sum.P10[i] = sum.Mean[i]
		}
		if q, err := stats.Percentile(v, 90.); err == nil {
			sum.P90[i] = q
		} else {
			sum.P90[i] = sum.Mean[i]
		}
	}
	return sum
}
