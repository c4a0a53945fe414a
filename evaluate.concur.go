package phenor

import (
	"runtime"
	"sync"

	"github.com/scelmendorf/phenor/forcing"
)

// EvaluateConcurrent is Evaluate with site columns fanned out to nwrkrs
// goroutines (NumCPU when nwrkrs < 1). Workers own disjoint result slots and
// share nothing else, so the output is bit-identical to the serial path.
func EvaluateConcurrent(model string, par []float64, frc *forcing.Forcing, nwrkrs int) ([]float64, error) {
	fn, ns, err := prepare(model, par, frc)
	if err != nil {
		return nil, err
	}
	if nwrkrs < 1 {
		nwrkrs = runtime.NumCPU()
	}

	doys := make([]float64, ns)
	ck := make(chan int, nwrkrs)
	var wg sync.WaitGroup
	for w := 0; w < nwrkrs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range ck {
				doys[k] = fn(k)
			}
		}()
	}
	for k := 0; k < ns; k++ {
		ck <- k
	}
	close(ck)
	wg.Wait()
	return doys, nil
}
