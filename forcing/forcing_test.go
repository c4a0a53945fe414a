package forcing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(ns int) *Forcing {
	nd := 10
	frc := &Forcing{
		Doy: make([]int, nd),
		Ti:  make([][]float64, ns),
		Pi:  make([][]float64, ns),
		Lat: make([]float64, ns),
	}
	for j := 0; j < nd; j++ {
		frc.Doy[j] = j + 1
	}
	for k := 0; k < ns; k++ {
		frc.Lat[k] = 40. + float64(k)
		ti := make([]float64, nd)
		pi := make([]float64, nd)
		for j := 0; j < nd; j++ {
			ti[j] = float64(j + k)
			pi[j] = float64(k)
		}
		frc.Ti[k] = ti
		frc.Pi[k] = pi
	}
	return frc
}

func TestDims(t *testing.T) {
	frc := sample(3)
	nd, ns := frc.Dims()
	assert.Equal(t, 10, nd)
	assert.Equal(t, 3, ns)

	// a transition-only set still reports its site count
	obs := &Forcing{Doy: []int{1, 2}, TransitionDates: []float64{100, 110, 120}}
	nd, ns = obs.Dims()
	assert.Equal(t, 2, nd)
	assert.Equal(t, 3, ns)
}

func TestCheck(t *testing.T) {
	frc := sample(2)
	require.NoError(t, frc.Check(NeedTi|NeedPi))

	assert.Error(t, frc.Check(NeedTi|NeedLi)) // Li absent

	frc.Ti[1] = frc.Ti[1][:5] // ragged day count
	assert.Error(t, frc.Check(NeedTi))

	frc = sample(2)
	frc.Pi = frc.Pi[:1] // present but short on sites
	assert.Error(t, frc.Check(NeedTi))

	empty := &Forcing{}
	assert.Error(t, empty.Check(0))

	obs := &Forcing{Doy: []int{1}, TransitionDates: []float64{100}}
	require.NoError(t, obs.Check(NeedTransitions))
	obs.TransitionDates = nil
	assert.Error(t, obs.Check(NeedTransitions))
}

func TestSubsetDeepCopies(t *testing.T) {
	frc := sample(3)
	frc.TransitionDates = []float64{100, 110, 120}
	sub := frc.Subset([]int{2, 0})

	nd, ns := sub.Dims()
	assert.Equal(t, 10, nd)
	assert.Equal(t, 2, ns)
	assert.Equal(t, frc.Ti[2], sub.Ti[0])
	assert.Equal(t, frc.Ti[0], sub.Ti[1])
	assert.Equal(t, []float64{120, 100}, sub.TransitionDates)
	assert.Nil(t, sub.Li)

	// mutating the subset leaves the source untouched
	sub.Ti[0][0] = -999.
	sub.Doy[0] = -999
	assert.Equal(t, 2., frc.Ti[2][0])
	assert.Equal(t, 1, frc.Doy[0])
}

func TestDaylength(t *testing.T) {
	// equator holds near 12 h year round
	assert.InDelta(t, 12., Daylength(80, 0.), 0.25)
	assert.InDelta(t, 12., Daylength(355, 0.), 0.25)

	// mid-latitude summer days are long, winter days short
	assert.Greater(t, Daylength(172, 45.), 15.)
	assert.Less(t, Daylength(355, 45.), 9.5)

	// polar extremes clamp instead of going NaN
	assert.Equal(t, 24., Daylength(172, 80.))
	assert.Equal(t, 0., Daylength(355, 80.))

	// negative labels wrap to the prior fall
	assert.InDelta(t, Daylength(-11, 45.), Daylength(354, 45.), 1e-12)
}

func TestBuildDaylength(t *testing.T) {
	frc := sample(2)
	require.NoError(t, frc.BuildDaylength())
	require.Len(t, frc.Li, 2)
	for k := range frc.Li {
		require.Len(t, frc.Li[k], 10)
		for j, l := range frc.Li[k] {
			assert.Equal(t, Daylength(frc.Doy[j], frc.Lat[k]), l)
		}
	}

	frc.Lat = frc.Lat[:1]
	assert.Error(t, frc.BuildDaylength())
}

func TestGobRoundtrip(t *testing.T) {
	frc := sample(2)
	frc.TransitionDates = []float64{100, 110}
	fp := filepath.Join(t.TempDir(), "frc.gob")
	require.NoError(t, frc.SaveGob(fp))

	got, err := LoadGob(fp)
	require.NoError(t, err)
	assert.Equal(t, frc, got)

	_, err = LoadGob(filepath.Join(t.TempDir(), "missing.gob"))
	assert.Error(t, err)
}
