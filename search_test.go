package phenor

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFirstAtOrAbove(t *testing.T) {
	s := []float64{0, 0, 3, 3, 7, 10}
	assert.Equal(t, 4, firstAtOrAbove(s, 0, 5)) // first row at or above 5, later values irrelevant
	assert.Equal(t, 2, firstAtOrAbove(s, 0, 3))
	assert.Equal(t, 4, firstAtOrAbove(s, 3, 4))
	assert.Equal(t, noCrossing, firstAtOrAbove(s, 0, 11))
	assert.Equal(t, noCrossing, firstAtOrAbove(nil, 0, 1))
}

func TestFirstAtOrBelow(t *testing.T) {
	s := []float64{0, -2, -5, -9}
	assert.Equal(t, 2, firstAtOrBelow(s, 0, -4))
	assert.Equal(t, noCrossing, firstAtOrBelow(s, 0, -10))
}

func TestFirstPositive(t *testing.T) {
	s := []float64{-3, -1, 0, 2, 5}
	assert.Equal(t, 3, firstPositive(s, 0)) // zero is not a crossing
	assert.Equal(t, 3, firstPositive(s, 3))
	assert.Equal(t, noCrossing, firstPositive([]float64{-1, 0}, 0))
}

func TestDateAt(t *testing.T) {
	doy := []int{-11, -10, 1, 2}
	assert.Equal(t, -10., dateAt(doy, 1))
	assert.Equal(t, DateUndefined, dateAt(doy, noCrossing))
	assert.Equal(t, DateUndefined, dateAt(doy, 4))
}

func TestFirstSmoothedAtOrAbove(t *testing.T) {
	s := make([]float64, 30)
	for j := 10; j < 30; j++ {
		s[j] = 1.
	}
	// window 5: means step 0, 0.2, ... as the window slides onto the ones;
	// the first full-window mean >= 0.9 is centered at row 12 (rows 10..14).
	assert.Equal(t, 10, firstSmoothedAtOrAbove(s, 5, 0.5))
	assert.Equal(t, 12, firstSmoothedAtOrAbove(s, 5, 0.9))

	// rows lacking a full window are undefined, not padded
	short := []float64{9, 9, 9}
	assert.Equal(t, noCrossing, firstSmoothedAtOrAbove(short, 5, 1))
	assert.Equal(t, 1, firstSmoothedAtOrAbove(short, 3, 1))
}

func TestFirstWindowSum(t *testing.T) {
	p := []float64{0, 0, 1, 5, 5, 0, 0, 0, 0, 0}
	// 8-day windows: rows 0..2 are the only full windows; row 0 sums 11.
	assert.Equal(t, 0, firstWindowSum(p, 0, 8, 10))
	assert.Equal(t, noCrossing, firstWindowSum(p, 0, 8, 12))
	assert.Equal(t, 1, firstWindowSum(p, 1, 8, 10))
	// series shorter than the window can never trigger
	assert.Equal(t, noCrossing, firstWindowSum([]float64{9, 9}, 0, 8, 1))
	assert.Equal(t, noCrossing, firstWindowSum(nil, 0, 8, 0))
}

// referenceWindowSum is the naive full rolling-sum search the early-exit scan
// must reproduce exactly.
func referenceWindowSum(p []float64, from, w int, crit float64) int {
	if from < 0 {
		from = 0
	}
	for j := from; j+w <= len(p); j++ {
		sum := 0.
		for i := j; i < j+w; i++ {
			sum += p[i]
		}
		if sum >= crit {
			return j
		}
	}
	return noCrossing
}

func TestFirstWindowSumEquivalence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("early-exit scan matches full rolling sum", prop.ForAll(
		func(p []float64, from int, crit float64) bool {
			return firstWindowSum(p, from, 8, crit) == referenceWindowSum(p, from, 8, crit)
		},
		gen.SliceOf(gen.Float64Range(0, 10)), // includes series shorter than the window
		gen.IntRange(0, 12),
		gen.Float64Range(0, 60),
	))

	properties.TestingRun(t)
}
