package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareOfMax(t *testing.T) {
	assert.Equal(t, 50.0, ShareOfMax(50, []float64{100, 80, 20}))
	assert.Equal(t, 100.0, ShareOfMax(100, []float64{100}))
	assert.Equal(t, 0.0, ShareOfMax(10, nil), "empty series must yield 0")
	assert.Equal(t, 0.0, ShareOfMax(10, []float64{0, 0}), "zero max must yield 0")
	assert.Equal(t, 0.0, ShareOfMax(-5, []float64{100}), "negative value clamps to 0")
	assert.Equal(t, 100.0, ShareOfMax(150, []float64{100}), "overshoot clamps to 100")
}

func TestShareOfTotal(t *testing.T) {
	assert.Equal(t, 60.0, ShareOfTotal(60, 100))
	assert.Equal(t, 0.0, ShareOfTotal(60, 0), "zero total must yield 0, not Inf")
	assert.Equal(t, 33.3, ShareOfTotal(1, 3), "rounded to one decimal")
}

func TestShareOfTotalSumsToHundred(t *testing.T) {
	parts := []float64{60, 40}
	total := 100.0
	var sum float64
	for _, p := range parts {
		sum += ShareOfTotal(p, total)
	}
	assert.InDelta(t, 100.0, sum, 0.5)

	// Awkward thirds still land within the documented slack.
	parts = []float64{1, 1, 1}
	sum = 0
	for _, p := range parts {
		sum += ShareOfTotal(p, 3)
	}
	assert.InDelta(t, 100.0, sum, 0.5)
}

func TestConcentrationTopN(t *testing.T) {
	assert.Equal(t, 75.0, ConcentrationTopN([]float64{40, 35, 15, 10}, 2))
	assert.Equal(t, 100.0, ConcentrationTopN([]float64{40, 35}, 5), "short series sums what is present")
	assert.Equal(t, 0.0, ConcentrationTopN(nil, 3))
	assert.Equal(t, 0.0, ConcentrationTopN([]float64{0, 0, 0}, 2), "zero total yields 0")
}

func TestGrowthRate(t *testing.T) {
	g := GrowthRate(110, 100)
	assert.True(t, g.Defined)
	assert.Equal(t, 10.0, g.Percent)

	g = GrowthRate(80, 100)
	assert.True(t, g.Defined)
	assert.Equal(t, -20.0, g.Percent)

	g = GrowthRate(50, 0)
	assert.False(t, g.Defined, "zero previous must yield the undefined marker")
	assert.Equal(t, 0.0, g.Percent)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, Round1(33.333))
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 2.5, Round1(2.45))
	assert.Equal(t, -2.5, Round1(-2.45), "halves round away from zero")
	assert.Equal(t, 0.0, Round1(math.NaN()), "NaN never reaches the display layer")
	assert.Equal(t, 0.0, Round1(math.Inf(1)), "Inf never reaches the display layer")
}
