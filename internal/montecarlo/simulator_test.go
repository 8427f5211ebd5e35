package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeedDeterminism(t *testing.T) {
	distA, binsA := New(42).Run(55, 60, 5000)
	distB, binsB := New(42).Run(55, 60, 5000)

	assert.Equal(t, distA, distB)
	assert.Equal(t, binsA, binsB)

	distC, _ := New(7).Run(55, 60, 5000)
	assert.NotEqual(t, distA, distC, "different seeds diverge")
}

func TestRun_BinsSumToTrials(t *testing.T) {
	_, bins := New(1).Run(40, 50, 12345)

	require.Len(t, bins, NumBins)
	total := 0
	for _, b := range bins {
		total += b
	}
	assert.Equal(t, 12345, total)
}

func TestRun_PercentilesOrdered(t *testing.T) {
	dist, _ := New(3).Run(50, 80, 10000)

	assert.LessOrEqual(t, dist.P5, dist.Mean)
	assert.LessOrEqual(t, dist.Mean, dist.P95)
	assert.GreaterOrEqual(t, dist.P5, 0.0)
	assert.LessOrEqual(t, dist.P95, 100.0)
	assert.GreaterOrEqual(t, dist.CrisisProb, 0.0)
	assert.LessOrEqual(t, dist.CrisisProb, 100.0)
}

func TestRun_ZeroStressStaysNearCurrent(t *testing.T) {
	// With no stress the Gaussian shock vanishes; only the small uniform
	// bias remains, bounded to [-2.25, 2.75].
	dist, _ := New(9).Run(50, 0, 10000)

	assert.GreaterOrEqual(t, dist.P5, 47.7)
	assert.LessOrEqual(t, dist.P95, 52.8)
	assert.Zero(t, dist.CrisisProb)
}

func TestRun_TrialCountBounds(t *testing.T) {
	dist, bins := New(5).Run(50, 50, 0)
	total := 0
	for _, b := range bins {
		total += b
	}
	assert.Equal(t, DefaultScenarios, total, "zero requests the default")
	assert.NotZero(t, dist.Mean)

	_, bins = New(5).Run(50, 50, MaxScenarios+1)
	total = 0
	for _, b := range bins {
		total += b
	}
	assert.Equal(t, MaxScenarios, total, "requests cap at the maximum")
}

func TestRun_ClampsAtEdges(t *testing.T) {
	// A saturated country under heavy stress cannot leave [0,100]
	dist, bins := New(11).Run(100, 100, 20000)

	assert.LessOrEqual(t, dist.P95, 100.0)
	assert.Positive(t, bins[NumBins-1], "mass accumulates at the upper clamp")

	dist, bins = New(11).Run(0, 100, 20000)
	assert.GreaterOrEqual(t, dist.P5, 0.0)
	assert.Positive(t, bins[0], "mass accumulates at the lower clamp")
}
