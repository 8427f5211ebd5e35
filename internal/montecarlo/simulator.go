// Package montecarlo draws randomized perturbations around a country's
// current Collapse Index to produce a risk distribution.
package montecarlo

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/causentia/backend/internal/contracts"
)

const (
	// MaxScenarios bounds a single simulation run
	MaxScenarios = 50000

	// DefaultScenarios is used when the caller does not specify a count
	DefaultScenarios = 10000

	// NumBins is the histogram resolution over [0,100]
	NumBins = 50
)

// Simulator draws Gaussian shocks scaled by the country's stress level plus a
// small uniform trend bias centered slightly negative.
type Simulator struct {
	rng *rand.Rand
}

// New creates a simulator. A non-zero seed makes runs reproducible; seed 0
// draws from system entropy.
func New(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Run simulates n trials around the given Collapse Index. Each trial adds a
// N(0,1) shock scaled by stress/100*20 and a (U(0,1)-0.45)*5 bias, clamped to
// [0,100]. Returns the headline statistics and the 50-bin histogram; bin
// counts always sum to the number of trials.
func (s *Simulator) Run(ci, stress float64, n int) (contracts.Distribution, []int) {
	if n <= 0 {
		n = DefaultScenarios
	}
	if n > MaxScenarios {
		n = MaxScenarios
	}

	results := make([]float64, n)
	bins := make([]int, NumBins)

	var crisisCount int
	for i := 0; i < n; i++ {
		shock := s.rng.NormFloat64() * (stress / 100) * 20
		trendBias := (s.rng.Float64() - 0.45) * 5

		v := math.Max(0, math.Min(100, ci+shock+trendBias))
		results[i] = v

		binIdx := int(v / 2)
		if binIdx >= NumBins {
			binIdx = NumBins - 1
		}
		bins[binIdx]++

		if v >= 70 {
			crisisCount++
		}
	}

	// Percentiles come from the fully sorted sample
	sort.Float64s(results)

	var sum float64
	for _, v := range results {
		sum += v
	}

	dist := contracts.Distribution{
		Mean:       round1(sum / float64(n)),
		P5:         round1(results[int(float64(n)*0.05)]),
		P95:        round1(results[int(float64(n)*0.95)]),
		CrisisProb: round1(float64(crisisCount) / float64(n) * 100),
	}

	return dist, bins
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
