package scoring

import (
	"time"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

// Causal Entropy component weights
const (
	weightInterconnection = 0.30
	weightLatency         = 0.25
	weightNoise           = 0.25
	weightRedundancy      = 0.20

	// entropyScale stretches the weighted ratio onto the 0-100 band
	entropyScale = 130
)

// CausalEntropy computes the cross-country disorder index from the Collapse
// Index dispersion, governance and reserve levels, and the volatility proxy.
// An empty country set yields the neutral FLUX/50 reading.
func CausalEntropy(countries map[string]contracts.CountrySnapshot, vix float64) contracts.CausalEntropy {
	if len(countries) == 0 {
		return contracts.CausalEntropy{
			Score:   50,
			Status:  contracts.EntropyFlux,
			Updated: time.Now().UTC(),
		}
	}

	cis := make([]float64, 0, len(countries))
	govs := make([]float64, 0, len(countries))
	reserves := make([]float64, 0, len(countries))
	for _, c := range countries {
		cis = append(cis, c.CI)
		govs = append(govs, c.Indicators.ValueOr(indicator.GovEffectiveness))
		reserves = append(reserves, c.Indicators.ValueOr(indicator.ReservesMonths))
	}

	// Interconnection complexity: how dispersed the Collapse Indices are
	ic := clamp(stdev(cis)/30, 0, 1)

	// Response latency: weaker average governance reacts slower
	rl := clamp(1-(mean(govs)+2.5)/5, 0, 1)

	// Information noise: elevated volatility
	noise := clamp((vix-12)/35, 0, 1)

	// Redundancy: aggregate reserve buffers dampen the whole expression
	rr := clamp(mean(reserves)/12, 0, 1)

	raw := (weightInterconnection*ic + weightLatency*rl + weightNoise*noise) /
		(1 + weightRedundancy*rr)
	score := clamp(raw*entropyScale, 0, 100)

	return contracts.CausalEntropy{
		Score: round1(score),
		Components: contracts.EntropyComponents{
			InterconnectionComplexity: round3(ic),
			ResponseLatency:           round3(rl),
			InformationNoise:          round3(noise),
			RedundancyReserves:        round3(rr),
		},
		Status:  entropyStatus(score),
		Updated: time.Now().UTC(),
	}
}

func entropyStatus(score float64) string {
	switch {
	case score >= 75:
		return contracts.EntropyEntropy
	case score >= 50:
		return contracts.EntropyChaos
	case score >= 25:
		return contracts.EntropyFlux
	default:
		return contracts.EntropyOrder
	}
}
