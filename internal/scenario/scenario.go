// Package scenario applies indicator shock deltas to a cached snapshot and
// recomputes the Collapse Index per country. Pure functions; the caller is
// responsible for supplying a snapshot, this package never fetches.
package scenario

import (
	"math"
	"sort"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/scoring"
)

// Apply runs a what-if over every country in the snapshot: global shocks
// first, then any country-specific overrides, then a full re-score. Results
// come back ranked descending by CI delta. Shock keys outside the indicator
// schema are ignored.
func Apply(snap *contracts.GlobalSnapshot, shocks map[string]float64, overrides map[string]map[string]float64) ([]contracts.ScenarioResult, contracts.ScenarioSummary) {
	results := make([]contracts.ScenarioResult, 0, len(snap.Countries))

	for code, cdata := range snap.Countries {
		rec := cdata.Indicators.Clone()

		for name, delta := range shocks {
			rec.Apply(name, delta)
		}
		if ov, ok := overrides[code]; ok {
			for name, delta := range ov {
				rec.Apply(name, delta)
			}
		}

		score := scoring.Collapse(rec)

		results = append(results, contracts.ScenarioResult{
			Code:          code,
			Name:          cdata.Name,
			Flag:          cdata.Flag,
			Region:        cdata.Region,
			OriginalCI:    cdata.CI,
			NewCI:         score.CI,
			Delta:         round1(score.CI - cdata.CI),
			OriginalLevel: cdata.Level,
			NewLevel:      score.Level,
			Stress:        score.Stress,
			Absorption:    score.Absorption,
			Resilience:    score.Resilience,
			Indicators:    rec,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Delta != results[j].Delta {
			return results[i].Delta > results[j].Delta
		}
		return results[i].Code < results[j].Code
	})

	return results, summarize(results)
}

func summarize(results []contracts.ScenarioResult) contracts.ScenarioSummary {
	s := contracts.ScenarioSummary{Total: len(results)}

	var deltaSum float64
	for _, r := range results {
		deltaSum += r.Delta

		switch {
		case r.NewCI >= 70:
			s.Critical++
		case r.NewCI >= 50:
			s.Danger++
		case r.NewCI >= 25:
			s.Caution++
		default:
			s.Safe++
		}

		switch {
		case r.OriginalCI >= 70:
			s.OldCritical++
		case r.OriginalCI >= 50:
			s.OldDanger++
		}

		if r.Delta > 5 {
			s.Downgrades++
		}
		if r.Delta < -2 {
			s.Beneficiaries++
		}
	}

	n := len(results)
	if n == 0 {
		n = 1
	}
	s.AvgDelta = round1(deltaSum / float64(n))

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
