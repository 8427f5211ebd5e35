package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
	"github.com/causentia/backend/internal/scoring"
)

// testSnapshot builds a two-country world: one fragile, one sturdy
func testSnapshot() *contracts.GlobalSnapshot {
	var fragile indicator.Record
	fragile.Set(indicator.Inflation, 60)
	fragile.Set(indicator.GDPGrowth, -2)
	fragile.Set(indicator.DebtGDP, 110)
	fragile.Set(indicator.ReservesMonths, 1.5)
	fragile.Set(indicator.NewsTone, -4)

	var sturdy indicator.Record
	sturdy.Set(indicator.Inflation, 2)
	sturdy.Set(indicator.GDPGrowth, 3.5)
	sturdy.Set(indicator.DebtGDP, 35)
	sturdy.Set(indicator.ReservesMonths, 10)
	sturdy.Set(indicator.GovEffectiveness, 1.5)
	sturdy.Set(indicator.RuleOfLaw, 1.5)

	snap := &contracts.GlobalSnapshot{
		Countries: map[string]contracts.CountrySnapshot{},
	}

	for code, rec := range map[string]indicator.Record{"AR": fragile, "DE": sturdy} {
		score := scoring.Collapse(rec)
		snap.Countries[code] = contracts.CountrySnapshot{
			Code:         code,
			Name:         code,
			CountryScore: score,
			Indicators:   rec,
		}
	}

	return snap
}

func TestApply_ZeroShocksAreIdempotent(t *testing.T) {
	snap := testSnapshot()

	results, summary := Apply(snap, map[string]float64{}, nil)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, r.OriginalCI, r.NewCI, "%s must not move", r.Code)
		assert.Zero(t, r.Delta)
		assert.Equal(t, r.OriginalLevel, r.NewLevel)
	}
	assert.Zero(t, summary.AvgDelta)
	assert.Zero(t, summary.Downgrades)
	assert.Zero(t, summary.Beneficiaries)
	assert.Equal(t, 2, summary.Total)
}

func TestApply_ShockRanksByDelta(t *testing.T) {
	snap := testSnapshot()

	results, _ := Apply(snap, map[string]float64{
		indicator.Inflation: 50,
		indicator.GDPGrowth: -4,
	}, nil)

	require.Len(t, results, 2)
	assert.GreaterOrEqual(t, results[0].Delta, results[1].Delta, "descending by delta")

	for _, r := range results {
		assert.GreaterOrEqual(t, r.NewCI, r.OriginalCI, "adverse shock never helps")
	}
}

func TestApply_DoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	ar := snap.Countries["AR"]
	before, _ := ar.Indicators.Value(indicator.Inflation)

	Apply(snap, map[string]float64{indicator.Inflation: 100}, nil)

	ar = snap.Countries["AR"]
	after, _ := ar.Indicators.Value(indicator.Inflation)
	assert.Equal(t, before, after, "shocks operate on clones")
}

func TestApply_CountryOverrides(t *testing.T) {
	snap := testSnapshot()

	results, _ := Apply(snap, nil, map[string]map[string]float64{
		"AR": {indicator.ReservesMonths: -1},
	})

	byCode := map[string]contracts.ScenarioResult{}
	for _, r := range results {
		byCode[r.Code] = r
	}

	assert.Greater(t, byCode["AR"].Delta, 0.0, "override hits its target")
	assert.Zero(t, byCode["DE"].Delta, "other countries untouched")
}

func TestApply_UnknownShockKeysIgnored(t *testing.T) {
	snap := testSnapshot()

	results, _ := Apply(snap, map[string]float64{"oil_price": 30}, nil)

	for _, r := range results {
		assert.Zero(t, r.Delta)
	}
}

func TestSummarize_Buckets(t *testing.T) {
	snap := testSnapshot()

	// Push everything into crisis territory
	_, summary := Apply(snap, map[string]float64{
		indicator.Inflation: 500,
		indicator.DebtGDP:   150,
	}, nil)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, summary.Total,
		summary.Critical+summary.Danger+summary.Caution+summary.Safe)
	assert.GreaterOrEqual(t, summary.Critical, 1)
	assert.Greater(t, summary.AvgDelta, 0.0)
}
