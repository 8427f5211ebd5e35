package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

// crisisRecord models a country in acute distress
func crisisRecord() indicator.Record {
	var r indicator.Record
	r.Set(indicator.Inflation, 200)
	r.Set(indicator.GDPGrowth, -5)
	r.Set(indicator.DebtGDP, 120)
	r.Set(indicator.ReservesMonths, 1)
	r.Set(indicator.CurrentAccount, -8)
	r.Set(indicator.ExternalDebt, 90)
	r.Set(indicator.PoliticalStability, -1.5)
	r.Set(indicator.GovEffectiveness, -1.5)
	r.Set(indicator.RuleOfLaw, -1.5)
	r.Set(indicator.ControlCorruption, -1.5)
	r.Set(indicator.RegulatoryQuality, -1.5)
	r.Set(indicator.NewsTone, -8)
	r.Set(indicator.NewsTrend, 50)
	return r
}

func TestCollapse_CrisisCountry(t *testing.T) {
	score := Collapse(crisisRecord())

	assert.Equal(t, 100.0, score.CI, "distress this deep saturates the index")
	assert.Equal(t, contracts.LevelCritical, score.Level)
	assert.Equal(t, "0-6 mo", score.Window)
	assert.InDelta(t, 71.33, score.Stress, 0.05)
	assert.Less(t, score.Absorption, 0.5)
	assert.Less(t, score.Resilience, 0.2)
}

func TestCollapse_DefaultsOnly(t *testing.T) {
	score := Collapse(indicator.Record{})

	assert.InDelta(t, 5.5, score.CI, 0.1)
	assert.Equal(t, contracts.LevelSafe, score.Level)
	assert.Equal(t, "24-36 mo", score.Window)
	assert.InDelta(t, 7.13, score.Stress, 0.05)
	assert.InDelta(t, 1.0, score.Absorption, 0.001)
	assert.InDelta(t, 0.935, score.Resilience, 0.001)
}

func TestStress_HyperinflationRamp(t *testing.T) {
	var low, mid, hyper indicator.Record
	low.Set(indicator.Inflation, 8)
	mid.Set(indicator.Inflation, 40)
	hyper.Set(indicator.Inflation, 600)

	// The three regimes must order monotonically
	assert.Less(t, Stress(low), Stress(mid))
	assert.Less(t, Stress(mid), Stress(hyper))

	// Hyperinflation saturates the sub-score, never the type
	var extreme indicator.Record
	extreme.Set(indicator.Inflation, 1e6)
	assert.LessOrEqual(t, Stress(extreme), 100.0)
}

func TestStress_GrowthOnlyBelowThreshold(t *testing.T) {
	var healthy, stagnant indicator.Record
	healthy.Set(indicator.GDPGrowth, 6)
	stagnant.Set(indicator.GDPGrowth, 2.9)

	// Both share the remaining defaults; only the growth sub-score differs
	assert.Less(t, Stress(healthy), Stress(stagnant))
}

func TestStress_SurplusCurrentAccountAddsNothing(t *testing.T) {
	var surplus, balanced indicator.Record
	surplus.Set(indicator.CurrentAccount, 8)
	balanced.Set(indicator.CurrentAccount, 0)

	assert.Equal(t, Stress(balanced), Stress(surplus))
}

func TestAbsorptionAndResilienceBounds(t *testing.T) {
	records := []indicator.Record{
		{},
		crisisRecord(),
	}

	var best indicator.Record
	best.Set(indicator.ReservesMonths, 24)
	best.Set(indicator.DebtGDP, 10)
	best.Set(indicator.GDPGrowth, 10)
	best.Set(indicator.PoliticalStability, 2.5)
	best.Set(indicator.GovEffectiveness, 2.5)
	best.Set(indicator.RuleOfLaw, 2.5)
	best.Set(indicator.ControlCorruption, 2.5)
	best.Set(indicator.RegulatoryQuality, 2.5)
	records = append(records, best)

	for _, r := range records {
		a := Absorption(r)
		assert.GreaterOrEqual(t, a, 0.1)
		assert.LessOrEqual(t, a, 2.0)

		res := Resilience(r)
		assert.GreaterOrEqual(t, res, 0.1)
		assert.LessOrEqual(t, res, 2.0)
	}
}

func TestCollapse_AlwaysInRange(t *testing.T) {
	extremes := []float64{-1e6, -100, 0, 100, 1e6}
	for _, v := range extremes {
		var r indicator.Record
		for _, name := range []string{
			indicator.Inflation, indicator.GDPGrowth, indicator.DebtGDP,
			indicator.ReservesMonths, indicator.CurrentAccount,
			indicator.ExternalDebt, indicator.NewsTone, indicator.NewsTrend,
		} {
			r.Set(name, v)
		}

		score := Collapse(r)
		assert.GreaterOrEqual(t, score.CI, 0.0, "input %g", v)
		assert.LessOrEqual(t, score.CI, 100.0, "input %g", v)
		assert.GreaterOrEqual(t, score.Stress, 0.0, "input %g", v)
		assert.LessOrEqual(t, score.Stress, 100.0, "input %g", v)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		ci     float64
		level  contracts.RiskLevel
		window string
	}{
		{100, contracts.LevelCritical, "0-6 mo"},
		{70, contracts.LevelCritical, "0-6 mo"},
		{69.99, contracts.LevelDanger, "6-12 mo"},
		{50, contracts.LevelDanger, "6-12 mo"},
		{49.99, contracts.LevelCaution, "12-24 mo"},
		{25, contracts.LevelCaution, "12-24 mo"},
		{24.99, contracts.LevelSafe, "24-36 mo"},
		{0, contracts.LevelSafe, "24-36 mo"},
	}

	for _, tt := range tests {
		level, window := Classify(tt.ci)
		assert.Equal(t, tt.level, level, "ci %g", tt.ci)
		assert.Equal(t, tt.window, window, "ci %g", tt.ci)
	}
}
