package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

func defaultInputs() MarketInputs {
	return MarketInputs{VIX: 20, Oil: 70, DXY: 105, EMBI: 350, Gold: 2000}
}

func TestMarketInputsFromSeries_Defaults(t *testing.T) {
	m := MarketInputsFromSeries(map[string]contracts.Series{})

	assert.Equal(t, 20.0, m.VIX)
	assert.Equal(t, 70.0, m.Oil)
	assert.Equal(t, 105.0, m.DXY)
	assert.Equal(t, 350.0, m.EMBI)
	assert.Equal(t, 2000.0, m.Gold)
	assert.Empty(t, m.VIXHistory)
}

func TestMarketInputsFromSeries_LatestWins(t *testing.T) {
	vix := 35.0
	m := MarketInputsFromSeries(map[string]contracts.Series{
		indicator.MarketVIX: {
			ID:     "VIXCLS",
			Latest: &vix,
			Points: []contracts.SeriesPoint{{Date: "2026-08-28", Value: 35}},
		},
	})

	assert.Equal(t, 35.0, m.VIX)
	assert.Equal(t, 70.0, m.Oil, "missing series keep their defaults")
	require.Len(t, m.VIXHistory, 1)
}

func TestFracture_CalmMarkets(t *testing.T) {
	fi := Fracture(defaultInputs(), nil, 0.44)

	assert.InDelta(t, 29.4, fi.Score, 0.1)
	assert.Equal(t, contracts.FractureNormal, fi.Status)
	assert.Equal(t, 1.0, fi.Components.DomesticMultiplier)
	assert.Zero(t, fi.Components.EscalationVelocity)
	assert.Equal(t, 0.44, fi.Components.StrategicProliferation)
	assert.Equal(t, 20.0, fi.Market.VIX)
}

func TestFracture_CriticalCountriesAmplify(t *testing.T) {
	calm := Fracture(defaultInputs(), []float64{10, 20, 30, 40}, 0.44)
	hot := Fracture(defaultInputs(), []float64{80, 90, 30, 40}, 0.44)

	assert.Equal(t, 1.0, calm.Components.DomesticMultiplier)
	assert.Equal(t, 1.25, hot.Components.DomesticMultiplier, "half the set critical")
	assert.Greater(t, hot.Score, calm.Score)
}

func TestFracture_EscalationVelocity(t *testing.T) {
	m := defaultInputs()
	for i := 0; i < 7; i++ {
		m.VIXHistory = append(m.VIXHistory, contracts.SeriesPoint{Value: 20})
	}
	for i := 0; i < 7; i++ {
		m.VIXHistory = append(m.VIXHistory, contracts.SeriesPoint{Value: 30})
	}

	fi := Fracture(m, nil, 0.44)

	// 50% week-over-week growth hits the velocity cap
	assert.Equal(t, 0.5, fi.Components.EscalationVelocity)

	// A short history contributes nothing
	m.VIXHistory = m.VIXHistory[:10]
	fi = Fracture(m, nil, 0.44)
	assert.Zero(t, fi.Components.EscalationVelocity)
}

func TestFracture_StressedMarkets(t *testing.T) {
	m := MarketInputs{VIX: 60, Oil: 130, DXY: 120, EMBI: 800, Gold: 3000}

	fi := Fracture(m, []float64{85, 90, 75}, 0.44)

	assert.Equal(t, contracts.FractureStressed, fi.Status)
	assert.GreaterOrEqual(t, fi.Score, 55.0)
	assert.LessOrEqual(t, fi.Score, 100.0)
}

func TestFractureStatus_Boundaries(t *testing.T) {
	assert.Equal(t, contracts.FractureNormal, fractureStatus(39.99))
	assert.Equal(t, contracts.FractureElevated, fractureStatus(40))
	assert.Equal(t, contracts.FractureElevated, fractureStatus(54.99))
	assert.Equal(t, contracts.FractureStressed, fractureStatus(55))
}
