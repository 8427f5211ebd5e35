package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

func fp(v float64) *float64 { return &v }

func TestLatest(t *testing.T) {
	// The newest year carries a null; the next one down wins
	series := contracts.YearSeries{
		"2020": fp(3.0),
		"2022": nil,
		"2021": fp(5.0),
	}

	v, ok := Latest(series)
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestLatest_AllNil(t *testing.T) {
	series := contracts.YearSeries{
		"2023": nil,
		"2024": nil,
	}

	_, ok := Latest(series)
	assert.False(t, ok)
}

func TestLatest_Empty(t *testing.T) {
	_, ok := Latest(contracts.YearSeries{})
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	series := map[string]contracts.YearSeries{
		indicator.Inflation: {
			"2024": fp(190.5),
			"2023": fp(170.0),
		},
		indicator.GDPGrowth: {
			"2024": nil,
			"2023": fp(-3.2),
		},
		// Every period absent: the indicator stays absent
		indicator.DebtGDP: {
			"2024": nil,
		},
	}

	rec := Resolve(series, -5.5, 42.0)

	v, ok := rec.Value(indicator.Inflation)
	require.True(t, ok)
	assert.Equal(t, 190.5, v)

	v, ok = rec.Value(indicator.GDPGrowth)
	require.True(t, ok)
	assert.Equal(t, -3.2, v)

	_, ok = rec.Value(indicator.DebtGDP)
	assert.False(t, ok)

	// Text-analytics outputs are always present
	v, ok = rec.Value(indicator.NewsTone)
	require.True(t, ok)
	assert.Equal(t, -5.5, v)

	v, ok = rec.Value(indicator.NewsTrend)
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestResolve_EmptyStillCarriesSentiment(t *testing.T) {
	rec := Resolve(nil, 0, 0)

	v, ok := rec.Value(indicator.NewsTone)
	require.True(t, ok)
	assert.Zero(t, v)

	_, ok = rec.Value(indicator.Inflation)
	assert.False(t, ok)
}
