package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causentia/backend/internal/indicator"
)

func TestParseShocks(t *testing.T) {
	shocks, err := parseShocks([]string{"inflation=10", "gdp_growth=-4.5"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		indicator.Inflation: 10,
		indicator.GDPGrowth: -4.5,
	}, shocks)
}

func TestParseShocks_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing equals", "inflation10"},
		{"unknown indicator", "oil_price=30"},
		{"bad delta", "inflation=abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseShocks([]string{tc.raw})
			assert.Error(t, err)
		})
	}
}

// The usage example must stay runnable: every --shock it shows has to
// survive parseShocks.
func TestScenarioHelpExampleParses(t *testing.T) {
	fields := strings.Fields(scenarioCmd.Long)
	var raw []string
	for i, f := range fields {
		if f == "--shock" && i+1 < len(fields) {
			raw = append(raw, fields[i+1])
		}
	}

	require.NotEmpty(t, raw, "help text lost its example shocks")
	_, err := parseShocks(raw)
	assert.NoError(t, err)
}
