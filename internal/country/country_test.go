package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Len(t, All, 80)

	seen2 := make(map[string]bool, len(All))
	seen3 := make(map[string]bool, len(All))
	for _, c := range All {
		assert.Len(t, c.Code, 2, "%s code", c.Name)
		assert.Len(t, c.ISO3, 3, "%s iso3", c.Name)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Region)
		assert.False(t, seen2[c.Code], "duplicate code %s", c.Code)
		assert.False(t, seen3[c.ISO3], "duplicate iso3 %s", c.ISO3)
		seen2[c.Code] = true
		seen3[c.ISO3] = true
	}
}

func TestGet(t *testing.T) {
	c, ok := Get("VE")
	require.True(t, ok)
	assert.Equal(t, "VEN", c.ISO3)
	assert.Equal(t, "Venezuela", c.Name)

	_, ok = Get("XX")
	assert.False(t, ok)
}

func TestGetByISO3(t *testing.T) {
	c, ok := GetByISO3("ARG")
	require.True(t, ok)
	assert.Equal(t, "AR", c.Code)

	_, ok = GetByISO3("XXX")
	assert.False(t, ok)
}

func TestNormalizeISO3(t *testing.T) {
	// Already ISO3
	assert.Equal(t, "VEN", NormalizeISO3("VEN"))
	// ISO2 maps up
	assert.Equal(t, "VEN", NormalizeISO3("VE"))
	// Unknown identifiers pass through unchanged
	assert.Equal(t, "ZZ", NormalizeISO3("ZZ"))
	assert.Equal(t, "", NormalizeISO3(""))
}

func TestISO3Codes(t *testing.T) {
	codes := ISO3Codes()
	require.Len(t, codes, len(All))
	assert.Equal(t, "VEN", codes[0], "priority order preserved")
}

func TestMonitored(t *testing.T) {
	m := Monitored(20)
	require.Len(t, m, 20)
	assert.Equal(t, "VE", m[0].Code, "highest priority first")

	// Out-of-range requests fall back to the whole registry
	assert.Len(t, Monitored(500), len(All))
	assert.Len(t, Monitored(0), len(All))
}
