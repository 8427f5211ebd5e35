package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/causentia/backend/internal/indicator"
)

func TestHDI_MissingComponentsAreNeutral(t *testing.T) {
	assert.Equal(t, 50.0, HDI(indicator.Record{}))
}

func TestHDI_Developed(t *testing.T) {
	var r indicator.Record
	r.Set(indicator.LifeExpectancy, 85)
	r.Set(indicator.LiteracyRate, 99)
	r.Set(indicator.Poverty, 10)
	r.Set(indicator.Undernourishment, 5)

	assert.InDelta(t, 92.7, HDI(r), 0.05)
}

func TestHDI_LifeCapsAt100(t *testing.T) {
	var r indicator.Record
	r.Set(indicator.LifeExpectancy, 95)

	// 50*0.3 cap contribution plus three neutral components
	assert.Equal(t, 30.0+50*0.7, HDI(r))
}

func TestHDI_SeverePovertyFloorsAtZero(t *testing.T) {
	var r indicator.Record
	r.Set(indicator.Poverty, 80)
	r.Set(indicator.Undernourishment, 60)

	// Both deprivation components floor at zero, the rest stay neutral
	assert.Equal(t, 50*0.6, HDI(r))
}
