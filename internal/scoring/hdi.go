package scoring

import (
	"math"

	"github.com/causentia/backend/internal/indicator"
)

// HDI computes a 0-100 human-development composite from life expectancy,
// literacy, poverty and undernourishment. A missing or zero component scores
// a neutral 50 rather than dragging the composite down.
func HDI(r indicator.Record) float64 {
	life, _ := r.Value(indicator.LifeExpectancy)
	literacy, _ := r.Value(indicator.LiteracyRate)
	poverty, _ := r.Value(indicator.Poverty)
	hunger, _ := r.Value(indicator.Undernourishment)

	hdiLife := 50.0
	if life != 0 {
		hdiLife = math.Min(100, life/85*100)
	}

	hdiLit := 50.0
	if literacy != 0 {
		hdiLit = literacy
	}

	hdiPov := 50.0
	if poverty != 0 {
		hdiPov = math.Max(0, 100-poverty*2)
	}

	hdiHunger := 50.0
	if hunger != 0 {
		hdiHunger = math.Max(0, 100-hunger*3)
	}

	return round1(hdiLife*0.3 + hdiLit*0.3 + hdiPov*0.2 + hdiHunger*0.2)
}
