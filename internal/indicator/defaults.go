package indicator

// Defaults is the single fallback table for absent observations. The scoring
// engine is a pure function of a fully defaulted record; every formula reads
// its fallback from here, never from an inline constant.
var Defaults = map[string]float64{
	Inflation:          5,
	GDPGrowth:          2,
	DebtGDP:            50,
	ReservesMonths:     3,
	CurrentAccount:     0,
	ExternalDebt:       50,
	PoliticalStability: 0,
	GovEffectiveness:   0,
	RuleOfLaw:          0,
	ControlCorruption:  0,
	RegulatoryQuality:  0,
	NewsTone:           0,
	NewsTrend:          0,
}
