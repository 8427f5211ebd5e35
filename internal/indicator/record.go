// Package indicator defines the fixed-schema per-country indicator record,
// its name registry and the fallback defaults used by the scoring engine.
package indicator

// Indicator names. These are the only keys the pipeline understands; unknown
// names are ignored at every boundary.
const (
	Inflation          = "inflation"
	GDPGrowth          = "gdp_growth"
	DebtGDP            = "debt_gdp"
	ReservesMonths     = "reserves_months"
	CurrentAccount     = "current_account"
	Unemployment       = "unemployment"
	GovExpenditure     = "gov_expenditure"
	TradeOpenness      = "trade_openness"
	FDIInflow          = "fdi_inflow"
	ExternalDebt       = "external_debt"
	BroadMoney         = "broad_money"
	DomesticCredit     = "domestic_credit"
	PoliticalStability = "political_stability"
	GovEffectiveness   = "gov_effectiveness"
	RuleOfLaw          = "rule_of_law"
	ControlCorruption  = "control_corruption"
	RegulatoryQuality  = "regulatory_quality"
	PopulationGrowth   = "population_growth"
	GNIPerCapita       = "gni_per_capita"
	Undernourishment   = "undernourishment"
	Poverty            = "poverty"
	LifeExpectancy     = "life_expectancy"
	LiteracyRate       = "literacy_rate"
	MaternalMortality  = "maternal_mortality"
	CO2Emissions       = "co2_emissions"
	NewsTone           = "news_tone"
	NewsTrend          = "news_trend"
)

// Record is one country's indicator set for a fetch cycle. A nil field means
// the observation is absent, which is distinct from zero.
type Record struct {
	Inflation          *float64 `json:"inflation,omitempty"`
	GDPGrowth          *float64 `json:"gdp_growth,omitempty"`
	DebtGDP            *float64 `json:"debt_gdp,omitempty"`
	ReservesMonths     *float64 `json:"reserves_months,omitempty"`
	CurrentAccount     *float64 `json:"current_account,omitempty"`
	Unemployment       *float64 `json:"unemployment,omitempty"`
	GovExpenditure     *float64 `json:"gov_expenditure,omitempty"`
	TradeOpenness      *float64 `json:"trade_openness,omitempty"`
	FDIInflow          *float64 `json:"fdi_inflow,omitempty"`
	ExternalDebt       *float64 `json:"external_debt,omitempty"`
	BroadMoney         *float64 `json:"broad_money,omitempty"`
	DomesticCredit     *float64 `json:"domestic_credit,omitempty"`
	PoliticalStability *float64 `json:"political_stability,omitempty"`
	GovEffectiveness   *float64 `json:"gov_effectiveness,omitempty"`
	RuleOfLaw          *float64 `json:"rule_of_law,omitempty"`
	ControlCorruption  *float64 `json:"control_corruption,omitempty"`
	RegulatoryQuality  *float64 `json:"regulatory_quality,omitempty"`
	PopulationGrowth   *float64 `json:"population_growth,omitempty"`
	GNIPerCapita       *float64 `json:"gni_per_capita,omitempty"`
	Undernourishment   *float64 `json:"undernourishment,omitempty"`
	Poverty            *float64 `json:"poverty,omitempty"`
	LifeExpectancy     *float64 `json:"life_expectancy,omitempty"`
	LiteracyRate       *float64 `json:"literacy_rate,omitempty"`
	MaternalMortality  *float64 `json:"maternal_mortality,omitempty"`
	CO2Emissions       *float64 `json:"co2_emissions,omitempty"`
	NewsTone           *float64 `json:"news_tone,omitempty"`
	NewsTrend          *float64 `json:"news_trend,omitempty"`
}

// fields maps an indicator name to its slot in the record
var fields = map[string]func(*Record) **float64{
	Inflation:          func(r *Record) **float64 { return &r.Inflation },
	GDPGrowth:          func(r *Record) **float64 { return &r.GDPGrowth },
	DebtGDP:            func(r *Record) **float64 { return &r.DebtGDP },
	ReservesMonths:     func(r *Record) **float64 { return &r.ReservesMonths },
	CurrentAccount:     func(r *Record) **float64 { return &r.CurrentAccount },
	Unemployment:       func(r *Record) **float64 { return &r.Unemployment },
	GovExpenditure:     func(r *Record) **float64 { return &r.GovExpenditure },
	TradeOpenness:      func(r *Record) **float64 { return &r.TradeOpenness },
	FDIInflow:          func(r *Record) **float64 { return &r.FDIInflow },
	ExternalDebt:       func(r *Record) **float64 { return &r.ExternalDebt },
	BroadMoney:         func(r *Record) **float64 { return &r.BroadMoney },
	DomesticCredit:     func(r *Record) **float64 { return &r.DomesticCredit },
	PoliticalStability: func(r *Record) **float64 { return &r.PoliticalStability },
	GovEffectiveness:   func(r *Record) **float64 { return &r.GovEffectiveness },
	RuleOfLaw:          func(r *Record) **float64 { return &r.RuleOfLaw },
	ControlCorruption:  func(r *Record) **float64 { return &r.ControlCorruption },
	RegulatoryQuality:  func(r *Record) **float64 { return &r.RegulatoryQuality },
	PopulationGrowth:   func(r *Record) **float64 { return &r.PopulationGrowth },
	GNIPerCapita:       func(r *Record) **float64 { return &r.GNIPerCapita },
	Undernourishment:   func(r *Record) **float64 { return &r.Undernourishment },
	Poverty:            func(r *Record) **float64 { return &r.Poverty },
	LifeExpectancy:     func(r *Record) **float64 { return &r.LifeExpectancy },
	LiteracyRate:       func(r *Record) **float64 { return &r.LiteracyRate },
	MaternalMortality:  func(r *Record) **float64 { return &r.MaternalMortality },
	CO2Emissions:       func(r *Record) **float64 { return &r.CO2Emissions },
	NewsTone:           func(r *Record) **float64 { return &r.NewsTone },
	NewsTrend:          func(r *Record) **float64 { return &r.NewsTrend },
}

// Known reports whether name is a recognized indicator
func Known(name string) bool {
	_, ok := fields[name]
	return ok
}

// Value returns the observation for name, and whether it is present
func (r *Record) Value(name string) (float64, bool) {
	slot, ok := fields[name]
	if !ok {
		return 0, false
	}
	p := *slot(r)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// ValueOr returns the observation for name, falling back to the documented
// default when absent. Names outside the default table fall back to 0.
func (r *Record) ValueOr(name string) float64 {
	if v, ok := r.Value(name); ok {
		return v
	}
	return Defaults[name]
}

// Set stores an observation. Unknown names are rejected.
func (r *Record) Set(name string, v float64) bool {
	slot, ok := fields[name]
	if !ok {
		return false
	}
	*slot(r) = &v
	return true
}

// Apply adds delta to a present observation, or sets it when absent and
// delta is non-zero. Unknown names are ignored.
func (r *Record) Apply(name string, delta float64) bool {
	slot, ok := fields[name]
	if !ok {
		return false
	}
	p := slot(r)
	if *p != nil {
		v := **p + delta
		*p = &v
		return true
	}
	if delta != 0 {
		*p = &delta
		return true
	}
	return false
}

// Clone returns a deep copy so shock application never aliases the snapshot
func (r Record) Clone() Record {
	out := Record{}
	for _, slot := range fields {
		src := *slot(&r)
		if src != nil {
			v := *src
			*slot(&out) = &v
		}
	}
	return out
}
