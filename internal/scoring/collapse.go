package scoring

import (
	"math"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

// Stress weights
const (
	weightInflation = 0.25
	weightGrowth    = 0.20
	weightDebt      = 0.20
	weightExternal  = 0.20
	weightNews      = 0.15
)

// Stress computes the acute-pressure score (0-100), a weighted sum of five
// sub-scores: inflation severity, growth decline, debt burden, external
// vulnerability and news pressure.
func Stress(r indicator.Record) float64 {
	// S1: inflation severity. Above 10% the full scale applies; above 100%
	// (hyperinflation) the score saturates toward 100 on a slower ramp.
	inf := r.ValueOr(indicator.Inflation)
	var s1 float64
	if inf > 10 {
		s1 = clamp(math.Abs(inf)/50*100, 0, 100)
	} else {
		s1 = clamp(math.Abs(inf)/20*100*0.5, 0, 100)
	}
	if inf > 100 {
		s1 = math.Min(100, 70+(inf-100)/500*30)
	}

	// S2: growth decline, only below 3% growth
	gdp := r.ValueOr(indicator.GDPGrowth)
	var s2 float64
	if gdp < 3 {
		s2 = clamp((3-gdp)*15, 0, 100)
	}

	// S3: debt burden
	debt := r.ValueOr(indicator.DebtGDP)
	s3 := clamp((debt-40)/200*100, 0, 100)

	// S4: external vulnerability, current account deficit plus external debt
	ca := r.ValueOr(indicator.CurrentAccount)
	extDebt := r.ValueOr(indicator.ExternalDebt)
	var s4ca float64
	if ca < 0 {
		s4ca = clamp(-ca*5, 0, 50)
	}
	s4ext := clamp((extDebt-50)/300*50, 0, 50)
	s4 := s4ca + s4ext

	// S5: news pressure, negative tone plus rising volume
	tone := r.ValueOr(indicator.NewsTone)
	trend := r.ValueOr(indicator.NewsTrend)
	s5 := clamp(-tone*10+trend*0.5, 0, 100)

	stress := s1*weightInflation + s2*weightGrowth + s3*weightDebt + s4*weightExternal + s5*weightNews
	return clamp(stress, 0, 100)
}

// Absorption computes shock-absorption capacity (0.1-2.0): the mean of
// reserves adequacy, fiscal space and institutional credibility.
func Absorption(r indicator.Record) float64 {
	reserves := r.ValueOr(indicator.ReservesMonths)
	resScore := clamp(reserves/6, 0.1, 2)

	debt := r.ValueOr(indicator.DebtGDP)
	fiscalScore := clamp((200-debt)/100, 0.1, 2)

	// WGI estimates range roughly -2.5..2.5; rescale their mean to 0.1-2.0
	wgiAvg := (r.ValueOr(indicator.GovEffectiveness) +
		r.ValueOr(indicator.RuleOfLaw) +
		r.ValueOr(indicator.ControlCorruption) +
		r.ValueOr(indicator.RegulatoryQuality)) / 4
	instScore := clamp((wgiAvg+2.5)/5*2, 0.1, 2)

	return (resScore + fiscalScore + instScore) / 3
}

// Resilience computes recovery capacity (0.1-2.0): the geometric mean of
// growth momentum and policy flexibility.
func Resilience(r indicator.Record) float64 {
	gdp := r.ValueOr(indicator.GDPGrowth)
	recovery := clamp((gdp+5)/10*2, 0.1, 2)

	reserves := r.ValueOr(indicator.ReservesMonths)
	debt := r.ValueOr(indicator.DebtGDP)
	polStab := r.ValueOr(indicator.PoliticalStability)
	flexibility := clamp(
		reserves/12*0.4+
			(200-debt)/200*0.3+
			(polStab+2.5)/5*0.3*2,
		0.1, 2)

	return math.Max(0.1, math.Sqrt(recovery*flexibility))
}

// Collapse computes the Collapse Index and its classification:
// CI = clamp(Stress / (Absorption + Resilience) * 1.5, 0, 100).
func Collapse(r indicator.Record) contracts.CountryScore {
	stress := Stress(r)
	absorption := Absorption(r)
	resilience := Resilience(r)

	ci := clamp(stress/(absorption+resilience)*1.5, 0, 100)
	level, window := Classify(ci)

	return contracts.CountryScore{
		CI:         round1(ci),
		Stress:     round2(stress),
		Absorption: round3(absorption),
		Resilience: round3(resilience),
		Level:      level,
		Window:     window,
	}
}

// Classify maps a Collapse Index to its risk level and estimated window.
// Thresholds are closed-open partitions: CI of exactly 70 is CRITICAL.
func Classify(ci float64) (contracts.RiskLevel, string) {
	switch {
	case ci >= 70:
		return contracts.LevelCritical, "0-6 mo"
	case ci >= 50:
		return contracts.LevelDanger, "6-12 mo"
	case ci >= 25:
		return contracts.LevelCaution, "12-24 mo"
	default:
		return contracts.LevelSafe, "24-36 mo"
	}
}
