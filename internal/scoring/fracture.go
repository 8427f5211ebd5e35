package scoring

import (
	"time"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

// Fracture Index component weights
const (
	weightTradeFragmentation = 0.25
	weightAllianceCohesion   = 0.20
	weightInstitutional      = 0.20
	weightResourceScarcity   = 0.20
	weightProliferation      = 0.15
)

// Market proxy fallbacks when a series has no fresh reading
var marketDefaults = map[string]float64{
	indicator.MarketVIX:    20,
	indicator.MarketOilWTI: 70,
	indicator.MarketDXY:    105,
	indicator.MarketEMBI:   350,
	indicator.MarketGold:   2000,
}

// MarketInputs carries the market proxy readings that feed the Fracture Index
type MarketInputs struct {
	VIX        float64
	Oil        float64
	DXY        float64
	EMBI       float64
	Gold       float64
	VIXHistory []contracts.SeriesPoint
}

// MarketInputsFromSeries extracts fracture inputs from fetched series,
// substituting the documented defaults for anything unavailable.
func MarketInputsFromSeries(series map[string]contracts.Series) MarketInputs {
	latest := func(name string) float64 {
		if s, ok := series[name]; ok && s.Latest != nil {
			return *s.Latest
		}
		return marketDefaults[name]
	}

	return MarketInputs{
		VIX:        latest(indicator.MarketVIX),
		Oil:        latest(indicator.MarketOilWTI),
		DXY:        latest(indicator.MarketDXY),
		EMBI:       latest(indicator.MarketEMBI),
		Gold:       latest(indicator.MarketGold),
		VIXHistory: series[indicator.MarketVIX].Points,
	}
}

// Fracture computes the global systemic-fragmentation index from market
// proxies and the per-country Collapse Index distribution. The proliferation
// component is a configured constant pending a proper data source.
func Fracture(m MarketInputs, cis []float64, proliferation float64) contracts.FractureIndex {
	// Trade fragmentation: stronger dollar plus wider EM spreads
	tf := clamp((m.DXY-90)/30*0.5+(m.EMBI-200)/600*0.5, 0, 1)

	// Alliance cohesion decay: volatility as an uncertainty proxy
	ac := clamp((m.VIX-12)/40, 0, 1)

	// Institutional stress: combined volatility and spread signals
	is := clamp((m.VIX-15)/35*0.5+(m.EMBI-250)/500*0.5, 0, 1)

	// Resource scarcity: oil pressure plus gold as safe haven
	rs := clamp((m.Oil-50)/80*0.4+(m.Gold-1500)/1500*0.6, 0, 1)

	// Domestic multiplier: share of countries already critical
	dm := 1.0
	if len(cis) > 0 {
		var critical int
		for _, ci := range cis {
			if ci >= 70 {
				critical++
			}
		}
		dm = 1 + float64(critical)/float64(len(cis))*0.5
	}

	// Escalation velocity: bounded week-over-week VIX growth, 0 when the
	// history is too short.
	var ev float64
	if n := len(m.VIXHistory); n >= 14 {
		var recent, older float64
		for _, p := range m.VIXHistory[n-7:] {
			recent += p.Value
		}
		for _, p := range m.VIXHistory[n-14 : n-7] {
			older += p.Value
		}
		recent /= 7
		older /= 7
		if older > 0 {
			ev = clamp((recent-older)/older, 0, 0.5)
		}
	}

	raw := (tf*weightTradeFragmentation +
		ac*weightAllianceCohesion +
		is*weightInstitutional +
		rs*weightResourceScarcity +
		proliferation*weightProliferation) * dm * (1 + ev)
	score := clamp(raw*100, 0, 100)

	return contracts.FractureIndex{
		Score: round1(score),
		Components: contracts.FractureComponents{
			TradeFragmentation:     round3(tf),
			AllianceCohesion:       round3(ac),
			InstitutionalStress:    round3(is),
			ResourceScarcity:       round3(rs),
			StrategicProliferation: round3(proliferation),
			DomesticMultiplier:     round3(dm),
			EscalationVelocity:     round3(ev),
		},
		Market: contracts.MarketData{
			VIX:        m.VIX,
			OilWTI:     m.Oil,
			DXY:        m.DXY,
			EMBISpread: m.EMBI,
			Gold:       m.Gold,
		},
		Status:  fractureStatus(score),
		Updated: time.Now().UTC(),
	}
}

func fractureStatus(score float64) string {
	switch {
	case score >= 55:
		return contracts.FractureStressed
	case score >= 40:
		return contracts.FractureElevated
	default:
		return contracts.FractureNormal
	}
}
