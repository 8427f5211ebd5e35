package contracts

import (
	"time"

	"github.com/causentia/backend/internal/indicator"
)

// RiskLevel classifies a Collapse Index reading
type RiskLevel string

const (
	LevelSafe     RiskLevel = "SAFE"
	LevelCaution  RiskLevel = "CAUTION"
	LevelDanger   RiskLevel = "DANGER"
	LevelCritical RiskLevel = "CRITICAL"
)

// Fracture Index statuses
const (
	FractureNormal   = "NORMAL"
	FractureElevated = "ELEVATED"
	FractureStressed = "STRESSED"
)

// Causal Entropy statuses
const (
	EntropyOrder   = "ORDER"
	EntropyFlux    = "FLUX"
	EntropyChaos   = "CHAOS"
	EntropyEntropy = "ENTROPY"
)

// CountryScore is the composite risk result for one country.
// Derived on every scoring call; cached only as part of a snapshot.
type CountryScore struct {
	CI         float64   `json:"ci"`
	Stress     float64   `json:"stress"`
	Absorption float64   `json:"absorption"`
	Resilience float64   `json:"resilience"`
	Level      RiskLevel `json:"level"`
	Window     string    `json:"window"`
}

// CountrySnapshot is one country's entry in a global snapshot
type CountrySnapshot struct {
	Code   string `json:"code"`
	ISO3   string `json:"iso3"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Region string `json:"region"`
	CountryScore
	HDI        float64          `json:"hdi"`
	Indicators indicator.Record `json:"indicators"`
}

// CountryDetail adds per-indicator annual history to a snapshot entry
type CountryDetail struct {
	CountrySnapshot
	History map[string]map[string]float64 `json:"history"`
	Updated time.Time                     `json:"updated"`
}

// LevelCounts summarizes how many countries sit at each risk level
type LevelCounts struct {
	Critical int `json:"critical"`
	Danger   int `json:"danger"`
	Caution  int `json:"caution"`
	Safe     int `json:"safe"`
}

// FractureComponents are the normalized [0,1] inputs and multipliers of the
// Fracture Index
type FractureComponents struct {
	TradeFragmentation     float64 `json:"trade_fragmentation"`
	AllianceCohesion       float64 `json:"alliance_cohesion"`
	InstitutionalStress    float64 `json:"institutional_stress"`
	ResourceScarcity       float64 `json:"resource_scarcity"`
	StrategicProliferation float64 `json:"strategic_proliferation"`
	DomesticMultiplier     float64 `json:"domestic_multiplier"`
	EscalationVelocity     float64 `json:"escalation_velocity"`
}

// MarketData carries the market proxy readings behind a Fracture Index
type MarketData struct {
	VIX        float64 `json:"vix"`
	OilWTI     float64 `json:"oil_wti"`
	DXY        float64 `json:"dxy"`
	EMBISpread float64 `json:"embi_spread"`
	Gold       float64 `json:"gold"`
}

// FractureIndex is the global systemic-fragmentation score
type FractureIndex struct {
	Score      float64            `json:"score"`
	Components FractureComponents `json:"components"`
	Market     MarketData         `json:"market_data"`
	Status     string             `json:"status"`
	Updated    time.Time          `json:"updated"`
}

// EntropyComponents are the normalized [0,1] inputs of the Causal Entropy Index
type EntropyComponents struct {
	InterconnectionComplexity float64 `json:"interconnection_complexity"`
	ResponseLatency           float64 `json:"response_latency"`
	InformationNoise          float64 `json:"information_noise"`
	RedundancyReserves        float64 `json:"redundancy_reserves"`
}

// CausalEntropy is the global cross-country disorder score
type CausalEntropy struct {
	Score      float64           `json:"score"`
	Components EntropyComponents `json:"components"`
	Status     string            `json:"status"`
	Updated    time.Time         `json:"updated"`
}

// SourceStatus reports how each upstream contributed to a snapshot
type SourceStatus struct {
	WorldBankIndicators int `json:"worldbank_indicators"`
	FREDSeries          int `json:"fred_series"`
	GDELTCountries      int `json:"gdelt_countries"`
}

// GlobalSnapshot is the unit cached for the dashboard: every country score
// plus the global indices for one fetch cycle. Superseded wholesale after TTL.
type GlobalSnapshot struct {
	Timestamp time.Time                  `json:"timestamp"`
	Counts    LevelCounts                `json:"counts"`
	Countries map[string]CountrySnapshot `json:"countries"`
	Fracture  FractureIndex              `json:"fracture_index"`
	Entropy   CausalEntropy              `json:"causal_entropy"`
	Sources   SourceStatus               `json:"data_sources"`
}

// SeriesSummary is one market series in the market overview
type SeriesSummary struct {
	Series     string   `json:"series"`
	Latest     *float64 `json:"latest"`
	DataPoints int      `json:"data_points"`
}

// MarketOverview reports the latest reading of every market proxy series
type MarketOverview struct {
	Timestamp time.Time                `json:"timestamp"`
	Market    map[string]SeriesSummary `json:"market"`
}

// NewsReport bundles both text-analytics outputs for one country
type NewsReport struct {
	Country string       `json:"country"`
	Name    string       `json:"name"`
	Tone    ToneReport   `json:"tone"`
	Volume  VolumeReport `json:"volume"`
	Updated time.Time    `json:"updated"`
}
