package contracts

import (
	"time"

	"github.com/causentia/backend/internal/indicator"
)

// ScenarioRequest applies global shock deltas plus per-country override deltas
type ScenarioRequest struct {
	Shocks           map[string]float64            `json:"shocks"`
	CountryOverrides map[string]map[string]float64 `json:"country_overrides"`
}

// ScenarioResult is one country's re-scored outcome under a scenario
type ScenarioResult struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Flag          string           `json:"flag"`
	Region        string           `json:"region"`
	OriginalCI    float64          `json:"originalCI"`
	NewCI         float64          `json:"newCI"`
	Delta         float64          `json:"delta"`
	OriginalLevel RiskLevel        `json:"originalLevel"`
	NewLevel      RiskLevel        `json:"newLevel"`
	Stress        float64          `json:"stress"`
	Absorption    float64          `json:"absorption"`
	Resilience    float64          `json:"resilience"`
	Indicators    indicator.Record `json:"indicators"`
}

// ScenarioSummary aggregates a scenario run across all countries
type ScenarioSummary struct {
	AvgDelta      float64 `json:"avg_delta"`
	Critical      int     `json:"critical"`
	Danger        int     `json:"danger"`
	Caution       int     `json:"caution"`
	Safe          int     `json:"safe"`
	OldCritical   int     `json:"old_critical"`
	OldDanger     int     `json:"old_danger"`
	Downgrades    int     `json:"downgrades"`
	Beneficiaries int     `json:"beneficiaries"`
	Total         int     `json:"total"`
}

// ScenarioReport is the full what-if response, results ranked by delta
type ScenarioReport struct {
	Shocks           map[string]float64            `json:"scenario"`
	CountryOverrides map[string]map[string]float64 `json:"country_overrides"`
	Results          []ScenarioResult              `json:"results"`
	Summary          ScenarioSummary               `json:"summary"`
}

// Distribution carries the headline statistics of a Monte Carlo run
type Distribution struct {
	Mean float64 `json:"mean"`
	// P5 is the 5th percentile (best case), P95 the 95th (worst case)
	P5  float64 `json:"p5_best"`
	P95 float64 `json:"p95_worst"`
	// CrisisProb is the probability mass at CI >= 70, in percent
	CrisisProb float64 `json:"p_crisis"`
}

// MonteCarloReport is the full simulation response for one country
type MonteCarloReport struct {
	Country   string       `json:"country"`
	Name      string       `json:"name"`
	Scenarios int          `json:"scenarios"`
	CurrentCI float64      `json:"current_ci"`
	Results   Distribution `json:"results"`
	Bins      []int        `json:"distribution"`
	Updated   time.Time    `json:"updated"`
}
