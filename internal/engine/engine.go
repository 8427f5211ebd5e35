// Package engine orchestrates the fetch cycle and exposes the programmatic
// surface consumed by the API layer: snapshot access, per-country detail,
// scenario and Monte Carlo runs, cache management.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/country"
	"github.com/causentia/backend/internal/indicator"
	"github.com/causentia/backend/internal/montecarlo"
	"github.com/causentia/backend/internal/scenario"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

// snapshotKey is the cache key of the assembled dashboard snapshot
const snapshotKey = "dashboard"

// Engine wires the source adapters, resolver, scoring and simulators behind
// one surface. The cache store is the only shared mutable state.
type Engine struct {
	cfg       *config.Config
	logger    *logger.Logger
	cache     *cache.Store
	tabular   contracts.TabularSource
	series    contracts.SeriesSource
	sentiment contracts.SentimentSource

	// seed overrides Monte Carlo seeding in tests; 0 means system entropy
	seed int64
}

// New creates an engine
func New(cfg *config.Config, log *logger.Logger, store *cache.Store,
	tabular contracts.TabularSource, series contracts.SeriesSource, sentiment contracts.SentimentSource) *Engine {
	return &Engine{
		cfg:       cfg,
		logger:    log,
		cache:     store,
		tabular:   tabular,
		series:    series,
		sentiment: sentiment,
	}
}

// WithSeed fixes the Monte Carlo seed for reproducible runs
func (e *Engine) WithSeed(seed int64) *Engine {
	e.seed = seed
	return e
}

// GlobalSnapshot returns the cached snapshot, building a fresh one when the
// cache is stale or empty.
func (e *Engine) GlobalSnapshot(ctx context.Context) (*contracts.GlobalSnapshot, error) {
	var snap contracts.GlobalSnapshot
	if found, err := e.cache.Get(snapshotKey, &snap); err == nil && found {
		return &snap, nil
	}

	return e.Refresh(ctx)
}

// Refresh runs a full fetch cycle and replaces the cached snapshot wholesale
func (e *Engine) Refresh(ctx context.Context) (*contracts.GlobalSnapshot, error) {
	start := time.Now()

	snap := e.buildSnapshot(ctx)

	if err := e.cache.Set(snapshotKey, snap); err != nil {
		e.logger.WithError(err).Warn("Snapshot cache write failed")
	}

	e.logger.WithFields(map[string]interface{}{
		"countries": len(snap.Countries),
		"critical":  snap.Counts.Critical,
		"fracture":  snap.Fracture.Score,
		"entropy":   snap.Entropy.Score,
		"duration":  time.Since(start),
	}).Info("Snapshot refreshed")

	return snap, nil
}

// cachedSnapshot returns the snapshot only if one is cached and fresh
func (e *Engine) cachedSnapshot() (*contracts.GlobalSnapshot, error) {
	var snap contracts.GlobalSnapshot
	found, err := e.cache.Get(snapshotKey, &snap)
	if err != nil {
		return nil, fmt.Errorf("read snapshot cache: %w", err)
	}
	if !found {
		return nil, contracts.ErrSnapshotNotReady
	}
	return &snap, nil
}

// Country returns one country's snapshot entry plus its annual indicator
// history, read back from the per-indicator caches of the same cycle.
func (e *Engine) Country(ctx context.Context, code string) (*contracts.CountryDetail, error) {
	code = strings.ToUpper(code)
	meta, ok := country.Get(code)
	if !ok {
		return nil, contracts.ErrUnknownCountry
	}

	snap, err := e.cachedSnapshot()
	if err != nil {
		return nil, err
	}

	cdata, ok := snap.Countries[code]
	if !ok {
		return nil, contracts.ErrSnapshotNotReady
	}

	detail := &contracts.CountryDetail{
		CountrySnapshot: cdata,
		History:         e.history(meta.ISO3),
		Updated:         snap.Timestamp,
	}

	return detail, nil
}

// history collects non-absent annual observations for the headline series
func (e *Engine) history(iso3 string) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)

	for _, name := range indicator.HistoryIndicators {
		code := indicator.WorldBankCodes[name]
		cacheKey := fmt.Sprintf("wb_%s_%d", code, e.cfg.WorldBank.Years)

		var series map[string]contracts.YearSeries
		found, err := e.cache.Get(cacheKey, &series)
		if err != nil || !found {
			continue
		}

		years, ok := series[iso3]
		if !ok {
			continue
		}

		values := make(map[string]float64)
		for year, v := range years {
			if v != nil {
				values[year] = *v
			}
		}
		if len(values) > 0 {
			out[name] = values
		}
	}

	return out
}

// RunScenario applies shock deltas to the cached snapshot and re-scores every
// country. It never fetches live data: without a prior snapshot it returns
// ErrSnapshotNotReady.
func (e *Engine) RunScenario(ctx context.Context, shocks map[string]float64, overrides map[string]map[string]float64) (*contracts.ScenarioReport, error) {
	snap, err := e.cachedSnapshot()
	if err != nil {
		return nil, err
	}

	results, summary := scenario.Apply(snap, shocks, overrides)

	return &contracts.ScenarioReport{
		Shocks:           shocks,
		CountryOverrides: overrides,
		Results:          results,
		Summary:          summary,
	}, nil
}

// RunMonteCarlo simulates n randomized trajectories around a country's
// current Collapse Index. Consumes the cached snapshot only.
func (e *Engine) RunMonteCarlo(ctx context.Context, code string, n int) (*contracts.MonteCarloReport, error) {
	code = strings.ToUpper(code)
	meta, ok := country.Get(code)
	if !ok {
		return nil, contracts.ErrUnknownCountry
	}

	snap, err := e.cachedSnapshot()
	if err != nil {
		return nil, err
	}

	cdata, ok := snap.Countries[code]
	if !ok {
		return nil, contracts.ErrSnapshotNotReady
	}

	if n <= 0 {
		n = montecarlo.DefaultScenarios
	}
	if n > montecarlo.MaxScenarios {
		n = montecarlo.MaxScenarios
	}

	sim := montecarlo.New(e.seed)
	dist, bins := sim.Run(cdata.CI, cdata.Stress, n)

	return &contracts.MonteCarloReport{
		Country:   code,
		Name:      meta.Name,
		Scenarios: n,
		CurrentCI: cdata.CI,
		Results:   dist,
		Bins:      bins,
		Updated:   time.Now().UTC(),
	}, nil
}

// MarketOverview fetches every market proxy series concurrently and reports
// the latest reading of each.
func (e *Engine) MarketOverview(ctx context.Context) *contracts.MarketOverview {
	var mu sync.Mutex
	var wg sync.WaitGroup

	market := make(map[string]contracts.SeriesSummary, len(indicator.FREDSeries))

	for name, id := range indicator.FREDSeries {
		wg.Add(1)
		go func(name, id string) {
			defer wg.Done()
			s := e.series.FetchSeries(ctx, id, e.cfg.FRED.LookbackDays)
			mu.Lock()
			market[name] = contracts.SeriesSummary{
				Series:     name,
				Latest:     s.Latest,
				DataPoints: len(s.Points),
			}
			mu.Unlock()
		}(name, id)
	}
	wg.Wait()

	return &contracts.MarketOverview{
		Timestamp: time.Now().UTC(),
		Market:    market,
	}
}

// NewsSentiment returns both text-analytics outputs for one country
func (e *Engine) NewsSentiment(ctx context.Context, code string) (*contracts.NewsReport, error) {
	code = strings.ToUpper(code)
	meta, ok := country.Get(code)
	if !ok {
		return nil, contracts.ErrUnknownCountry
	}

	return &contracts.NewsReport{
		Country: code,
		Name:    meta.Name,
		Tone:    e.sentiment.FetchTone(ctx, code),
		Volume:  e.sentiment.FetchVolume(ctx, code),
		Updated: time.Now().UTC(),
	}, nil
}

// ClearCache drops every cached entry, snapshot included
func (e *Engine) ClearCache() error {
	return e.cache.Clear()
}
