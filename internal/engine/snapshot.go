package engine

import (
	"context"
	"sync"
	"time"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/country"
	"github.com/causentia/backend/internal/indicator"
	"github.com/causentia/backend/internal/resolver"
	"github.com/causentia/backend/internal/scoring"
)

// fractureSeries are the market proxies that feed the Fracture Index
var fractureSeries = []string{
	indicator.MarketVIX,
	indicator.MarketOilWTI,
	indicator.MarketDXY,
	indicator.MarketEMBI,
	indicator.MarketGold,
}

// sentimentPair holds both text-analytics outputs for one monitored country
type sentimentPair struct {
	tone   float64
	volume contracts.VolumeReport
}

// buildSnapshot runs one full fetch cycle: every World Bank indicator, the
// fracture market series and per-country news sentiment are fetched
// concurrently, then every country is scored and the global indices derived.
// Source failures degrade to defaults; the build itself cannot fail.
func (e *Engine) buildSnapshot(ctx context.Context) *contracts.GlobalSnapshot {
	iso3 := country.ISO3Codes()
	monitored := country.Monitored(e.cfg.GDELT.Monitored)

	var mu sync.Mutex
	var wg sync.WaitGroup

	tabular := make(map[string]map[string]contracts.YearSeries, len(indicator.WorldBankCodes))
	market := make(map[string]contracts.Series, len(fractureSeries))
	sentiment := make(map[string]sentimentPair, len(monitored))

	for name, code := range indicator.WorldBankCodes {
		wg.Add(1)
		go func(name, code string) {
			defer wg.Done()
			series := e.tabular.FetchIndicator(ctx, code, iso3, e.cfg.WorldBank.Years)
			mu.Lock()
			tabular[name] = series
			mu.Unlock()
		}(name, code)
	}

	for _, name := range fractureSeries {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			s := e.series.FetchSeries(ctx, indicator.FREDSeries[name], e.cfg.FRED.LookbackDays)
			mu.Lock()
			market[name] = s
			mu.Unlock()
		}(name)
	}

	for _, c := range monitored {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			tone := e.sentiment.FetchTone(ctx, code)
			volume := e.sentiment.FetchVolume(ctx, code)
			mu.Lock()
			sentiment[code] = sentimentPair{tone: tone.Tone, volume: volume}
			mu.Unlock()
		}(c.Code)
	}

	wg.Wait()

	snap := &contracts.GlobalSnapshot{
		Timestamp: time.Now().UTC(),
		Countries: make(map[string]contracts.CountrySnapshot, len(country.All)),
		Sources: contracts.SourceStatus{
			WorldBankIndicators: len(tabular),
			FREDSeries:          len(market),
			GDELTCountries:      len(sentiment),
		},
	}

	cis := make([]float64, 0, len(country.All))

	for _, c := range country.All {
		perSeries := make(map[string]contracts.YearSeries, len(tabular))
		for name, byCountry := range tabular {
			if s, ok := byCountry[c.ISO3]; ok {
				perSeries[name] = s
			}
		}

		pair := sentiment[c.Code]
		rec := resolver.Resolve(perSeries, pair.tone, pair.volume.Trend)
		score := scoring.Collapse(rec)

		snap.Countries[c.Code] = contracts.CountrySnapshot{
			Code:         c.Code,
			ISO3:         c.ISO3,
			Name:         c.Name,
			Flag:         c.Flag,
			Region:       c.Region,
			CountryScore: score,
			HDI:          scoring.HDI(rec),
			Indicators:   rec,
		}

		cis = append(cis, score.CI)

		switch score.Level {
		case contracts.LevelCritical:
			snap.Counts.Critical++
		case contracts.LevelDanger:
			snap.Counts.Danger++
		case contracts.LevelCaution:
			snap.Counts.Caution++
		default:
			snap.Counts.Safe++
		}
	}

	inputs := scoring.MarketInputsFromSeries(market)
	snap.Fracture = scoring.Fracture(inputs, cis, e.cfg.Fracture.Proliferation)
	snap.Entropy = scoring.CausalEntropy(snap.Countries, inputs.VIX)

	return snap
}
