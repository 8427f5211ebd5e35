// Package resolver merges adapter outputs into one flat indicator record per
// country. Pure functions over already-fetched data; no I/O happens here.
package resolver

import (
	"sort"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/indicator"
)

// Latest returns the observation at the most recent period that is not
// absent. Periods are annual and compared lexicographically as 4-digit years.
func Latest(series contracts.YearSeries) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}

	years := make([]string, 0, len(series))
	for year := range series {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	for _, year := range years {
		if v := series[year]; v != nil {
			return *v, true
		}
	}

	return 0, false
}

// Resolve builds a country's indicator record from its per-indicator annual
// series plus the two text-analytics outputs. An indicator whose every period
// is absent stays absent in the record.
func Resolve(series map[string]contracts.YearSeries, tone, trend float64) indicator.Record {
	var rec indicator.Record

	for name := range indicator.WorldBankCodes {
		s, ok := series[name]
		if !ok {
			continue
		}
		if v, ok := Latest(s); ok {
			rec.Set(name, v)
		}
	}

	rec.Set(indicator.NewsTone, tone)
	rec.Set(indicator.NewsTrend, trend)

	return rec
}
