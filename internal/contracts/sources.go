package contracts

import "context"

// YearSeries maps a 4-digit year to an optional annual observation.
// A nil value is an explicit upstream null, distinct from a missing year.
type YearSeries map[string]*float64

// SeriesPoint is one dated observation of a market series
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is an ordered market time series with its most recent value
type Series struct {
	ID     string        `json:"series"`
	Points []SeriesPoint `json:"data"`
	Latest *float64      `json:"latest,omitempty"`
}

// VolumeReport summarizes news article volume for one country over the window
type VolumeReport struct {
	Country   string  `json:"country"`
	Volume    float64 `json:"volume"`
	AvgVolume float64 `json:"avg_volume"`
	// Trend is the recent-vs-early volume growth in percent, 0 when fewer
	// than seven samples exist.
	Trend float64 `json:"trend"`
}

// ToneReport is the mean news tone for one country
type ToneReport struct {
	Country string  `json:"country"`
	Tone    float64 `json:"tone"`
}

// TabularSource fetches one annual indicator for a set of countries.
// Implementations never fail: countries whose batch could not be fetched are
// simply absent from the result.
type TabularSource interface {
	FetchIndicator(ctx context.Context, code string, iso3 []string, years int) map[string]YearSeries
}

// SeriesSource fetches a market time series over a lookback window in days.
// Implementations never fail: an unreachable series yields empty points.
type SeriesSource interface {
	FetchSeries(ctx context.Context, id string, lookbackDays int) Series
}

// SentimentSource fetches news-derived signals for one country.
// Implementations never fail: any transport or parse error yields the
// zero-valued report.
type SentimentSource interface {
	FetchVolume(ctx context.Context, code string) VolumeReport
	FetchTone(ctx context.Context, code string) ToneReport
}
