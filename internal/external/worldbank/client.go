// Package worldbank fetches annual indicators from the World Bank API v2.
// The upstream rejects overly long country lists, so every request carries at
// most ten ISO3 codes; a failed batch leaves its countries absent rather than
// failing the indicator.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/country"
	"github.com/causentia/backend/pkg/httputil"
	"github.com/causentia/backend/pkg/logger"
)

// batchSize is the maximum number of country codes per request
const batchSize = 10

// Client is the tabular indicator adapter
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	cache      *cache.Store
	logger     *logger.Logger
}

// New creates a World Bank client. Retry stays off: a failed batch is
// tolerated, not repeated.
func New(baseURL string, httpClient *httputil.Client, store *cache.Store, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.DisableRetry(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cache:      store,
		logger:     log,
	}
}

// wbEntry is one observation in the API response
type wbEntry struct {
	Country struct {
		ID string `json:"id"`
	} `json:"country"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// FetchIndicator fetches one indicator for the given countries over the last
// `years` years, merging all batches into country -> year -> value. Memoized
// through the cache under (indicator, lookback). Never fails: transport or
// decode errors drop the affected batch from the result.
func (c *Client) FetchIndicator(ctx context.Context, code string, iso3 []string, years int) map[string]contracts.YearSeries {
	cacheKey := fmt.Sprintf("wb_%s_%d", code, years)

	var cached map[string]contracts.YearSeries
	if found, err := c.cache.Get(cacheKey, &cached); err == nil && found {
		return cached
	}

	result := make(map[string]contracts.YearSeries)
	currentYear := time.Now().Year()

	for start := 0; start < len(iso3); start += batchSize {
		end := start + batchSize
		if end > len(iso3) {
			end = len(iso3)
		}
		batch := iso3[start:end]

		url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=1000&date=%d:%d",
			c.baseURL, strings.Join(batch, ";"), code, currentYear-years, currentYear)

		if err := c.fetchBatch(ctx, url, result); err != nil {
			c.logger.WithError(err).WithFields(map[string]interface{}{
				"indicator": code,
				"batch":     strings.Join(batch, ";"),
			}).Warn("World Bank batch failed")
			continue
		}
	}

	if err := c.cache.Set(cacheKey, result); err != nil {
		c.logger.WithError(err).WithField("key", cacheKey).Warn("Cache write failed")
	}

	return result
}

// fetchBatch performs one request and merges its entries into result
func (c *Client) fetchBatch(ctx context.Context, url string, result map[string]contracts.YearSeries) error {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	// Element 0 is pagination metadata, element 1 the observation list
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(payload) < 2 {
		return nil
	}

	var entries []wbEntry
	if err := json.Unmarshal(payload[1], &entries); err != nil {
		return fmt.Errorf("decode entries: %w", err)
	}

	for _, entry := range entries {
		// Some responses key countries by ISO2
		iso3 := country.NormalizeISO3(entry.Country.ID)
		if iso3 == "" || entry.Date == "" {
			continue
		}
		if _, ok := result[iso3]; !ok {
			result[iso3] = make(contracts.YearSeries)
		}
		result[iso3][entry.Date] = entry.Value
	}

	return nil
}
