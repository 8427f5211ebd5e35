// Package fred fetches market time series from the FRED CSV endpoint.
package fred

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/pkg/httputil"
	"github.com/causentia/backend/pkg/logger"
)

// noDataSentinel marks rows without an observation in the CSV export
const noDataSentinel = "."

// Client is the time-series adapter
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	cache      *cache.Store
	logger     *logger.Logger
}

// New creates a FRED client
func New(baseURL string, httpClient *httputil.Client, store *cache.Store, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.DisableRetry(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cache:      store,
		logger:     log,
	}
}

// FetchSeries fetches a series over the lookback window, memoized through the
// cache under (series, lookback). Never fails: any transport error yields a
// series with no points, and malformed or no-data rows are skipped.
func (c *Client) FetchSeries(ctx context.Context, id string, lookbackDays int) contracts.Series {
	cacheKey := fmt.Sprintf("fred_%s_%d", id, lookbackDays)

	var cached contracts.Series
	if found, err := c.cache.Get(cacheKey, &cached); err == nil && found {
		return cached
	}

	result := contracts.Series{ID: id}

	start := time.Now().AddDate(0, 0, -lookbackDays).Format("2006-01-02")
	url := fmt.Sprintf("%s/graph/fredgraph.csv?id=%s&cosd=%s", c.baseURL, id, start)

	body, err := c.fetch(ctx, url)
	if err != nil {
		c.logger.WithError(err).WithField("series", id).Warn("FRED fetch failed")
	} else {
		result.Points = parseCSV(body)
		if n := len(result.Points); n > 0 {
			latest := result.Points[n-1].Value
			result.Latest = &latest
		}
	}

	if err := c.cache.Set(cacheKey, result); err != nil {
		c.logger.WithError(err).WithField("key", cacheKey).Warn("Cache write failed")
	}

	return result
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(body), nil
}

// parseCSV parses the two-column export, skipping the header row, no-data
// sentinels and anything that fails numeric parsing.
func parseCSV(body string) []contracts.SeriesPoint {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) < 2 {
		return nil
	}

	var points []contracts.SeriesPoint
	for _, line := range lines[1:] {
		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) != 2 || parts[1] == noDataSentinel {
			continue
		}

		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}

		points = append(points, contracts.SeriesPoint{
			Date:  parts[0],
			Value: value,
		})
	}

	return points
}
