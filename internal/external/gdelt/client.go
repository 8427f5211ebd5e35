// Package gdelt fetches news volume and tone signals from the GDELT doc API.
// Queries are built from the country's display name plus fixed economic-crisis
// keywords; any failure yields the documented zero-valued report.
package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/country"
	"github.com/causentia/backend/pkg/httputil"
	"github.com/causentia/backend/pkg/logger"
)

const (
	volumeTimespan = "30d"
	toneTimespan   = "14d"

	// trendSamples is the window size of the recent-vs-early volume
	// comparison; the trend is only computed when at least this many
	// samples exist.
	trendSamples = 7

	// maxToneSamples bounds how many tone buckets feed the mean
	maxToneSamples = 50
)

// Client is the text-analytics adapter
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	cache      *cache.Store
	logger     *logger.Logger
}

// New creates a GDELT client. The caller configures politeness rate limiting
// on the HTTP client; two requests fan out per monitored country.
func New(baseURL string, httpClient *httputil.Client, store *cache.Store, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.DisableRetry(),
		baseURL:    baseURL,
		cache:      store,
		logger:     log,
	}
}

// timelineResponse is the mode=timelinevol response shape
type timelineResponse struct {
	Timeline []struct {
		Data []struct {
			Value float64 `json:"value"`
		} `json:"data"`
	} `json:"timeline"`
}

// toneResponse is the mode=tonechart response shape
type toneResponse struct {
	ToneChart []struct {
		Tone float64 `json:"tone"`
	} `json:"tonechart"`
}

// FetchVolume fetches total and mean article volume for a country plus the
// trend ratio between the most recent and earliest seven samples.
func (c *Client) FetchVolume(ctx context.Context, code string) contracts.VolumeReport {
	result := contracts.VolumeReport{Country: code}

	meta, ok := country.Get(code)
	if !ok {
		return result
	}

	cacheKey := fmt.Sprintf("gdelt_vol_%s_%s", code, volumeTimespan)
	var cached contracts.VolumeReport
	if found, err := c.cache.Get(cacheKey, &cached); err == nil && found {
		return cached
	}

	query := fmt.Sprintf("%q (economy OR crisis OR debt OR inflation OR default)", meta.Name)
	body, err := c.fetch(ctx, query, "timelinevol", volumeTimespan)
	if err != nil {
		c.logger.WithError(err).WithField("country", code).Warn("GDELT volume fetch failed")
	} else {
		var data timelineResponse
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.WithError(err).WithField("country", code).Warn("GDELT volume decode failed")
		} else if len(data.Timeline) > 0 {
			volumes := make([]float64, 0, len(data.Timeline[0].Data))
			for _, p := range data.Timeline[0].Data {
				volumes = append(volumes, p.Value)
			}
			fillVolumeReport(&result, volumes)
		}
	}

	if err := c.cache.Set(cacheKey, result); err != nil {
		c.logger.WithError(err).WithField("key", cacheKey).Warn("Cache write failed")
	}

	return result
}

// FetchTone fetches the mean news tone over the first tone buckets returned
func (c *Client) FetchTone(ctx context.Context, code string) contracts.ToneReport {
	result := contracts.ToneReport{Country: code}

	meta, ok := country.Get(code)
	if !ok {
		return result
	}

	cacheKey := fmt.Sprintf("gdelt_tone_%s_%s", code, toneTimespan)
	var cached contracts.ToneReport
	if found, err := c.cache.Get(cacheKey, &cached); err == nil && found {
		return cached
	}

	query := fmt.Sprintf("%q economy", meta.Name)
	body, err := c.fetch(ctx, query, "tonechart", toneTimespan)
	if err != nil {
		c.logger.WithError(err).WithField("country", code).Warn("GDELT tone fetch failed")
	} else {
		var data toneResponse
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.WithError(err).WithField("country", code).Warn("GDELT tone decode failed")
		} else if len(data.ToneChart) > 0 {
			n := len(data.ToneChart)
			if n > maxToneSamples {
				n = maxToneSamples
			}
			var sum float64
			for _, a := range data.ToneChart[:n] {
				sum += a.Tone
			}
			result.Tone = sum / float64(n)
		}
	}

	if err := c.cache.Set(cacheKey, result); err != nil {
		c.logger.WithError(err).WithField("key", cacheKey).Warn("Cache write failed")
	}

	return result
}

func (c *Client) fetch(ctx context.Context, query, mode, timespan string) ([]byte, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("mode", mode)
	params.Set("timespan", timespan)
	params.Set("format", "json")

	resp, err := c.httpClient.Get(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}

// fillVolumeReport computes totals and the recent-vs-early trend ratio
func fillVolumeReport(result *contracts.VolumeReport, volumes []float64) {
	if len(volumes) == 0 {
		return
	}

	var total float64
	for _, v := range volumes {
		total += v
	}
	result.Volume = total
	result.AvgVolume = total / float64(len(volumes))

	if len(volumes) >= trendSamples {
		var recent, older float64
		for _, v := range volumes[len(volumes)-trendSamples:] {
			recent += v
		}
		for _, v := range volumes[:trendSamples] {
			older += v
		}
		recent /= trendSamples
		older /= trendSamples

		denom := older
		if denom < 1 {
			denom = 1
		}
		result.Trend = (recent - older) / denom * 100
	}
}
