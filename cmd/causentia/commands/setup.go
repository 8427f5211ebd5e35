package commands

import (
	"fmt"

	"github.com/causentia/backend/internal/cache"
	"github.com/causentia/backend/internal/engine"
	"github.com/causentia/backend/internal/external/fred"
	"github.com/causentia/backend/internal/external/gdelt"
	"github.com/causentia/backend/internal/external/worldbank"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/httputil"
	"github.com/causentia/backend/pkg/logger"
)

// buildEngine wires the cache, HTTP clients and source adapters behind an
// engine. Shared by every command that touches the pipeline.
func buildEngine(cfg *config.Config, log *logger.Logger) (*engine.Engine, error) {
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, log)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	wbClient := worldbank.New(cfg.WorldBank.BaseURL,
		httputil.New(log, cfg.WorldBank.Timeout), store, log)
	fredClient := fred.New(cfg.FRED.BaseURL,
		httputil.New(log, cfg.FRED.Timeout), store, log)
	gdeltClient := gdelt.New(cfg.GDELT.BaseURL,
		httputil.New(log, cfg.GDELT.Timeout).WithRateLimit(cfg.GDELT.RateRPS, 1), store, log)

	return engine.New(cfg, log, store, wbClient, fredClient, gdeltClient), nil
}
