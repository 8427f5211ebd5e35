package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/causentia/backend/internal/engine"
	"github.com/causentia/backend/pkg/logger"
)

// DashboardHandler serves snapshot, market and news endpoints
type DashboardHandler struct {
	engine *engine.Engine
	logger *logger.Logger
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(eng *engine.Engine, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{engine: eng, logger: log}
}

// GetDashboard returns the global snapshot, building one if the cache is cold
// GET /api/data
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.GlobalSnapshot(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to build snapshot")
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// GetCountry returns one country's snapshot entry plus annual history
// GET /api/country/{code}
func (h *DashboardHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	detail, err := h.engine.Country(r.Context(), code)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// GetMarket returns the latest reading of every market proxy series
// GET /api/market
func (h *DashboardHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.MarketOverview(r.Context()))
}

// GetNews returns the news sentiment signals for one country
// GET /api/news/{code}
func (h *DashboardHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	report, err := h.engine.NewsSentiment(r.Context(), code)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// ClearCache drops every cached entry so the next read fetches fresh data
// POST /api/cache/clear
func (h *DashboardHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ClearCache(); err != nil {
		h.logger.WithError(err).Error("Failed to clear cache")
		respondError(w, http.StatusInternalServerError, "Failed to clear cache")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}
