package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/engine"
	"github.com/causentia/backend/internal/indicator"
	"github.com/causentia/backend/pkg/logger"
)

// SimulationHandler serves the scenario and Monte Carlo endpoints
type SimulationHandler struct {
	engine *engine.Engine
	logger *logger.Logger
}

// NewSimulationHandler creates a simulation handler
func NewSimulationHandler(eng *engine.Engine, log *logger.Logger) *SimulationHandler {
	return &SimulationHandler{engine: eng, logger: log}
}

// RunScenario re-scores every country under shock deltas
// POST /api/scenario
func (h *SimulationHandler) RunScenario(w http.ResponseWriter, r *http.Request) {
	var req contracts.ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for name := range req.Shocks {
		if !indicator.Known(name) {
			respondError(w, http.StatusBadRequest, "Unknown indicator: "+name)
			return
		}
	}

	report, err := h.engine.RunScenario(r.Context(), req.Shocks, req.CountryOverrides)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RunMonteCarlo simulates randomized trajectories for one country
// GET /api/montecarlo/{code}?scenarios=n
func (h *SimulationHandler) RunMonteCarlo(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	n := 0
	if raw := r.URL.Query().Get("scenarios"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "scenarios must be an integer")
			return
		}
		n = parsed
	}

	report, err := h.engine.RunMonteCarlo(r.Context(), code, n)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
