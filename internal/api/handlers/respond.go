// Package handlers implements the HTTP handlers of the API surface.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/causentia/backend/internal/contracts"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondEngineError maps the engine error taxonomy onto HTTP statuses
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contracts.ErrUnknownCountry):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, contracts.ErrSnapshotNotReady):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, contracts.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
