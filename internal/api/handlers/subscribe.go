package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/subscribers"
	"github.com/causentia/backend/pkg/logger"
)

// SubscribeHandler serves alert-subscription requests. The repository is nil
// when no database is configured; the endpoint then reports itself disabled.
type SubscribeHandler struct {
	repo   *subscribers.Repository
	logger *logger.Logger
}

// NewSubscribeHandler creates a subscribe handler
func NewSubscribeHandler(repo *subscribers.Repository, log *logger.Logger) *SubscribeHandler {
	return &SubscribeHandler{repo: repo, logger: log}
}

// Subscribe stores an alert subscription
// POST /api/subscribe
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Subscriptions are disabled")
		return
	}

	var sub contracts.Subscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub.Email = strings.TrimSpace(sub.Email)
	if sub.Email == "" || !strings.Contains(sub.Email, "@") {
		respondError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if sub.Countries == "" {
		sub.Countries = "all"
	}
	if sub.Frequency == "" {
		sub.Frequency = "daily"
	}
	sub.SubscribedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), sub); err != nil {
		h.logger.WithError(err).Error("Failed to store subscription")
		respondError(w, http.StatusInternalServerError, "Failed to store subscription")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "subscribed"})
}
