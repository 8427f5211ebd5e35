package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/causentia/backend/internal/api/handlers"
	"github.com/causentia/backend/pkg/logger"
)

// NewRouter configures every route and middleware of the API surface
func NewRouter(
	dashboard *handlers.DashboardHandler,
	simulation *handlers.SimulationHandler,
	subscribe *handlers.SubscribeHandler,
	hub *Hub,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Dashboard endpoints
	api.HandleFunc("/data", dashboard.GetDashboard).Methods("GET")
	api.HandleFunc("/country/{code}", dashboard.GetCountry).Methods("GET")
	api.HandleFunc("/market", dashboard.GetMarket).Methods("GET")
	api.HandleFunc("/news/{code}", dashboard.GetNews).Methods("GET")
	api.HandleFunc("/cache/clear", dashboard.ClearCache).Methods("POST")

	// Simulation endpoints
	api.HandleFunc("/scenario", simulation.RunScenario).Methods("POST")
	api.HandleFunc("/montecarlo/{code}", simulation.RunMonteCarlo).Methods("GET")

	// Subscriptions
	api.HandleFunc("/subscribe", subscribe.Subscribe).Methods("POST")

	// Snapshot stream
	if hub != nil {
		api.HandleFunc("/stream", hub.ServeWS)
	}

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	// Wraps the whole router so preflight requests short-circuit before
	// method matching.
	return corsMiddleware(r)
}

// healthCheckHandler reports liveness
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "causentia-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from handler panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// corsMiddleware allows browser dashboards from any origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
