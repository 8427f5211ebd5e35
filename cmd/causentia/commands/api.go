package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/causentia/backend/internal/api"
	"github.com/causentia/backend/internal/api/handlers"
	"github.com/causentia/backend/internal/scheduler"
	"github.com/causentia/backend/internal/scheduler/jobs"
	"github.com/causentia/backend/internal/subscribers"
	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/database"
	"github.com/causentia/backend/pkg/logger"
)

// apiCmd starts the HTTP server
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server with the scheduled snapshot refresh.

Endpoints:
  GET  /health                 - Health check
  GET  /api/data               - Global snapshot
  GET  /api/country/{code}     - Country detail with history
  GET  /api/market             - Market overview
  GET  /api/news/{code}        - News sentiment
  GET  /api/montecarlo/{code}  - Monte Carlo simulation
  POST /api/scenario           - What-if scenario
  POST /api/subscribe          - Alert subscription
  POST /api/cache/clear        - Drop cached data
  GET  /api/stream             - Snapshot websocket stream

Example:
  go run ./cmd/causentia api
  go run ./cmd/causentia api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	// Subscriptions need a database; everything else runs without one
	var subscriberRepo *subscribers.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		subscriberRepo = subscribers.New(db, log)
		if err := subscriberRepo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		log.Info("Connected to database")
	} else {
		log.Warn("DATABASE_URL not set, subscriptions disabled")
	}

	hub := api.NewHub(log)

	router := api.NewRouter(
		handlers.NewDashboardHandler(eng, log),
		handlers.NewSimulationHandler(eng, log),
		handlers.NewSubscribeHandler(subscriberRepo, log),
		hub,
		log,
	)

	sched := scheduler.New(log)
	refreshJob := jobs.NewSnapshotRefresh(eng, hub, cfg.RefreshSchedule, log)
	if err := sched.AddJob(refreshJob); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	server := api.New(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started")
	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
