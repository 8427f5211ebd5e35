// Package jobs holds the scheduled job implementations.
package jobs

import (
	"context"
	"fmt"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/internal/engine"
	"github.com/causentia/backend/pkg/logger"
)

// Broadcaster pushes a fresh snapshot to connected stream clients
type Broadcaster interface {
	BroadcastSnapshot(snap *contracts.GlobalSnapshot)
}

// SnapshotRefresh rebuilds the dashboard snapshot on a schedule so the cache
// never goes cold, and pushes the result to stream subscribers.
type SnapshotRefresh struct {
	engine   *engine.Engine
	hub      Broadcaster
	schedule string
	logger   *logger.Logger
}

// NewSnapshotRefresh creates the refresh job. hub may be nil when no stream
// surface is running.
func NewSnapshotRefresh(eng *engine.Engine, hub Broadcaster, schedule string, log *logger.Logger) *SnapshotRefresh {
	return &SnapshotRefresh{
		engine:   eng,
		hub:      hub,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *SnapshotRefresh) Name() string {
	return "snapshot_refresh"
}

// Schedule returns the cron expression
func (j *SnapshotRefresh) Schedule() string {
	return j.schedule
}

// Run rebuilds the snapshot and broadcasts it
func (j *SnapshotRefresh) Run(ctx context.Context) error {
	snap, err := j.engine.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	if j.hub != nil {
		j.hub.BroadcastSnapshot(snap)
	}

	return nil
}
