// Package subscribers persists alert subscriptions in Postgres.
// The feature is optional: without a configured database the API keeps
// serving and only the subscribe endpoint reports itself disabled.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/causentia/backend/internal/contracts"
	"github.com/causentia/backend/pkg/database"
	"github.com/causentia/backend/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS subscriptions (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT        NOT NULL,
	countries     TEXT        NOT NULL DEFAULT 'all',
	triggers      JSONB       NOT NULL DEFAULT '{}',
	frequency     TEXT        NOT NULL DEFAULT 'daily',
	subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (email)
)`

// Repository stores subscriptions
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// New creates a repository over an open pool
func New(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{db: db, logger: log}
}

// EnsureSchema creates the subscriptions table when missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure subscriptions schema: %w", err)
	}
	return nil
}

// Create inserts a subscription, replacing any prior one for the same email
func (r *Repository) Create(ctx context.Context, sub contracts.Subscription) error {
	triggers, err := json.Marshal(sub.Triggers)
	if err != nil {
		return fmt.Errorf("encode triggers: %w", err)
	}

	query := `
		INSERT INTO subscriptions (email, countries, triggers, frequency, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			countries     = EXCLUDED.countries,
			triggers      = EXCLUDED.triggers,
			frequency     = EXCLUDED.frequency,
			subscribed_at = EXCLUDED.subscribed_at`

	_, err = r.db.Pool.Exec(ctx, query,
		sub.Email, sub.Countries, triggers, sub.Frequency, sub.SubscribedAt)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}

	r.logger.WithField("email", sub.Email).Info("Subscription stored")
	return nil
}
