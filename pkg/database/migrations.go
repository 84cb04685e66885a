package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// The 'simple' configuration is deliberate: requests and transcripts are
// Korean, and English stemming would mangle them.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for scheduling intent full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_a2a_sessions_intent_gin
		ON a2a_sessions USING gin(to_tsvector('simple', intent))`)
	if err != nil {
		return fmt.Errorf("failed to create intent GIN index: %w", err)
	}

	// GIN index for transcript prose full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_negotiation_messages_prose_gin
		ON negotiation_messages USING gin(to_tsvector('simple', COALESCE(prose, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create prose GIN index: %w", err)
	}

	// Expression index for thread listing: sessions are grouped by the
	// thread_id kept inside place_pref
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_a2a_sessions_thread_id
		ON a2a_sessions ((place_pref->>'thread_id'))`)
	if err != nil {
		return fmt.Errorf("failed to create thread_id expression index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 0001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one calendar event per (owner, negotiation session). Retried
	// finalizations hit this constraint instead of double-booking.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS calendarevent_owner_id_session_id
		ON calendar_events (owner_id, session_id)
		WHERE session_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create owner/session unique index: %w", err)
	}

	return nil
}
