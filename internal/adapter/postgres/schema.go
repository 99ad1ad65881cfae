// Package postgres holds the PostgreSQL schema shared by the repositories.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB, schema string) error {
	if schema == "" {
		schema = "public"
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(ddl, schema)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Table qualifies a table name with the schema
func Table(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}

const ddl = `
CREATE SCHEMA IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS %[1]s.competitions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'upcoming'
        CHECK (status IN ('upcoming', 'active', 'voting', 'completed')),
    start_date TIMESTAMPTZ NOT NULL,
    end_date TIMESTAMPTZ NOT NULL,
    voting_end_date TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_competitions_status ON %[1]s.competitions(status);

CREATE TABLE IF NOT EXISTS %[1]s.submissions (
    id TEXT PRIMARY KEY,
    competition_id TEXT NOT NULL REFERENCES %[1]s.competitions(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    average_rating DOUBLE PRECISION,
    rating_count INTEGER NOT NULL DEFAULT 0 CHECK (rating_count >= 0),
    status TEXT NOT NULL DEFAULT 'pending'
        CHECK (status IN ('pending', 'approved', 'rejected')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submissions_competition_status ON %[1]s.submissions(competition_id, status);

CREATE TABLE IF NOT EXISTS %[1]s.results (
    id UUID PRIMARY KEY,
    competition_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    photo_id TEXT NOT NULL,
    position SMALLINT NOT NULL CHECK (position BETWEEN 1 AND 3),
    final_score DOUBLE PRECISION NOT NULL,
    prize TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (competition_id, position, user_id)
);

CREATE INDEX IF NOT EXISTS idx_results_user ON %[1]s.results(user_id);
`
