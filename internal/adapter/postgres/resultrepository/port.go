// Package resultrepository stores medal results in PostgreSQL
package resultrepository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/snapscape.net/internal/adapter/postgres"
	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/ports/secondary"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

var _ secondary.ResultRepository = (*ResultRepository)(nil)

const uniqueViolation = "23505"

// ResultRepository implements the ResultRepository interface with PostgreSQL
type ResultRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	table  string
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB, logger primary.Logger, schema string) *ResultRepository {
	return &ResultRepository{
		db:     db,
		logger: logger,
		table:  postgres.Table(schema, domain.GetResultTable().TableName()),
	}
}

// DeleteByCompetitionUser removes every result of a user in a competition
func (r *ResultRepository) DeleteByCompetitionUser(ctx context.Context, competitionID, userID string) (int64, error) {
	tbl := domain.GetResultTable()
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, r.table, tbl.CompetitionID, tbl.UserID)

	res, err := r.db.ExecContext(ctx, query, competitionID, userID)
	if err != nil {
		r.logger.Error("Failed to delete results", "competitionId", competitionID, "userId", userID, "error", err)
		return 0, fmt.Errorf("failed to delete results: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted results: %w", err)
	}

	return deleted, nil
}

// Insert stores a single result. A second result for the same
// competition, position and user is reported as an invariant violation.
func (r *ResultRepository) Insert(ctx context.Context, result *domain.Result) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, competition_id, user_id, photo_id, position, final_score, prize, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.table)

	_, err := r.db.ExecContext(
		ctx,
		query,
		result.ID,
		result.CompetitionID,
		result.UserID,
		result.PhotoID,
		int(result.Position),
		result.FinalScore,
		result.Prize,
		result.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.InvariantViolation(result.CompetitionID, result.UserID, int(result.Position), err)
		}
		r.logger.Error("Failed to insert result", "competitionId", result.CompetitionID, "userId", result.UserID, "error", err)
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// ListByUser retrieves every result of a user, newest competition first
func (r *ResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	query := fmt.Sprintf(`
		SELECT id, competition_id, user_id, photo_id, position, final_score, prize, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC, position ASC
	`, r.table)

	results := make([]domain.Result, 0)
	if err := r.db.SelectContext(ctx, &results, query, userID); err != nil {
		r.logger.Error("Failed to list user results", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list user results: %w", err)
	}

	return results, nil
}

// ListByCompetition retrieves every result of a competition by position
func (r *ResultRepository) ListByCompetition(ctx context.Context, competitionID string) ([]domain.Result, error) {
	query := fmt.Sprintf(`
		SELECT id, competition_id, user_id, photo_id, position, final_score, prize, created_at
		FROM %s
		WHERE competition_id = $1
		ORDER BY position ASC, final_score DESC
	`, r.table)

	results := make([]domain.Result, 0)
	if err := r.db.SelectContext(ctx, &results, query, competitionID); err != nil {
		r.logger.Error("Failed to list competition results", "competitionId", competitionID, "error", err)
		return nil, fmt.Errorf("failed to list competition results: %w", err)
	}

	return results, nil
}
