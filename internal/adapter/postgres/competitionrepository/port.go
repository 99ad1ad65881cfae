package competitionrepository

import (
	"context"
	"database/sql"
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

var _ secondary.CompetitionRepository = (*CompetitionRepository)(nil)

// CompetitionRepository implements the CompetitionRepository interface with PostgreSQL
type CompetitionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	table  string
}

func NewCompetitionRepository(db *sqlx.DB, logger primary.Logger, schema string) *CompetitionRepository {
	return &CompetitionRepository{
		db:     db,
		logger: logger,
		table:  postgres.Table(schema, domain.GetCompetitionTable().TableName()),
	}
}

// GetCompetition retrieves a competition by ID
func (r *CompetitionRepository) GetCompetition(ctx context.Context, competitionID string) (*domain.Competition, error) {
	query := fmt.Sprintf(`
		SELECT id, title, status, start_date, end_date, voting_end_date, updated_at
		FROM %s
		WHERE id = $1
	`, r.table)

	var competition domain.Competition
	if err := r.db.GetContext(ctx, &competition, query, competitionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get competition", "competitionId", competitionID, "error", err)
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}

	return &competition, nil
}

// ListByStatus retrieves competitions in any of the given statuses
func (r *CompetitionRepository) ListByStatus(ctx context.Context, statuses ...domain.CompetitionStatus) ([]*domain.Competition, error) {
	values := make([]string, 0, len(statuses))
	for _, st := range statuses {
		values = append(values, string(st))
	}

	query := fmt.Sprintf(`
		SELECT id, title, status, start_date, end_date, voting_end_date, updated_at
		FROM %s
		WHERE status = ANY($1)
		ORDER BY start_date ASC, id ASC
	`, r.table)

	competitions := make([]*domain.Competition, 0)
	if err := r.db.SelectContext(ctx, &competitions, query, pq.StringArray(values)); err != nil {
		r.logger.Error("Failed to list competitions", "statuses", values, "error", err)
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	return competitions, nil
}

// UpdateStatus moves a competition to a new status
func (r *CompetitionRepository) UpdateStatus(ctx context.Context, competitionID string, status domain.CompetitionStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2`, r.table)

	res, err := r.db.ExecContext(ctx, query, status, competitionID)
	if err != nil {
		r.logger.Error("Failed to update competition status", "competitionId", competitionID, "error", err)
		return fmt.Errorf("failed to update competition status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update competition status: %w", err)
	}
	if affected == 0 {
		return errs.NotFound("competition", competitionID)
	}

	return nil
}
