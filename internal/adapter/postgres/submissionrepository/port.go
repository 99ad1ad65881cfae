package submissionrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/snapscape.net/internal/adapter/postgres"
	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/ports/secondary"
	"gitlab.com/snapscape.net/internal/domain"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository reads photo submissions from PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	table  string
}

func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		table:  postgres.Table(schema, domain.GetSubmissionTable().TableName()),
	}
}

// FindApproved retrieves every approved submission of a competition
func (r *SubmissionRepository) FindApproved(ctx context.Context, competitionID string) ([]domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		tbl.ID, tbl.CompetitionID, tbl.UserID, tbl.Title,
		tbl.AverageRating, tbl.RatingCount, tbl.Status, tbl.CreatedAt,
		r.table, tbl.CompetitionID, tbl.Status,
	)

	subs := make([]domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &subs, query, competitionID, domain.SubmissionApproved); err != nil {
		r.logger.Error("Failed to get approved submissions", "competitionId", competitionID, "error", err)
		return nil, fmt.Errorf("failed to get approved submissions: %w", err)
	}

	return subs, nil
}
