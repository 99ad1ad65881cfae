package secondary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

// ResultRepository stores medal results
type ResultRepository interface {
	// DeleteByCompetitionUser removes every result of a user in a competition
	DeleteByCompetitionUser(ctx context.Context, competitionID, userID string) (int64, error)

	// Insert stores a single result
	Insert(ctx context.Context, result *domain.Result) error

	// ListByUser retrieves every result of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]domain.Result, error)

	// ListByCompetition retrieves every result of a competition
	ListByCompetition(ctx context.Context, competitionID string) ([]domain.Result, error)
}
