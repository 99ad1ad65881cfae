package secondary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

type CompetitionRepository interface {
	// GetCompetition retrieves a competition by ID, nil when missing
	GetCompetition(ctx context.Context, competitionID string) (*domain.Competition, error)

	// ListByStatus retrieves competitions in any of the given statuses
	ListByStatus(ctx context.Context, statuses ...domain.CompetitionStatus) ([]*domain.Competition, error)

	// UpdateStatus moves a competition to a new status
	UpdateStatus(ctx context.Context, competitionID string, status domain.CompetitionStatus) error
}
