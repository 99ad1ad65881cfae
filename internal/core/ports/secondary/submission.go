package secondary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

type SubmissionRepository interface {
	// FindApproved retrieves every approved submission of a competition
	FindApproved(ctx context.Context, competitionID string) ([]domain.Submission, error)
}
