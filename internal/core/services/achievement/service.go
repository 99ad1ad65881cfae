package achievement

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

// IAchievementService rebuilds medal results from competition rankings
type IAchievementService interface {
	// SyncUser rebuilds the results of one user in one competition from a ranking
	SyncUser(ctx context.Context, competitionID, userID string, ranked []domain.RankedSubmission) ([]domain.Result, error)

	// SyncCompetition ranks a competition and rebuilds the results of every participant
	SyncCompetition(ctx context.Context, competitionID string) (*domain.SyncReport, error)

	// SyncAll rebuilds the results of every completed competition
	SyncAll(ctx context.Context) (*domain.SyncReport, error)

	// GetRanking returns the current ranking of a competition
	GetRanking(ctx context.Context, competitionID string) ([]domain.RankedSubmission, error)

	// GetUserAchievements returns a user's results, served from cache when possible
	GetUserAchievements(ctx context.Context, userID string) ([]domain.Result, error)

	// SetCacheInvalidator sets the function called after a user's results change
	SetCacheInvalidator(invalidator func(ctx context.Context, userID string) error)
}
