package secondary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

// AchievementCache caches a user's results for the achievements endpoint
type AchievementCache interface {
	// Get returns the cached results and whether they were found
	Get(ctx context.Context, userID string) ([]domain.Result, bool, error)

	Set(ctx context.Context, userID string, results []domain.Result) error

	// Invalidate drops the cached results of a user
	Invalidate(ctx context.Context, userID string) error
}
