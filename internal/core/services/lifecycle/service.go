package lifecycle

import (
	"context"
	"time"

	"gitlab.com/snapscape.net/internal/domain"
)

// ILifecycleService moves competitions through upcoming, active, voting and completed
type ILifecycleService interface {
	// UpdateStatuses applies every transition that is due at now
	UpdateStatuses(ctx context.Context, now time.Time) ([]domain.StatusTransition, error)
}
