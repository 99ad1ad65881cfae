package secondary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

// MedalNotifier announces newly awarded medals
type MedalNotifier interface {
	NotifyMedal(ctx context.Context, result domain.Result) error
}
