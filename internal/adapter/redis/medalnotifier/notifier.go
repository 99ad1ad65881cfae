package medalnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/ports/secondary"
	"gitlab.com/snapscape.net/internal/domain"
)

// QueueKey is the Redis list medal messages are pushed onto. The
// notification worker pops from the other end.
const QueueKey = "notifications:medals"

var _ secondary.MedalNotifier = (*MedalNotifier)(nil)

// MedalMessage is the payload queued for each new medal
type MedalMessage struct {
	UserID        string          `json:"userId"`
	CompetitionID string          `json:"competitionId"`
	PhotoID       string          `json:"photoId"`
	Position      domain.Position `json:"position"`
	Prize         string          `json:"prize"`
	Timestamp     time.Time       `json:"timestamp"`
}

// MedalNotifier queues medal announcements in Redis
type MedalNotifier struct {
	redisClient *redis.Client
	logger      primary.Logger
}

func NewMedalNotifier(redisClient *redis.Client, logger primary.Logger) *MedalNotifier {
	return &MedalNotifier{
		redisClient: redisClient,
		logger:      logger,
	}
}

// NotifyMedal queues an announcement for a newly awarded medal
func (n *MedalNotifier) NotifyMedal(ctx context.Context, result domain.Result) error {
	msg := MedalMessage{
		UserID:        result.UserID,
		CompetitionID: result.CompetitionID,
		PhotoID:       result.PhotoID,
		Position:      result.Position,
		Prize:         result.Prize,
		Timestamp:     time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal medal message: %w", err)
	}

	if err := n.redisClient.LPush(ctx, QueueKey, payload).Err(); err != nil {
		n.logger.Error("Failed to queue medal notification", "userId", result.UserID, "error", err)
		return fmt.Errorf("failed to queue medal notification: %w", err)
	}

	n.logger.Debug("Medal notification queued",
		"userId", result.UserID, "competitionId", result.CompetitionID, "position", result.Position)
	return nil
}
