package achievementcache

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

const achievementKeyPrefix = "achievements:"

var _ secondary.AchievementCache = (*AchievementCache)(nil)

// AchievementCache implements the AchievementCache interface with Redis
type AchievementCache struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewAchievementCache creates a new Redis achievements cache
func NewAchievementCache(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *AchievementCache {
	return &AchievementCache{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func key(userID string) string {
	return fmt.Sprintf("%s%s", achievementKeyPrefix, userID)
}

// Get retrieves the cached results of a user
func (c *AchievementCache) Get(ctx context.Context, userID string) ([]domain.Result, bool, error) {
	data, err := c.redisClient.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		c.logger.Error("Failed to get cached achievements", "userId", userID, "error", err)
		return nil, false, fmt.Errorf("failed to get cached achievements: %w", err)
	}

	var results []domain.Result
	if err := json.Unmarshal(data, &results); err != nil {
		c.logger.Error("Failed to unmarshal cached achievements", "userId", userID, "error", err)
		return nil, false, fmt.Errorf("failed to unmarshal cached achievements: %w", err)
	}

	return results, true, nil
}

// Set caches the results of a user with expiration
func (c *AchievementCache) Set(ctx context.Context, userID string, results []domain.Result) error {
	if results == nil {
		results = []domain.Result{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal achievements: %w", err)
	}

	if err := c.redisClient.Set(ctx, key(userID), data, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to cache achievements", "userId", userID, "error", err)
		return fmt.Errorf("failed to cache achievements: %w", err)
	}

	return nil
}

// Invalidate drops the cached results of a user
func (c *AchievementCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.redisClient.Del(ctx, key(userID)).Err(); err != nil {
		c.logger.Error("Failed to invalidate achievements", "userId", userID, "error", err)
		return fmt.Errorf("failed to invalidate achievements: %w", err)
	}
	return nil
}
