package schedulerengine

import (
	"context"
	"sync"
	"time"

	"gitlab.com/snapscape.net/internal/config"
	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/core/services/lifecycle"
)

type SchedulerEngine struct {
	SchedulerCfg       *config.ScheduleSvcCfg
	lifecycleService   lifecycle.ILifecycleService
	achievementService achievement.IAchievementService
	logger             primary.Logger
	wg                 sync.WaitGroup
}

func NewSchedulerEngine(
	SchedulerCfg *config.ScheduleSvcCfg,
	lifecycleService lifecycle.ILifecycleService,
	achievementService achievement.IAchievementService,
	logger primary.Logger,
) *SchedulerEngine {
	return &SchedulerEngine{
		SchedulerCfg:       SchedulerCfg,
		lifecycleService:   lifecycleService,
		achievementService: achievementService,
		logger:             logger,
	}
}

// Start runs the status ticker and, when a resync interval is configured,
// the periodic full resync. Both stop when ctx is cancelled.
func (s *SchedulerEngine) Start(ctx context.Context) {
	s.run(ctx, s.SchedulerCfg.StatusUpdateInterval, s.UpdateStatuses)

	if s.SchedulerCfg.ResyncInterval > 0 {
		s.run(ctx, s.SchedulerCfg.ResyncInterval, s.ResyncAll)
	}
}

// Wait blocks until every ticker goroutine has returned
func (s *SchedulerEngine) Wait() {
	s.wg.Wait()
}

func (s *SchedulerEngine) run(ctx context.Context, interval time.Duration, task func(ctx context.Context)) {
	s.wg.Add(1)
	ticker := time.NewTicker(interval)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				task(ctx)
			}
		}
	}()
}

// UpdateStatuses applies due competition status transitions
func (s *SchedulerEngine) UpdateStatuses(ctx context.Context) {
	transitions, err := s.lifecycleService.UpdateStatuses(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to update competition statuses", "error", err)
		return
	}
	if len(transitions) > 0 {
		s.logger.Info("Competition statuses updated", "count", len(transitions))
	}
}

// ResyncAll rebuilds the results of every completed competition
func (s *SchedulerEngine) ResyncAll(ctx context.Context) {
	report, err := s.achievementService.SyncAll(ctx)
	if err != nil {
		s.logger.Error("Failed to resync competitions", "error", err)
		return
	}
	s.logger.Info("Resync finished", "runId", report.RunID, "units", len(report.Units), "failed", len(report.Failed()))
}
