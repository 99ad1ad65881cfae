package achievement

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/snapscape.net/internal/config"
	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/ports/secondary"
	"gitlab.com/snapscape.net/internal/core/services/ranking"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

var _ IAchievementService = (*AchievementService)(nil)

const notifyTimeout = 5 * time.Second

// AchievementService implements the IAchievementService interface
type AchievementService struct {
	submissionRepo  secondary.SubmissionRepository
	resultRepo      secondary.ResultRepository
	competitionRepo secondary.CompetitionRepository
	cache           secondary.AchievementCache
	notifier        secondary.MedalNotifier
	logger          primary.Logger
	syncCfg         *config.SyncConfig

	cacheInvalidator func(ctx context.Context, userID string) error
	notifications    sync.WaitGroup
}

// NewAchievementService creates a new achievement service. cache and
// notifier may be nil.
func NewAchievementService(
	submissionRepo secondary.SubmissionRepository,
	resultRepo secondary.ResultRepository,
	competitionRepo secondary.CompetitionRepository,
	cache secondary.AchievementCache,
	notifier secondary.MedalNotifier,
	logger primary.Logger,
	syncCfg *config.SyncConfig,
) *AchievementService {
	if syncCfg == nil {
		syncCfg = config.NewSyncConfig()
	}
	if syncCfg.Concurrency < 1 {
		clamped := *syncCfg
		clamped.Concurrency = 1
		syncCfg = &clamped
	}
	return &AchievementService{
		submissionRepo:  submissionRepo,
		resultRepo:      resultRepo,
		competitionRepo: competitionRepo,
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
		syncCfg:         syncCfg,
		// Default no-op invalidator
		cacheInvalidator: func(ctx context.Context, userID string) error { return nil },
	}
}

// SetCacheInvalidator sets the function called after a user's results change
func (s *AchievementService) SetCacheInvalidator(invalidator func(ctx context.Context, userID string) error) {
	if invalidator != nil {
		s.cacheInvalidator = invalidator
	}
}

// Wait blocks until every pending medal notification has been handed off
func (s *AchievementService) Wait() {
	s.notifications.Wait()
}

// SyncUser deletes every result of the user in the competition and
// re-inserts one result per medal position the ranking earns them.
// Only medals the user did not already hold are announced.
// A failed delete aborts the run; a failed insert only loses its own
// position.
func (s *AchievementService) SyncUser(
	ctx context.Context,
	competitionID, userID string,
	ranked []domain.RankedSubmission,
) ([]domain.Result, error) {
	if competitionID == "" || userID == "" {
		return nil, errs.InvalidInput("competition id and user id are required")
	}

	held := s.heldMedals(ctx, competitionID, userID)

	deleted, err := s.resultRepo.DeleteByCompetitionUser(ctx, competitionID, userID)
	if err != nil {
		s.logger.Error("Failed to clear results", "competitionId", competitionID, "userId", userID, "error", err)
		return nil, errs.Persistence("clear results", err)
	}
	s.logger.Debug("Cleared results", "competitionId", competitionID, "userId", userID, "deleted", deleted)

	userSubs := make([]domain.RankedSubmission, 0)
	for _, r := range ranking.ByUser(ranked)[userID] {
		if r.CompetitionID == competitionID {
			userSubs = append(userSubs, r)
		}
	}

	inserted := make([]domain.Result, 0)
	for _, sel := range selectMedals(userSubs) {
		result := domain.NewResult(sel.representative, sel.position)
		if err := s.resultRepo.Insert(ctx, result); err != nil {
			if errors.Is(err, errs.ErrInvariantViolation) {
				s.logger.Error("Duplicate result rejected by store",
					"competitionId", competitionID, "userId", userID, "position", sel.position, "error", err)
			} else {
				s.logger.Error("Failed to insert result",
					"competitionId", competitionID, "userId", userID, "position", sel.position, "error", err)
			}
			continue
		}
		inserted = append(inserted, *result)
	}

	if err := s.cacheInvalidator(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate achievements cache", "userId", userID, "error", err)
	}

	for _, result := range inserted {
		if held[medalKey{position: result.Position, photoID: result.PhotoID}] {
			continue
		}
		s.notifyMedal(result)
	}

	s.logger.Info("Results synchronized",
		"competitionId", competitionID, "userId", userID, "medals", len(inserted))

	return inserted, nil
}

// SyncCompetition ranks the approved submissions of a competition and
// rebuilds the results of every participant, including users whose
// results are stale because they no longer have approved submissions.
// Per-user failures are reported in the returned report.
func (s *AchievementService) SyncCompetition(ctx context.Context, competitionID string) (*domain.SyncReport, error) {
	report := domain.NewSyncReport()

	competition, err := s.competitionRepo.GetCompetition(ctx, competitionID)
	if err != nil {
		s.logger.Error("Failed to get competition", "competitionId", competitionID, "error", err)
		return nil, errs.Persistence("get competition", err)
	}
	if competition == nil {
		return nil, errs.NotFound("competition", competitionID)
	}

	ranked, err := s.rankCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.resultRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		s.logger.Error("Failed to list competition results", "competitionId", competitionID, "error", err)
		return nil, errs.Persistence("list competition results", err)
	}

	for _, userID := range participants(ranked, existing) {
		unit := domain.SyncUnit{CompetitionID: competitionID, UserID: userID}

		if err := ctx.Err(); err != nil {
			unit.Status = domain.UnitFailed
			unit.Error = err.Error()
			report.Units = append(report.Units, unit)
			continue
		}

		results, err := s.SyncUser(ctx, competitionID, userID, ranked)
		if err != nil {
			unit.Status = domain.UnitFailed
			unit.Error = err.Error()
		} else {
			unit.Status = domain.UnitSucceeded
			unit.Results = results
		}
		report.Units = append(report.Units, unit)
	}

	report.CompletedAt = time.Now()
	s.logger.Info("Competition synchronized",
		"competitionId", competitionID, "units", len(report.Units), "failed", len(report.Failed()))

	return report, nil
}

// SyncAll synchronizes every completed competition. A competition that
// cannot be processed becomes a single failed or skipped unit.
func (s *AchievementService) SyncAll(ctx context.Context) (*domain.SyncReport, error) {
	batch := domain.NewSyncReport()

	competitions, err := s.competitionRepo.ListByStatus(ctx, domain.CompetitionCompleted)
	if err != nil {
		s.logger.Error("Failed to list completed competitions", "error", err)
		return nil, errs.Persistence("list completed competitions", err)
	}

	s.logger.Info("Synchronizing completed competitions", "count", len(competitions))

	reports := make([]*domain.SyncReport, len(competitions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.syncCfg.Concurrency)
	for i, c := range competitions {
		i, c := i, c
		g.Go(func() error {
			report, err := s.SyncCompetition(gctx, c.ID)
			if err != nil {
				report = domain.NewSyncReport()
				unit := domain.SyncUnit{CompetitionID: c.ID, Status: domain.UnitFailed, Error: err.Error()}
				if errors.Is(err, errs.ErrNotFound) {
					unit.Status = domain.UnitSkipped
				}
				report.Units = append(report.Units, unit)
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range reports {
		batch.Merge(r)
	}
	batch.CompletedAt = time.Now()

	return batch, nil
}

// GetRanking returns the current ranking of a competition
func (s *AchievementService) GetRanking(ctx context.Context, competitionID string) ([]domain.RankedSubmission, error) {
	competition, err := s.competitionRepo.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, errs.Persistence("get competition", err)
	}
	if competition == nil {
		return nil, errs.NotFound("competition", competitionID)
	}
	return s.rankCompetition(ctx, competitionID)
}

// GetUserAchievements returns a user's results, read through the cache
func (s *AchievementService) GetUserAchievements(ctx context.Context, userID string) ([]domain.Result, error) {
	if userID == "" {
		return nil, errs.InvalidInput("user id is required")
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, userID)
		if err != nil {
			// Fall through to the store
			s.logger.Warn("Failed to read achievements cache", "userId", userID, "error", err)
		} else if found {
			return cached, nil
		}
	}

	results, err := s.resultRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list user results", "userId", userID, "error", err)
		return nil, errs.Persistence("list user results", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, results); err != nil {
			s.logger.Warn("Failed to fill achievements cache", "userId", userID, "error", err)
		}
	}

	return results, nil
}

func (s *AchievementService) rankCompetition(ctx context.Context, competitionID string) ([]domain.RankedSubmission, error) {
	subs, err := s.submissionRepo.FindApproved(ctx, competitionID)
	if err != nil {
		s.logger.Error("Failed to get approved submissions", "competitionId", competitionID, "error", err)
		return nil, errs.Persistence("get approved submissions", err)
	}
	return ranking.Rank(subs), nil
}

type medalKey struct {
	position domain.Position
	photoID  string
}

// heldMedals returns the medals the user holds in the competition before a
// rebuild. When they cannot be read every rebuilt medal counts as new.
func (s *AchievementService) heldMedals(ctx context.Context, competitionID, userID string) map[medalKey]bool {
	held := make(map[medalKey]bool)
	previous, err := s.resultRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load held medals", "competitionId", competitionID, "userId", userID, "error", err)
		return held
	}
	for _, r := range previous {
		if r.CompetitionID == competitionID {
			held[medalKey{position: r.Position, photoID: r.PhotoID}] = true
		}
	}
	return held
}

// notifyMedal hands a new medal to the notifier without blocking the
// caller. Failures are logged only.
func (s *AchievementService) notifyMedal(result domain.Result) {
	if s.notifier == nil {
		return
	}

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()

		// Create a new context since the request context may expire
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyMedal(ctx, result); err != nil {
			s.logger.Warn("Failed to notify medal",
				"userId", result.UserID, "competitionId", result.CompetitionID, "position", result.Position, "error", err)
		}
	}()
}

// participants lists users with ranked submissions in rank order, then
// users who only hold stale results.
func participants(ranked []domain.RankedSubmission, existing []domain.Result) []string {
	seen := make(map[string]bool)
	users := make([]string, 0)
	for _, r := range ranked {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			users = append(users, r.UserID)
		}
	}
	for _, r := range existing {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			users = append(users, r.UserID)
		}
	}
	return users
}
