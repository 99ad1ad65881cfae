package lifecycle

import (
	"context"
	"time"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/ports/secondary"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

var _ ILifecycleService = (*LifecycleService)(nil)

// CompetitionSyncer rebuilds the results of a competition
type CompetitionSyncer interface {
	SyncCompetition(ctx context.Context, competitionID string) (*domain.SyncReport, error)
}

// LifecycleService implements the ILifecycleService interface
type LifecycleService struct {
	competitionRepo secondary.CompetitionRepository
	syncer          CompetitionSyncer
	logger          primary.Logger
}

// NewLifecycleService creates a new lifecycle service. syncer may be nil,
// in which case completed competitions are not synchronized automatically.
func NewLifecycleService(
	competitionRepo secondary.CompetitionRepository,
	syncer CompetitionSyncer,
	logger primary.Logger,
) *LifecycleService {
	return &LifecycleService{
		competitionRepo: competitionRepo,
		syncer:          syncer,
		logger:          logger,
	}
}

// NextStatus returns the status a competition should have at now.
// Transitions only move forward and may skip states when several dates
// have passed.
func NextStatus(c domain.Competition, now time.Time) domain.CompetitionStatus {
	status := c.Status
	if status == domain.CompetitionUpcoming && !now.Before(c.StartDate) {
		status = domain.CompetitionActive
	}
	if status == domain.CompetitionActive && !now.Before(c.EndDate) {
		status = domain.CompetitionVoting
	}
	if status == domain.CompetitionVoting && !now.Before(c.VotingEndDate) {
		status = domain.CompetitionCompleted
	}
	return status
}

// UpdateStatuses applies every due transition and synchronizes the
// results of competitions that just completed. A failure on one
// competition does not stop the others.
func (s *LifecycleService) UpdateStatuses(ctx context.Context, now time.Time) ([]domain.StatusTransition, error) {
	competitions, err := s.competitionRepo.ListByStatus(ctx,
		domain.CompetitionUpcoming, domain.CompetitionActive, domain.CompetitionVoting)
	if err != nil {
		s.logger.Error("Failed to list open competitions", "error", err)
		return nil, errs.Persistence("list open competitions", err)
	}

	transitions := make([]domain.StatusTransition, 0)
	for _, c := range competitions {
		next := NextStatus(*c, now)
		if next == c.Status {
			continue
		}

		if err := s.competitionRepo.UpdateStatus(ctx, c.ID, next); err != nil {
			s.logger.Error("Failed to update competition status",
				"competitionId", c.ID, "from", c.Status, "to", next, "error", err)
			continue
		}

		s.logger.Info("Competition status changed", "competitionId", c.ID, "from", c.Status, "to", next)
		transitions = append(transitions, domain.StatusTransition{CompetitionID: c.ID, From: c.Status, To: next})

		if next == domain.CompetitionCompleted && s.syncer != nil {
			report, err := s.syncer.SyncCompetition(ctx, c.ID)
			if err != nil {
				s.logger.Error("Failed to synchronize completed competition", "competitionId", c.ID, "error", err)
				continue
			}
			s.logger.Info("Completed competition synchronized",
				"competitionId", c.ID, "units", len(report.Units), "failed", len(report.Failed()))
		}
	}

	return transitions, nil
}
