package achievement

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

type fakeSubmissionRepo struct {
	subs   map[string][]domain.Submission
	errFor map[string]error
}

func (f *fakeSubmissionRepo) FindApproved(ctx context.Context, competitionID string) ([]domain.Submission, error) {
	if err := f.errFor[competitionID]; err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0)
	for _, s := range f.subs[competitionID] {
		if s.Status == domain.SubmissionApproved {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	mu          sync.Mutex
	results     []domain.Result
	deleteErr   error
	insertErrAt map[domain.Position]error
	listErr     error
	deletes     int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{insertErrAt: make(map[domain.Position]error)}
}

func (f *fakeResultRepo) DeleteByCompetitionUser(ctx context.Context, competitionID, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deletes++
	kept := f.results[:0]
	var deleted int64
	for _, r := range f.results {
		if r.CompetitionID == competitionID && r.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.results = kept
	return deleted, nil
}

func (f *fakeResultRepo) Insert(ctx context.Context, result *domain.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.insertErrAt[result.Position]; err != nil {
		return err
	}
	for _, r := range f.results {
		if r.CompetitionID == result.CompetitionID && r.UserID == result.UserID && r.Position == result.Position {
			return errs.InvariantViolation(r.CompetitionID, r.UserID, int(r.Position), errors.New("unique violation"))
		}
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultRepo) ListByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Result, 0)
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeResultRepo) ListByCompetition(ctx context.Context, competitionID string) ([]domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Result, 0)
	for _, r := range f.results {
		if r.CompetitionID == competitionID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCompetitionRepo struct {
	competitions map[string]*domain.Competition
	listErr      error
}

func (f *fakeCompetitionRepo) GetCompetition(ctx context.Context, competitionID string) (*domain.Competition, error) {
	return f.competitions[competitionID], nil
}

func (f *fakeCompetitionRepo) ListByStatus(ctx context.Context, statuses ...domain.CompetitionStatus) ([]*domain.Competition, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Competition, 0)
	for _, c := range f.competitions {
		for _, st := range statuses {
			if c.Status == st {
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCompetitionRepo) UpdateStatus(ctx context.Context, competitionID string, status domain.CompetitionStatus) error {
	f.competitions[competitionID].Status = status
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]domain.Result
	invalidated []string
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]domain.Result)}
}

func (f *fakeCache) Get(ctx context.Context, userID string) ([]domain.Result, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	r, ok := f.entries[userID]
	return r, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, userID string, results []domain.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[userID] = results
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, userID)
	f.invalidated = append(f.invalidated, userID)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	notified []domain.Result
	err      error
}

func (f *fakeNotifier) NotifyMedal(ctx context.Context, result domain.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.notified = append(f.notified, result)
	return nil
}
