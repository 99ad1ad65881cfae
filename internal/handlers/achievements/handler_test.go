package achievements

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/snapscape.net/internal/adapter/crypto"
	"gitlab.com/snapscape.net/internal/adapter/logging"
	"gitlab.com/snapscape.net/internal/config"
	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/handlers"
	"gitlab.com/snapscape.net/internal/static/errs"
)

type stubAchievementService struct {
	achievement.IAchievementService

	results    []domain.Result
	report     *domain.SyncReport
	ranked     []domain.RankedSubmission
	err        error
	syncedUser string
	syncedWith []domain.RankedSubmission
}

func (s *stubAchievementService) GetUserAchievements(ctx context.Context, userID string) ([]domain.Result, error) {
	return s.results, s.err
}

func (s *stubAchievementService) SyncCompetition(ctx context.Context, competitionID string) (*domain.SyncReport, error) {
	return s.report, s.err
}

func (s *stubAchievementService) SyncAll(ctx context.Context) (*domain.SyncReport, error) {
	return s.report, s.err
}

func (s *stubAchievementService) GetRanking(ctx context.Context, competitionID string) ([]domain.RankedSubmission, error) {
	return s.ranked, s.err
}

func (s *stubAchievementService) SyncUser(ctx context.Context, competitionID, userID string, ranked []domain.RankedSubmission) ([]domain.Result, error) {
	s.syncedUser = userID
	s.syncedWith = ranked
	return s.results, s.err
}

type fixture struct {
	router     *mux.Router
	jwtService primary.JWTService
}

func newFixture(svc *stubAchievementService) *fixture {
	jwtService := crypto.NewJWTService(&config.JwtConfig{Secret: "s"})
	mw := handlers.New(jwtService, "", logging.NewNopLogger())
	r := mux.NewRouter()
	NewAchievementHandler(svc, logging.NewNopLogger()).RegisterRoutes(r, mw)
	return &fixture{router: r, jwtService: jwtService}
}

func (f *fixture) do(t *testing.T, method, path, role string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if role != "" {
		tok, err := f.jwtService.GenerateTokenHMAC(context.Background(), "HS256", map[string]interface{}{"sub": "admin-1", "role": role})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestGetUserAchievements(t *testing.T) {
	svc := &stubAchievementService{results: []domain.Result{{
		CompetitionID: "c1", UserID: "u1", PhotoID: "p1", Position: domain.PositionSilver, Prize: "Silver Medal",
	}}}
	f := newFixture(svc)

	rec := f.do(t, http.MethodGet, "/api/users/u1/achievements", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AchievementsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, domain.PositionSilver, resp.Results[0].Position)
}

func TestGetUserAchievementsInvalid(t *testing.T) {
	f := newFixture(&stubAchievementService{err: errs.InvalidInput("user id is required")})
	rec := f.do(t, http.MethodGet, "/api/users/u1/achievements", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	f := newFixture(&stubAchievementService{report: domain.NewSyncReport()})

	paths := []string{
		"/api/admin/sync",
		"/api/admin/competitions/c1/sync",
		"/api/admin/competitions/c1/users/u1/sync",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodPost, p, "").Code)
			assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodPost, p, "user").Code)
		})
	}
}

func TestSyncCompetition(t *testing.T) {
	report := domain.NewSyncReport()
	report.Units = append(report.Units, domain.SyncUnit{CompetitionID: "c1", UserID: "u1", Status: domain.UnitSucceeded})
	f := newFixture(&stubAchievementService{report: report})

	rec := f.do(t, http.MethodPost, "/api/admin/competitions/c1/sync", "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.SyncReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, report.RunID, got.RunID)
	require.Len(t, got.Units, 1)
	assert.Equal(t, domain.UnitSucceeded, got.Units[0].Status)
}

func TestSyncCompetitionNotFound(t *testing.T) {
	f := newFixture(&stubAchievementService{err: errs.NotFound("competition", "c9")})
	rec := f.do(t, http.MethodPost, "/api/admin/competitions/c9/sync", "admin")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncUserUsesCurrentRanking(t *testing.T) {
	ranked := []domain.RankedSubmission{{Submission: domain.Submission{ID: "s1", UserID: "u1"}, Rank: 1}}
	svc := &stubAchievementService{ranked: ranked, results: []domain.Result{}}
	f := newFixture(svc)

	rec := f.do(t, http.MethodPost, "/api/admin/competitions/c1/users/u1/sync", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.syncedUser)
	assert.Equal(t, ranked, svc.syncedWith)
}

func TestSyncAll(t *testing.T) {
	f := newFixture(&stubAchievementService{report: domain.NewSyncReport()})
	rec := f.do(t, http.MethodPost, "/api/admin/sync", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}
