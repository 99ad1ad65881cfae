package competitionrepository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/snapscape.net/internal/adapter/logging"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

var columns = []string{"id", "title", "status", "start_date", "end_date", "voting_end_date", "updated_at"}

func newRepo(t *testing.T) (*CompetitionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCompetitionRepository(sqlx.NewDb(db, "postgres"), logging.NewNopLogger(), "public"), mock
}

func TestGetCompetition(t *testing.T) {
	repo, mock := newRepo(t)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM public.competitions WHERE id = \\$1").
		WithArgs("comp-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("comp-1", "Golden Hour", "voting", start, start.AddDate(0, 0, 7), start.AddDate(0, 0, 10), start))

	c, err := repo.GetCompetition(context.Background(), "comp-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.CompetitionVoting, c.Status)
	assert.Equal(t, start.AddDate(0, 0, 10), c.VotingEndDate)
}

func TestGetCompetitionMissing(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("SELECT").WithArgs("nope").WillReturnRows(sqlmock.NewRows(columns))

	c, err := repo.GetCompetition(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestListByStatus(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM public.competitions WHERE status = ANY\\(\\$1\\)").
		WithArgs("{\"upcoming\",\"active\"}").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a", "A", "upcoming", now, now, now, now).
			AddRow("b", "B", "active", now, now, now, now))

	list, err := repo.ListByStatus(context.Background(), domain.CompetitionUpcoming, domain.CompetitionActive)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE public.competitions SET status = \\$1").
		WithArgs("completed", "comp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), "comp-1", domain.CompetitionCompleted))

	mock.ExpectExec("UPDATE public.competitions").
		WithArgs("completed", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateStatus(context.Background(), "gone", domain.CompetitionCompleted)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
