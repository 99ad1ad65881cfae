package resultrepository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/snapscape.net/internal/adapter/logging"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/static/errs"
)

func newRepo(t *testing.T) (*ResultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewResultRepository(sqlx.NewDb(db, "postgres"), logging.NewNopLogger(), "public"), mock
}

func sampleResult() *domain.Result {
	return &domain.Result{
		ID:            uuid.New(),
		CompetitionID: "comp-1",
		UserID:        "u1",
		PhotoID:       "p1",
		Position:      domain.PositionSilver,
		FinalScore:    4.5,
		Prize:         "Silver Medal",
		CreatedAt:     time.Now(),
	}
}

func TestDeleteByCompetitionUser(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.results WHERE competition_id = $1 AND user_id = $2`)).
		WithArgs("comp-1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteByCompetitionUser(context.Background(), "comp-1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByCompetitionUserError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM public.results").WillReturnError(errors.New("conn closed"))

	_, err := repo.DeleteByCompetitionUser(context.Background(), "comp-1", "u1")
	assert.ErrorContains(t, err, "conn closed")
}

func TestInsert(t *testing.T) {
	repo, mock := newRepo(t)
	result := sampleResult()

	mock.ExpectExec("INSERT INTO public.results").
		WithArgs(result.ID, "comp-1", "u1", "p1", 2, 4.5, "Silver Medal", result.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), result))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertUniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("INSERT INTO public.results").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Insert(context.Background(), sampleResult())
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestInsertOtherError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("INSERT INTO public.results").WillReturnError(errors.New("timeout"))

	err := repo.Insert(context.Background(), sampleResult())
	require.Error(t, err)
	assert.False(t, errors.Is(err, errs.ErrInvariantViolation))
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "competition_id", "user_id", "photo_id", "position", "final_score", "prize", "created_at"}).
		AddRow(id.String(), "comp-1", "u1", "p1", 1, 4.9, "Gold Medal", now)
	mock.ExpectQuery("SELECT (.+) FROM public.results").WithArgs("u1").WillReturnRows(rows)

	results, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
	assert.Equal(t, domain.PositionGold, results[0].Position)
	assert.Equal(t, "Gold Medal", results[0].Prize)
	assert.InDelta(t, 4.9, results[0].FinalScore, 1e-9)
}

func TestListByCompetitionEmpty(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"id", "competition_id", "user_id", "photo_id", "position", "final_score", "prize", "created_at"})
	mock.ExpectQuery("SELECT (.+) FROM public.results").WithArgs("comp-9").WillReturnRows(rows)

	results, err := repo.ListByCompetition(context.Background(), "comp-9")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
