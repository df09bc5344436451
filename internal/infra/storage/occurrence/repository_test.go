package occurrence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

func newRepoMock(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func occurrenceRow(id int64, start string, status domain.OccurrenceStatus, seriesID interface{}) []driver.Value {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, int64(7), int64(42), nil, nil, seriesID,
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), start + ":00", 60,
		"padel", 1, string(status), "20000.00", "key", nil, nil, nil, now, now,
	}
}

func TestRepositoryCreateReturnsInsertedFlag(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	series := uuid.New()
	rows := sqlmock.NewRows(append(append([]string{}, columns...), "inserted")).
		AddRow(append(occurrenceRow(11, "09:00", domain.StatusScheduled, series.String()), true)...)
	mock.ExpectQuery("INSERT INTO occurrences .* ON CONFLICT \\(idempotency_key\\)").
		WillReturnRows(rows)

	price := decimal.NewFromInt(20000)
	occ := &domain.Occurrence{
		TenantID:        7,
		ClientID:        42,
		SeriesID:        &series,
		Date:            types.MustDate("2026-10-20"),
		StartTime:       "09:00",
		DurationMinutes: 60,
		Sport:           domain.SportPadel,
		Participants:    1,
		Price:           &price,
	}

	stored, created, err := repo.Create(context.Background(), occ)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(11), stored.ID)
	assert.Equal(t, types.TimeString("09:00"), stored.StartTime)
	assert.Equal(t, "2026-10-20", stored.Date.String())
	require.NotNil(t, stored.SeriesID)
	assert.Equal(t, series, *stored.SeriesID)
	require.NotNil(t, stored.Price)
	assert.True(t, stored.Price.Equal(price))
	assert.NotEmpty(t, occ.IdempotencyKey)
	assert.Equal(t, domain.StatusScheduled, occ.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateReplayReturnsExisting(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	rows := sqlmock.NewRows(append(append([]string{}, columns...), "inserted")).
		AddRow(append(occurrenceRow(5, "09:00", domain.StatusScheduled, nil), false)...)
	mock.ExpectQuery("INSERT INTO occurrences").WillReturnRows(rows)

	stored, created, err := repo.Create(context.Background(), &domain.Occurrence{
		TenantID: 7, ClientID: 42, Date: types.MustDate("2026-10-20"), StartTime: "09:00", DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(5), stored.ID)
	assert.Nil(t, stored.SeriesID)
}

func TestRepositoryCreateKeepsDriverError(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	driverErr := errors.New("connection reset")
	mock.ExpectQuery("INSERT INTO occurrences").WillReturnError(driverErr)

	_, _, err := repo.Create(context.Background(), &domain.Occurrence{TenantID: 7})
	require.ErrorIs(t, err, ErrExecQuery)
	require.ErrorIs(t, err, driverErr)
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	mock.ExpectQuery("SELECT .* FROM occurrences WHERE id = \\$1 AND tenant_id = \\$2").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 7, 3)
	require.ErrorIs(t, err, ErrOccurrenceNotFound)
}

func TestRepositoryListByDateExcludesCancelled(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	rows := sqlmock.NewRows(columns).
		AddRow(occurrenceRow(1, "09:00", domain.StatusScheduled, nil)...).
		AddRow(occurrenceRow(2, "11:00", domain.StatusNoShow, nil)...)
	mock.ExpectQuery("SELECT .* FROM occurrences WHERE tenant_id = \\$1 AND occurrence_date = \\$2 AND status <> \\$3 ORDER BY").
		WithArgs(int64(7), sqlmock.AnyArg(), "cancelled").
		WillReturnRows(rows)

	list, err := repo.ListByDate(context.Background(), 7, types.MustDate("2026-10-20"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusNoShow, list[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListByDateLocksRowsInsideTransaction(t *testing.T) {
	repo, db, mock := newRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM occurrences .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.ListByDate(ctx, 7, types.MustDate("2026-10-20"))
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCancelNotFound(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	mock.ExpectExec("UPDATE occurrences SET status = \\$1, cancellation_reason = \\$2, cancelled_at = NOW\\(\\)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .* FROM occurrences WHERE id = \\$1 AND tenant_id = \\$2").
		WithArgs(int64(99), int64(7)).
		WillReturnRows(sqlmock.NewRows(columns))

	err := repo.Cancel(context.Background(), 7, 99, nil)
	require.ErrorIs(t, err, ErrOccurrenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCancelRequiresScheduledStatus(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	reason := "rain"
	mock.ExpectExec("UPDATE occurrences SET .* WHERE id = \\$\\d+ AND status = \\$\\d+ AND tenant_id = \\$\\d+").
		WithArgs("cancelled", "rain", int64(4), "scheduled", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .* FROM occurrences WHERE id = \\$1 AND tenant_id = \\$2").
		WithArgs(int64(4), int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(occurrenceRow(4, "09:00", domain.StatusCompleted, nil)...))

	err := repo.Cancel(context.Background(), 7, 4, &reason)
	require.ErrorIs(t, err, ErrStatusChanged)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCancelScheduledBySeries(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	series := uuid.New()
	mock.ExpectExec("UPDATE occurrences SET .* WHERE series_id = \\$\\d+ AND status = \\$\\d+ AND tenant_id = \\$\\d+").
		WithArgs("cancelled", nil, series, "scheduled", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.CancelScheduledBySeries(context.Background(), 7, series, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStatus(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	mock.ExpectExec("UPDATE occurrences SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2 AND tenant_id = \\$3 AND status <> \\$4").
		WithArgs("completed", int64(4), int64(7), "cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 7, 4, domain.StatusCompleted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStatusOfCancelledOccurrence(t *testing.T) {
	repo, _, mock := newRepoMock(t)

	mock.ExpectExec("UPDATE occurrences SET status = \\$1").
		WithArgs("no_show", int64(4), int64(7), "cancelled").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .* FROM occurrences WHERE id = \\$1 AND tenant_id = \\$2").
		WithArgs(int64(4), int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(occurrenceRow(4, "09:00", domain.StatusCancelled, nil)...))

	err := repo.UpdateStatus(context.Background(), 7, 4, domain.StatusNoShow)
	require.ErrorIs(t, err, ErrStatusChanged)
	require.NoError(t, mock.ExpectationsWereMet())
}
