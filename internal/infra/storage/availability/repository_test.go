package availability

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

func TestRepositoryCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO availability_blocks \\(tenant_id,day_of_week,start_time,end_time,slot_duration_minutes,demand_tier,active\\)").
		WithArgs(int64(7), 1, types.TimeString("09:00"), types.TimeString("12:00"), 60, "low", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	block, err := NewRepository(db).Create(context.Background(), &domain.AvailabilityBlock{
		TenantID:            7,
		DayOfWeek:           time.Monday,
		StartTime:           "09:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 60,
		DemandTier:          domain.TierLow,
		Active:              true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), block.ID)
	assert.Equal(t, now, block.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), int64(7), 1, "09:00:00", "12:00:00", 60, "low", true, now, now).
		AddRow(int64(2), int64(7), 3, "18:00:00", "21:00:00", 90, "high", true, now, now)
	mock.ExpectQuery("SELECT .* FROM availability_blocks WHERE active = \\$1 AND tenant_id = \\$2 ORDER BY day_of_week ASC").
		WithArgs(true, int64(7)).
		WillReturnRows(rows)

	blocks, err := NewRepository(db).ListActive(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, time.Monday, blocks[0].DayOfWeek)
	assert.Equal(t, types.TimeString("09:00"), blocks[0].StartTime)
	assert.Equal(t, domain.TierLow, blocks[0].DemandTier)
	assert.Equal(t, time.Wednesday, blocks[1].DayOfWeek)
	assert.Equal(t, 90, blocks[1].SlotDurationMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeactivateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE availability_blocks SET active = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2 AND tenant_id = \\$3").
		WithArgs(false, int64(9), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).Deactivate(context.Background(), 7, 9)
	require.ErrorIs(t, err, ErrBlockNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
