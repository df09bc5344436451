package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct{ conflicts int }

func (m *countingMetrics) RecordWriteConflict() { m.conflicts++ }

// memoryRepo хранилище в памяти, повторяющее идемпотентность по ключу
type memoryRepo struct {
	mu        sync.Mutex
	items     []*domain.Occurrence
	createErr error
}

func (r *memoryRepo) Create(_ context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, false, r.createErr
	}
	for _, existing := range r.items {
		if existing.IsActive() && existing.IdempotencyKey == occ.IdempotencyKey {
			return existing, false, nil
		}
	}
	stored := *occ
	stored.ID = int64(len(r.items) + 1)
	stored.Status = domain.StatusScheduled
	r.items = append(r.items, &stored)
	return &stored, true, nil
}

func (r *memoryRepo) ListByDate(_ context.Context, tenantID int64, date types.Date) ([]*domain.Occurrence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.Occurrence, 0)
	for _, occ := range r.items {
		if occ.TenantID == tenantID && occ.Date.Equal(date) && occ.IsActive() {
			result = append(result, occ)
		}
	}
	return result, nil
}

// serialTx выполняет транзакции строго по одной, как SERIALIZABLE без аномалий
type serialTx struct {
	mu  sync.Mutex
	err error
}

func (tx *serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

func tuesdayAtNine(clientID int64) *domain.Occurrence {
	return &domain.Occurrence{
		TenantID:        1,
		ClientID:        clientID,
		Date:            types.MustDate("2026-10-20"),
		StartTime:       "09:00",
		DurationMinutes: 60,
		Sport:           domain.SportTennis,
		Participants:    1,
	}
}

func TestWriterRejectsSecondOfTwoSimultaneousBookings(t *testing.T) {
	repo := &memoryRepo{}
	metrics := &countingMetrics{}
	writer := NewWriter(repo, &serialTx{}, metrics, nopLogger{})

	var (
		wg      sync.WaitGroup
		results = make([]error, 2)
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, results[i] = writer.Commit(context.Background(), tuesdayAtNine(int64(100+i)))
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotNoLongerAvailable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Len(t, repo.items, 1)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestWriterAllowsAdjacentOccurrence(t *testing.T) {
	repo := &memoryRepo{}
	writer := NewWriter(repo, &serialTx{}, &countingMetrics{}, nopLogger{})

	_, _, err := writer.Commit(context.Background(), tuesdayAtNine(1))
	require.NoError(t, err)

	next := tuesdayAtNine(2)
	next.StartTime = "10:00"
	stored, created, err := writer.Commit(context.Background(), next)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, types.TimeString("10:00"), stored.StartTime)
}

func TestWriterReplayIsIdempotent(t *testing.T) {
	repo := &memoryRepo{}
	writer := NewWriter(repo, &serialTx{}, &countingMetrics{}, nopLogger{})

	first, created, err := writer.Commit(context.Background(), tuesdayAtNine(1))
	require.NoError(t, err)
	require.True(t, created)

	again, created, err := writer.Commit(context.Background(), tuesdayAtNine(1))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, repo.items, 1)
}

func TestWriterMapsSerializationFailure(t *testing.T) {
	metrics := &countingMetrics{}
	tx := &serialTx{err: &pq.Error{Code: "40001", Message: "could not serialize access"}}
	writer := NewWriter(&memoryRepo{}, tx, metrics, nopLogger{})

	_, _, err := writer.Commit(context.Background(), tuesdayAtNine(1))
	require.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestWriterWrapsStorageError(t *testing.T) {
	writer := NewWriter(&memoryRepo{createErr: errors.New("disk full")}, &serialTx{}, &countingMetrics{}, nopLogger{})

	_, _, err := writer.Commit(context.Background(), tuesdayAtNine(1))
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrSlotNoLongerAvailable)
}
