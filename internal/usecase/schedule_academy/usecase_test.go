package schedule_academy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// memoryRepo идемпотентное хранилище по ключу
type memoryRepo struct {
	mu       sync.Mutex
	byKey    map[string]*domain.Occurrence
	failFor  map[int64]error // по ID клиента
	onCreate func()
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byKey: map[string]*domain.Occurrence{}, failFor: map[int64]error{}}
}

func (r *memoryRepo) Create(_ context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failFor[occ.ClientID]; err != nil {
		return nil, false, err
	}
	if existing, ok := r.byKey[occ.IdempotencyKey]; ok {
		return existing, false, nil
	}
	stored := *occ
	stored.ID = int64(len(r.byKey) + 1)
	r.byKey[occ.IdempotencyKey] = &stored
	if r.onCreate != nil {
		r.onCreate()
	}
	return &stored, true, nil
}

type stubPricing struct {
	table domain.PricingTable
	err   error
}

func (s stubPricing) GetTable(context.Context, int64) (domain.PricingTable, error) {
	return s.table, s.err
}

type fakeNotifier struct{ requests []payments.PaymentRequest }

func (n *fakeNotifier) NotifyPaymentRequired(_ context.Context, req payments.PaymentRequest) error {
	n.requests = append(n.requests, req)
	return nil
}

type countingMetrics struct{ created, skipped, failed int }

func (m *countingMetrics) RecordOccurrences(_ string, created, skipped, failed int) {
	m.created += created
	m.skipped += skipped
	m.failed += failed
}

// 2026-10-20 - вторник
var tuesday = types.MustDate("2026-10-20")

func padelTable() domain.PricingTable {
	return domain.PricingTable{
		domain.SportPadel: {Slots: []domain.PriceSlot{{
			Tier: domain.TierLow, StartTime: "09:00", EndTime: "17:00",
			PricesByDuration: map[int]domain.ParticipantPrices{
				60: {1: decimal.NewFromInt(20000), 3: decimal.NewFromInt(27000)},
			},
		}}},
	}
}

func newTestUseCase(repo *memoryRepo, pricing stubPricing) (*UseCase, *fakeNotifier, *countingMetrics) {
	notifier := &fakeNotifier{}
	metrics := &countingMetrics{}
	uc := NewUseCase(repo, pricing, notifier, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	return uc, notifier, metrics
}

// fourTuesdays две площадки по три клиента, четыре вторника подряд
func fourTuesdays() *Request {
	end := tuesday.AddDays(21)
	return &Request{
		TenantID:  7,
		AcademyID: 3,
		StartDate: tuesday,
		EndDate:   &end,
		Blocks: []ScheduleBlock{{
			Weekday:         time.Tuesday,
			StartTime:       "10:00",
			DurationMinutes: 60,
			Sport:           domain.SportPadel,
			Courts: []Court{
				{CourtID: 1, ClientIDs: []int64{11, 12, 13}},
				{CourtID: 2, ClientIDs: []int64{21, 22, 23}},
			},
		}},
	}
}

func TestExecuteCreatesDatesTimesCourtsTimesClients(t *testing.T) {
	repo := newMemoryRepo()
	uc, notifier, metrics := newTestUseCase(repo, stubPricing{table: padelTable()})

	resp, err := uc.Execute(context.Background(), fourTuesdays())
	require.NoError(t, err)

	result := resp.Result
	assert.Equal(t, 24, result.Created)
	assert.True(t, result.IsComplete())
	assert.Len(t, result.Dates, 4)
	require.Len(t, result.Series, 1)
	assert.Len(t, result.Occurrences, 24)
	assert.Len(t, notifier.requests, 24)
	assert.Equal(t, 24, metrics.created)

	for _, occ := range result.Occurrences {
		require.NotNil(t, occ.AcademyID)
		require.NotNil(t, occ.CourtID)
		assert.Equal(t, int64(3), *occ.AcademyID)
		assert.Equal(t, 3, occ.Participants)
		require.NotNil(t, occ.Price)
		assert.True(t, occ.Price.Equal(decimal.NewFromInt(27000)))
	}
}

func TestExecuteSkipsCourtsWithoutClients(t *testing.T) {
	repo := newMemoryRepo()
	uc, _, _ := newTestUseCase(repo, stubPricing{table: padelTable()})
	req := fourTuesdays()
	req.Blocks[0].Courts[1].ClientIDs = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Result.Created)
}

func TestExecuteReplayCreatesNothingNew(t *testing.T) {
	repo := newMemoryRepo()
	uc, _, _ := newTestUseCase(repo, stubPricing{table: padelTable()})

	first, err := uc.Execute(context.Background(), fourTuesdays())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), fourTuesdays())
	require.NoError(t, err)

	assert.Equal(t, 24, first.Result.Created)
	assert.Zero(t, second.Result.Created)
	assert.Equal(t, 24, second.Result.Skipped)
	assert.Equal(t, first.Result.Series[0].ID, second.Result.Series[0].ID)
	assert.Len(t, repo.byKey, 24)
}

func TestExecuteStorageFailureDoesNotStopSiblings(t *testing.T) {
	repo := newMemoryRepo()
	repo.failFor[12] = errors.New("disk full")
	uc, _, metrics := newTestUseCase(repo, stubPricing{table: padelTable()})

	resp, err := uc.Execute(context.Background(), fourTuesdays())
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Result.Created)
	assert.Equal(t, 4, resp.Result.Failed)
	assert.False(t, resp.Result.Aborted)
	assert.Equal(t, 4, metrics.failed)
}

func TestExecuteWithoutPriceStillSchedules(t *testing.T) {
	repo := newMemoryRepo()
	uc, notifier, _ := newTestUseCase(repo, stubPricing{table: domain.PricingTable{}})

	resp, err := uc.Execute(context.Background(), fourTuesdays())
	require.NoError(t, err)
	assert.Equal(t, 24, resp.Result.Created)
	assert.Nil(t, resp.Result.Occurrences[0].Price)
	assert.Empty(t, notifier.requests)
}

func TestExecuteCancellationReportsPartialResult(t *testing.T) {
	repo := newMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	created := 0
	repo.onCreate = func() {
		created++
		if created == 5 {
			cancel()
		}
	}
	uc, _, _ := newTestUseCase(repo, stubPricing{table: padelTable()})

	resp, err := uc.Execute(ctx, fourTuesdays())
	require.NoError(t, err)
	assert.True(t, resp.Result.Aborted)
	assert.Equal(t, 5, resp.Result.Created)
}

func TestExecutePricingFailure(t *testing.T) {
	uc, _, _ := newTestUseCase(newMemoryRepo(), stubPricing{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), fourTuesdays())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteValidation(t *testing.T) {
	uc, _, _ := newTestUseCase(newMemoryRepo(), stubPricing{table: padelTable()})

	mutations := map[string]func(r *Request){
		"academy":         func(r *Request) { r.AcademyID = 0 },
		"no blocks":       func(r *Request) { r.Blocks = nil },
		"no courts":       func(r *Request) { r.Blocks[0].Courts = nil },
		"duplicate court": func(r *Request) { r.Blocks[0].Courts[1].CourtID = 1 },
		"duplicate client": func(r *Request) {
			r.Blocks[0].Courts[0].ClientIDs = []int64{11, 11}
		},
		"past midnight": func(r *Request) { r.Blocks[0].StartTime = "23:30" },
		"sport":         func(r *Request) { r.Blocks[0].Sport = "chess" },
		"end":           func(r *Request) { end := tuesday.AddDays(-1); r.EndDate = &end },
		"horizon":       func(r *Request) { end := tuesday.AddDays(400); r.EndDate = &end },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := fourTuesdays()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
