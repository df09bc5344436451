package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubBlocks struct {
	blocks []*domain.AvailabilityBlock
	err    error
}

func (s stubBlocks) ListActive(context.Context, int64) ([]*domain.AvailabilityBlock, error) {
	return s.blocks, s.err
}

type stubOccurrences struct {
	items []*domain.Occurrence
	err   error
}

func (s stubOccurrences) ListByDate(context.Context, int64, types.Date) ([]*domain.Occurrence, error) {
	return s.items, s.err
}

type stubPricing struct {
	table domain.PricingTable
	err   error
	calls int
}

func (s *stubPricing) GetTable(context.Context, int64) (domain.PricingTable, error) {
	s.calls++
	return s.table, s.err
}

// 2026-10-19 - понедельник
var monday = types.MustDate("2026-10-19")

func mondayMorning() []*domain.AvailabilityBlock {
	return []*domain.AvailabilityBlock{{
		ID:                  1,
		TenantID:            7,
		DayOfWeek:           time.Monday,
		StartTime:           "09:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 60,
		DemandTier:          domain.TierLow,
		Active:              true,
	}}
}

func newTestUseCase(blocks stubBlocks, occurrences stubOccurrences, pricing *stubPricing) *UseCase {
	uc := NewUseCase(blocks, occurrences, pricing, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecuteExcludesConflictAndKeepsAdjacentSlot(t *testing.T) {
	existing := []*domain.Occurrence{{
		TenantID: 7, Date: monday, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled,
	}}
	pricing := &stubPricing{}
	uc := newTestUseCase(stubBlocks{blocks: mondayMorning()}, stubOccurrences{items: existing}, pricing)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 60})
	require.NoError(t, err)

	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts = append(starts, slot.StartTime)
		assert.Nil(t, slot.Price)
	}
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, starts)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[1].EndTime)
	assert.Equal(t, []int{60}, resp.DurationsOffered)
	assert.Zero(t, pricing.calls, "без вида спорта сетка не нужна")
}

func TestExecuteAttachesPricesWhenSportGiven(t *testing.T) {
	padel := domain.SportPadel
	pricing := &stubPricing{table: domain.PricingTable{
		domain.SportPadel: {Slots: []domain.PriceSlot{{
			Tier:      domain.TierLow,
			StartTime: "09:00",
			EndTime:   "10:00",
			PricesByDuration: map[int]domain.ParticipantPrices{
				60: {1: decimal.NewFromInt(20000)},
			},
		}}},
	}}
	uc := newTestUseCase(stubBlocks{blocks: mondayMorning()}, stubOccurrences{}, pricing)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 60, Sport: &padel})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)

	require.NotNil(t, resp.Slots[0].Price)
	assert.True(t, resp.Slots[0].Price.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, domain.TierLow, resp.Slots[0].Tier)
	assert.Nil(t, resp.Slots[2].Price, "10:00 вне ценового слота")
	assert.Equal(t, 1, pricing.calls)
}

func TestExecuteWrongDurationGivesEmptyList(t *testing.T) {
	uc := newTestUseCase(stubBlocks{blocks: mondayMorning()}, stubOccurrences{}, &stubPricing{})

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 90})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(stubBlocks{}, stubOccurrences{}, &stubPricing{})
	curling := domain.SportType("curling")

	cases := map[string]*Request{
		"tenant":       {Date: monday, DurationMinutes: 60},
		"date":         {TenantID: 7, DurationMinutes: 60},
		"duration":     {TenantID: 7, Date: monday},
		"participants": {TenantID: 7, Date: monday, DurationMinutes: 60, Participants: -1},
		"sport":        {TenantID: 7, Date: monday, DurationMinutes: 60, Sport: &curling},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecutePastDate(t *testing.T) {
	uc := newTestUseCase(stubBlocks{}, stubOccurrences{}, &stubPricing{})

	_, err := uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday.AddDays(-1), DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteStorageErrors(t *testing.T) {
	boom := errors.New("db down")

	uc := newTestUseCase(stubBlocks{err: boom}, stubOccurrences{}, &stubPricing{})
	_, err := uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInternal)

	uc = newTestUseCase(stubBlocks{blocks: mondayMorning()}, stubOccurrences{err: boom}, &stubPricing{})
	_, err = uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInternal)

	padel := domain.SportPadel
	uc = newTestUseCase(stubBlocks{blocks: mondayMorning()}, stubOccurrences{}, &stubPricing{err: boom})
	_, err = uc.Execute(context.Background(), &Request{TenantID: 7, Date: monday, DurationMinutes: 60, Sport: &padel})
	assert.ErrorIs(t, err, ErrInternal)
}
