package get_price

import (
	"context"
	"errors"
	"testing"

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

type stubPricing struct {
	table domain.PricingTable
	err   error
}

func (s stubPricing) GetTable(context.Context, int64) (domain.PricingTable, error) {
	return s.table, s.err
}

func padelTable() domain.PricingTable {
	return domain.PricingTable{
		domain.SportPadel: {Slots: []domain.PriceSlot{
			{
				Tier: domain.TierLow, StartTime: "09:00", EndTime: "17:00",
				PricesByDuration: map[int]domain.ParticipantPrices{
					60: {1: decimal.NewFromInt(20000), 2: decimal.NewFromInt(22000)},
				},
			},
			{
				Tier: domain.TierHigh, StartTime: "17:00", EndTime: "22:00",
				PricesByDuration: map[int]domain.ParticipantPrices{
					60: {1: decimal.NewFromInt(30000)},
				},
			},
		}},
	}
}

func TestExecuteHighTierWithParticipantFallback(t *testing.T) {
	uc := NewUseCase(stubPricing{table: padelTable()}, nopLogger{})
	at := types.TimeString("18:00")

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60, TimeOfDay: &at, Participants: 3,
	})
	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, domain.TierHigh, resp.Tier)
	assert.True(t, resp.ParticipantFallback)
	assert.False(t, resp.TimeOfDayDefaulted)
}

func TestExecuteWithoutTimeUsesFirstSlot(t *testing.T) {
	uc := NewUseCase(stubPricing{table: padelTable()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60, Participants: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(22000)))
	assert.True(t, resp.TimeOfDayDefaulted)
}

func TestExecuteNotFoundIsNotAnError(t *testing.T) {
	uc := NewUseCase(stubPricing{table: padelTable()}, nopLogger{})
	late := types.TimeString("22:00")

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60, TimeOfDay: &late,
	})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Amount)

	resp, err = uc.Execute(context.Background(), &Request{TenantID: 7, Sport: domain.SportGolf, DurationMinutes: 60})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestExecuteErrors(t *testing.T) {
	uc := NewUseCase(stubPricing{table: padelTable()}, nopLogger{})
	bad := types.TimeString("7pm")

	for name, req := range map[string]*Request{
		"sport":        {TenantID: 7, Sport: "curling", DurationMinutes: 60},
		"duration":     {TenantID: 7, Sport: domain.SportPadel},
		"time":         {TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60, TimeOfDay: &bad},
		"participants": {TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60, Participants: -2},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	uc = NewUseCase(stubPricing{err: errors.New("redis and db down")}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{TenantID: 7, Sport: domain.SportPadel, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInternal)
}
