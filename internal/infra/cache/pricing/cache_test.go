package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

type stubSource struct {
	table domain.PricingTable
	err   error
	calls int
}

func (s *stubSource) GetTable(context.Context, int64) (domain.PricingTable, error) {
	s.calls++
	return s.table, s.err
}

func sampleTable() domain.PricingTable {
	return domain.PricingTable{
		domain.SportPadel: {Slots: []domain.PriceSlot{{
			Tier:      domain.TierHigh,
			StartTime: "17:00",
			EndTime:   "22:00",
			PricesByDuration: map[int]domain.ParticipantPrices{
				60: {1: decimal.NewFromInt(30000)},
			},
		}}},
	}
}

// недоступный Redis: любая команда сразу падает с ошибкой соединения
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCacheWithoutClientReadsSource(t *testing.T) {
	source := &stubSource{table: sampleTable()}
	cache := New(source, nil, time.Minute, nopLogger{})

	table, err := cache.GetTable(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, table, 1)
	assert.Equal(t, 1, source.calls)
	require.NoError(t, cache.Invalidate(context.Background(), 1))
}

func TestCacheDegradesToSourceWhenRedisIsDown(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	source := &stubSource{table: sampleTable()}
	cache := New(source, client, time.Minute, nopLogger{})

	table, err := cache.GetTable(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), table)
	assert.Equal(t, 1, source.calls)

	assert.Error(t, cache.Invalidate(context.Background(), 1))
}

func TestCachePropagatesSourceError(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	sourceErr := errors.New("db down")
	cache := New(&stubSource{err: sourceErr}, client, time.Minute, nopLogger{})

	_, err := cache.GetTable(context.Background(), 1)
	require.ErrorIs(t, err, sourceErr)
}

func TestCachedPayloadKeepsParticipantTiers(t *testing.T) {
	payload, err := json.Marshal(sampleTable())
	require.NoError(t, err)

	var restored domain.PricingTable
	require.NoError(t, json.Unmarshal(payload, &restored))

	amount := restored[domain.SportPadel].Slots[0].PricesByDuration[60][1]
	assert.True(t, amount.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, "pricing:table:42", cacheKey(42))
}
