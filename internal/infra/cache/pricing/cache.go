// Package pricing кэширует нормализованную тарифную сетку тенанта в Redis.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

const keyPrefix = "pricing:table:"

// Cache read-through кэш поверх TableSource.
// Любая ошибка Redis деградирует до чтения из источника, а не до ошибки запроса.
type Cache struct {
	source TableSource
	client redis.Cmdable
	ttl    time.Duration
	logger Logger
}

// New создает кэш. С nil client всегда читает из источника.
func New(source TableSource, client redis.Cmdable, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetTable возвращает тарифную сетку из кэша или из источника
func (c *Cache) GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error) {
	if c.client == nil {
		return c.source.GetTable(ctx, tenantID)
	}

	key := cacheKey(tenantID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var table domain.PricingTable
		if err := json.Unmarshal(raw, &table); err == nil {
			return table, nil
		}
		c.logger.Warn("pricing cache: corrupted entry %s, reloading", key)
	case errors.Is(err, redis.Nil):
		c.logger.Debug("pricing cache: miss %s", key)
	default:
		c.logger.Warn("pricing cache: get %s: %v", key, err)
	}

	table, err := c.source.GetTable(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(table); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("pricing cache: set %s: %v", key, err)
		}
	}

	return table, nil
}

// Invalidate удаляет сетку тенанта из кэша
func (c *Cache) Invalidate(ctx context.Context, tenantID int64) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, cacheKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("pricing cache: delete %s: %w", cacheKey(tenantID), err)
	}
	return nil
}

func cacheKey(tenantID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, tenantID)
}
