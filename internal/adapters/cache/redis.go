package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	"github.com/redis/go-redis/v9"
)

const redisNamespace = "fx:rate"

// RedisRateCache shares rates between instances. Any redis failure is reported as a miss
// so the resolver simply asks the provider again.
type RedisRateCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

var _ providers.RateCache = (*RedisRateCache)(nil)

// NewRedisRateCache wraps client. A ttl of 0 keeps entries until evicted by redis.
func NewRedisRateCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisRateCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRateCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisRateCache) Get(ctx context.Context, key domain.RateKey) (*domain.CachedRate, bool) {
	raw, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "redis rate cache get failed", slog.String("key", key.String()), slog.String("error", err.Error()))
		}
		return nil, false
	}
	var rate domain.CachedRate
	if err := json.Unmarshal(raw, &rate); err != nil {
		c.logger.WarnContext(ctx, "redis rate cache entry unreadable", slog.String("key", key.String()), slog.String("error", err.Error()))
		return nil, false
	}
	return &rate, true
}

func (c *RedisRateCache) Set(ctx context.Context, key domain.RateKey, rate domain.CachedRate) {
	data, err := json.Marshal(rate)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, redisKey(key), data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis rate cache set failed", slog.String("key", key.String()), slog.String("error", err.Error()))
	}
}

func redisKey(key domain.RateKey) string {
	return redisNamespace + ":" + key.String()
}
