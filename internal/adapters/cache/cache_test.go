package cache

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRateCache()
	key := domain.NewRateKey("EUR", "USD", time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC))

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	c.Set(ctx, key, domain.CachedRate{Rate: decimal.RequireFromString("1.17"), Date: "2026-01-10"})

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, "1.17", got.Rate.String())
	assert.Equal(t, "2026-01-10", got.Date)

	other := domain.NewRateKey("EUR", "USD", time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC))
	_, ok = c.Get(ctx, other)
	assert.False(t, ok, "keys are per date")
}

func TestMemoryRateCacheConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRateCache()
	key := domain.RateKey{From: "GBP", To: "USD", Date: "2026-02-01"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.Get(ctx, key); !ok {
				c.Set(ctx, key, domain.CachedRate{Rate: decimal.RequireFromString("1.27"), Date: key.Date})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, "1.27", got.Rate.String())
}

func TestRedisRateCacheTreatsErrorsAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisRateCache(client, time.Hour, nil)
	key := domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-10"}

	assert.NotPanics(t, func() {
		c.Set(context.Background(), key, domain.CachedRate{Rate: decimal.RequireFromString("1.17"), Date: key.Date})
	})
	_, ok := c.Get(context.Background(), key)
	assert.False(t, ok)
}

type requestKey struct{}

// ctxRecorder keeps the request id seen in the context of every record.
type ctxRecorder struct {
	mu   sync.Mutex
	seen []any
}

func (h *ctxRecorder) Enabled(context.Context, slog.Level) bool { return true }
func (h *ctxRecorder) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h *ctxRecorder) WithGroup(string) slog.Handler           { return h }

func (h *ctxRecorder) Handle(ctx context.Context, _ slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, ctx.Value(requestKey{}))
	return nil
}

func TestRedisRateCacheLogsWithCallerContext(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	rec := &ctxRecorder{}
	c := NewRedisRateCache(client, time.Hour, slog.New(rec))
	key := domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-10"}
	ctx := context.WithValue(context.Background(), requestKey{}, "req-42")

	c.Set(ctx, key, domain.CachedRate{Rate: decimal.RequireFromString("1.17"), Date: key.Date})
	_, _ = c.Get(ctx, key)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.seen, 2)
	assert.Equal(t, []any{"req-42", "req-42"}, rec.seen)
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "fx:rate:EUR-USD-2026-01-10", redisKey(domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-10"}))
}
