package providers

import (
	"context"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider is an HTTP-reachable source of exchange rates.
//
// Both methods return (nil, nil) when the provider has no rate for the pair:
// a non-2xx response, a payload without the target currency, or a non-positive rate.
// An error means the provider could not be asked at all (transport, timeout, bad payload).
type RateProvider interface {
	// HistoricalRate returns the rate of from in to on the calendar day of date.
	HistoricalRate(ctx context.Context, from, to string, date time.Time) (*decimal.Decimal, error)

	// LatestRate returns the most recent rate of from in to.
	LatestRate(ctx context.Context, from, to string) (*decimal.Decimal, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}

// RateCache memoizes historical rates by pair and date.
// Implementations must be safe for concurrent use. Get reports a miss with (nil, false).
type RateCache interface {
	Get(ctx context.Context, key domain.RateKey) (*domain.CachedRate, bool)
	Set(ctx context.Context, key domain.RateKey, rate domain.CachedRate)
}
