package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/shopspring/decimal"
)

// DefaultFallbackDays is how many days before the requested date are scanned for a rate.
const DefaultFallbackDays = 7

var one = decimal.NewFromInt(1)

// rateResolver implements the RateResolverSvc interface
type rateResolver struct {
	BaseService
	provider     providers.RateProvider
	alternative  providers.RateProvider
	cache        providers.RateCache
	fallbackDays int
	now          func() time.Time
	metrics      *metrics.Registry
}

// RateResolverOption is a functional option for configuring the rate resolver
type RateResolverOption func(*rateResolver)

// WithAlternativeProvider adds a second provider consulted when the primary has no historical data.
func WithAlternativeProvider(p providers.RateProvider) RateResolverOption {
	return func(r *rateResolver) {
		r.alternative = p
	}
}

// WithFallbackDays overrides how many earlier days are scanned. Values below 0 are ignored.
func WithFallbackDays(days int) RateResolverOption {
	return func(r *rateResolver) {
		if days >= 0 {
			r.fallbackDays = days
		}
	}
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) RateResolverOption {
	return func(r *rateResolver) {
		r.now = now
	}
}

// WithResolverMetrics records resolutions and cache lookups on reg.
func WithResolverMetrics(reg *metrics.Registry) RateResolverOption {
	return func(r *rateResolver) {
		r.metrics = reg
	}
}

// NewRateResolver creates a rate resolver over a primary provider and a cache.
func NewRateResolver(provider providers.RateProvider, cache providers.RateCache, options ...RateResolverOption) portssvc.RateResolverSvc {
	r := &rateResolver{
		provider:     provider,
		cache:        cache,
		fallbackDays: DefaultFallbackDays,
		now:          time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Ensure rateResolver implements the RateResolverSvc interface
var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// Resolve walks cache, historical, day-by-day fallback, alternative and current rates in that order.
// Any provider error abandons the walk and falls back to the current rate tagged error-fallback.
func (r *rateResolver) Resolve(ctx context.Context, from, to string, date time.Time) (resolved domain.ResolvedRate) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	defer func() {
		r.metrics.ObserveResolution(string(resolved.Source))
	}()

	if from == to {
		return domain.ResolvedRate{Rate: one, Date: domain.FormatFXDate(date), Source: domain.FXSourceNative}
	}

	resolved, err := r.walk(ctx, from, to, date)
	if err == nil {
		return resolved
	}

	r.LogWarn(ctx, "FX rate lookup failed, using current rate",
		slog.String("error", err.Error()),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("date", domain.FormatFXDate(date)))
	return r.currentRate(ctx, from, to, domain.FXSourceErrorFallback)
}

func (r *rateResolver) walk(ctx context.Context, from, to string, date time.Time) (domain.ResolvedRate, error) {
	key := domain.NewRateKey(from, to, date)
	if cached, ok := r.lookup(ctx, key); ok {
		r.LogDebug(ctx, "FX cache hit", slog.String("key", key.String()), slog.String("rate", cached.Rate.String()))
		return domain.ResolvedRate{Rate: cached.Rate, Date: cached.Date, Source: domain.FXSourceCache}, nil
	}

	rate, err := r.historical(ctx, from, to, date)
	if err != nil {
		return domain.ResolvedRate{}, err
	}
	if rate != nil {
		r.cache.Set(ctx, key, domain.CachedRate{Rate: *rate, Date: key.Date})
		return domain.ResolvedRate{Rate: *rate, Date: key.Date, Source: domain.FXSourceAPI}, nil
	}

	r.LogDebug(ctx, "No FX rate for requested date, scanning earlier days",
		slog.String("key", key.String()),
		slog.Int("fallback_days", r.fallbackDays))
	for i := 1; i <= r.fallbackDays; i++ {
		prevKey := domain.NewRateKey(from, to, date.AddDate(0, 0, -i))
		if cached, ok := r.lookup(ctx, prevKey); ok {
			return domain.ResolvedRate{Rate: cached.Rate, Date: prevKey.Date, Source: domain.FXSourceCacheFallback}, nil
		}

		rate, err := r.historical(ctx, from, to, date.AddDate(0, 0, -i))
		if err != nil {
			return domain.ResolvedRate{}, err
		}
		if rate != nil {
			r.cache.Set(ctx, prevKey, domain.CachedRate{Rate: *rate, Date: prevKey.Date})
			r.LogDebug(ctx, "Using earlier FX rate", slog.String("key", prevKey.String()), slog.String("rate", rate.String()))
			return domain.ResolvedRate{Rate: *rate, Date: prevKey.Date, Source: domain.FXSourceAPIFallback}, nil
		}
	}

	if r.alternative != nil {
		if rate := r.latestFrom(ctx, r.alternative, from, to); rate != nil && !rate.Equal(one) {
			r.LogWarn(ctx, "No historical FX rate, using alternative provider",
				slog.String("from", from),
				slog.String("to", to),
				slog.String("provider", r.alternative.Name()))
			return domain.ResolvedRate{Rate: *rate, Date: r.today(), Source: domain.FXSourceAltAPIFallback}, nil
		}
	}

	r.LogWarn(ctx, "No historical FX rate in window, using current rate",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("date", key.Date))
	return r.currentRate(ctx, from, to, domain.FXSourceCurrentFallback), nil
}

// historical fetches one date and applies the parity rule: a rate of exactly 1 counts as no data.
func (r *rateResolver) historical(ctx context.Context, from, to string, date time.Time) (*decimal.Decimal, error) {
	rate, err := r.provider.HistoricalRate(ctx, from, to, date)
	if err != nil {
		return nil, fmt.Errorf("historical rate %s->%s on %s: %w", from, to, domain.FormatFXDate(date), err)
	}
	if rate == nil || rate.Equal(one) {
		return nil, nil
	}
	return rate, nil
}

// currentRate tries the primary then the alternative latest rate. It falls back to 1 and never fails.
func (r *rateResolver) currentRate(ctx context.Context, from, to string, source domain.FXSource) domain.ResolvedRate {
	resolved := domain.ResolvedRate{Rate: one, Date: r.today(), Source: source}
	if rate := r.latestFrom(ctx, r.provider, from, to); rate != nil {
		resolved.Rate = *rate
		return resolved
	}
	if r.alternative != nil {
		if rate := r.latestFrom(ctx, r.alternative, from, to); rate != nil {
			resolved.Rate = *rate
			return resolved
		}
	}
	r.LogError(ctx, fmt.Errorf("no rate for %s->%s", from, to), "No FX rate available, using 1:1",
		slog.String("source", string(source)))
	return resolved
}

func (r *rateResolver) latestFrom(ctx context.Context, p providers.RateProvider, from, to string) *decimal.Decimal {
	rate, err := p.LatestRate(ctx, from, to)
	if err != nil {
		r.LogWarn(ctx, "Latest FX rate request failed",
			slog.String("error", err.Error()),
			slog.String("provider", p.Name()),
			slog.String("from", from),
			slog.String("to", to))
		return nil
	}
	if rate == nil || !rate.IsPositive() {
		return nil
	}
	return rate
}

func (r *rateResolver) lookup(ctx context.Context, key domain.RateKey) (*domain.CachedRate, bool) {
	cached, ok := r.cache.Get(ctx, key)
	r.metrics.ObserveCacheLookup(ok)
	return cached, ok
}

func (r *rateResolver) today() string {
	return domain.FormatFXDate(r.now())
}
