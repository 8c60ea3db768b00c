package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/adapters/cache"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

var today = time.Date(2026, 1, 20, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

// --- Test Suite ---
type RateResolverTestSuite struct {
	suite.Suite
	ctx      context.Context
	provider *fakeProvider
	cache    *cache.MemoryRateCache
	resolver portssvc.RateResolverSvc
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.provider = newFakeProvider()
	suite.cache = cache.NewMemoryRateCache()
	suite.resolver = services.NewRateResolver(suite.provider, suite.cache, services.WithClock(fixedClock))
}

func (suite *RateResolverTestSuite) TestHistoricalRateIsCached() {
	suite.provider.historical["2026-01-10"] = "1.17"

	first := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))
	suite.Equal(domain.FXSourceAPI, first.Source)
	suite.Equal("2026-01-10", first.Date)
	suite.True(first.Rate.Equal(dec("1.17")))

	suite.provider.Reset()
	second := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))
	suite.Equal(domain.FXSourceCache, second.Source)
	suite.True(second.Rate.Equal(first.Rate))
	suite.Empty(suite.provider.Calls(), "cache hit must not reach the provider")
}

func (suite *RateResolverTestSuite) TestLowercaseCodesShareCacheEntry() {
	suite.provider.historical["2026-01-10"] = "1.17"

	suite.resolver.Resolve(suite.ctx, "eur", "usd", day("2026-01-10"))
	_, ok := suite.cache.Get(suite.ctx, domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-10"})
	suite.True(ok)
}

func (suite *RateResolverTestSuite) TestFallsBackToEarlierDay() {
	suite.provider.historical["2026-01-08"] = "1.15"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceAPIFallback, got.Source)
	suite.Equal("2026-01-08", got.Date)
	suite.True(got.Rate.Equal(dec("1.15")))
	suite.Equal([]string{"historical:2026-01-10", "historical:2026-01-09", "historical:2026-01-08"}, suite.provider.Calls())

	cached, ok := suite.cache.Get(suite.ctx, domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-08"})
	suite.Require().True(ok)
	suite.Equal("2026-01-08", cached.Date)
}

func (suite *RateResolverTestSuite) TestParityRateCountsAsMissing() {
	suite.provider.historical["2026-01-10"] = "1"
	suite.provider.historical["2026-01-09"] = "1.16"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceAPIFallback, got.Source)
	suite.Equal("2026-01-09", got.Date)
	_, ok := suite.cache.Get(suite.ctx, domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-10"})
	suite.False(ok, "a parity answer is never cached")
}

func (suite *RateResolverTestSuite) TestCachedEarlierDayWins() {
	suite.cache.Set(suite.ctx, domain.RateKey{From: "EUR", To: "USD", Date: "2026-01-07"},
		domain.CachedRate{Rate: dec("1.14"), Date: "2026-01-07"})

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCacheFallback, got.Source)
	suite.Equal("2026-01-07", got.Date)
	suite.True(got.Rate.Equal(dec("1.14")))
	suite.Equal([]string{"historical:2026-01-10", "historical:2026-01-09", "historical:2026-01-08"}, suite.provider.Calls())
}

func (suite *RateResolverTestSuite) TestWindowStopsAfterSevenDays() {
	suite.provider.historical["2026-01-02"] = "1.10" // D-8, outside the window
	suite.provider.latest = "1.20"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCurrentFallback, got.Source)
	suite.Equal("2026-01-20", got.Date)
	suite.True(got.Rate.Equal(dec("1.20")))

	calls := suite.provider.Calls()
	suite.Len(calls, 9)
	suite.Equal("historical:2026-01-03", calls[7])
	suite.Equal("latest", calls[8])
	suite.NotContains(calls, "historical:2026-01-02")
}

func (suite *RateResolverTestSuite) TestCurrentRateIsNotCached() {
	suite.provider.latest = "1.20"

	suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))
	suite.Equal(0, suite.cache.Len())

	suite.provider.Reset()
	again := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))
	suite.Equal(domain.FXSourceCurrentFallback, again.Source)
	suite.NotEmpty(suite.provider.Calls())
}

func (suite *RateResolverTestSuite) TestNoRateAnywhereIsNeutral() {
	got := suite.resolver.Resolve(suite.ctx, "TND", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCurrentFallback, got.Source)
	suite.True(got.Rate.Equal(dec("1")))
}

func (suite *RateResolverTestSuite) TestProviderErrorUsesCurrentRate() {
	suite.provider.failHistorical = true
	suite.provider.latest = "1.30"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceErrorFallback, got.Source)
	suite.Equal("2026-01-20", got.Date)
	suite.True(got.Rate.Equal(dec("1.30")))
	suite.Equal([]string{"historical:2026-01-10", "latest"}, suite.provider.Calls())
}

func (suite *RateResolverTestSuite) TestProviderDownIsNeutralErrorFallback() {
	suite.provider.failHistorical = true
	suite.provider.failLatest = true

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceErrorFallback, got.Source)
	suite.True(got.Rate.Equal(dec("1")))
}

func (suite *RateResolverTestSuite) TestSameCurrencyIsNative() {
	got := suite.resolver.Resolve(suite.ctx, "USD", "usd", day("2026-01-10"))

	suite.Equal(domain.FXSourceNative, got.Source)
	suite.True(got.Rate.Equal(dec("1")))
	suite.Empty(suite.provider.Calls())
}

func (suite *RateResolverTestSuite) TestZeroFallbackDays() {
	resolver := services.NewRateResolver(suite.provider, suite.cache,
		services.WithClock(fixedClock),
		services.WithFallbackDays(0))
	suite.provider.historical["2026-01-09"] = "1.16"
	suite.provider.latest = "1.20"

	got := resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCurrentFallback, got.Source)
	suite.Equal([]string{"historical:2026-01-10", "latest"}, suite.provider.Calls())
}

func TestRateResolverTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}

// --- Alternative provider ---
type AlternativeProviderTestSuite struct {
	suite.Suite
	ctx         context.Context
	primary     *fakeProvider
	alternative *fakeProvider
	cache       *cache.MemoryRateCache
	resolver    portssvc.RateResolverSvc
}

func (suite *AlternativeProviderTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.primary = newFakeProvider()
	suite.alternative = newFakeProvider()
	suite.alternative.name = "alt"
	suite.cache = cache.NewMemoryRateCache()
	suite.resolver = services.NewRateResolver(suite.primary, suite.cache,
		services.WithClock(fixedClock),
		services.WithAlternativeProvider(suite.alternative))
}

func (suite *AlternativeProviderTestSuite) TestAlternativeUsedAfterWindow() {
	suite.alternative.latest = "0.32"

	got := suite.resolver.Resolve(suite.ctx, "TND", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceAltAPIFallback, got.Source)
	suite.Equal("2026-01-20", got.Date)
	suite.True(got.Rate.Equal(dec("0.32")))
	suite.Equal(0, suite.cache.Len())
	suite.NotContains(suite.primary.Calls(), "latest")
}

func (suite *AlternativeProviderTestSuite) TestAlternativeParitySkipped() {
	suite.alternative.latest = "1"
	suite.primary.latest = "1.21"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCurrentFallback, got.Source)
	suite.True(got.Rate.Equal(dec("1.21")))
}

func (suite *AlternativeProviderTestSuite) TestAlternativeErrorIsNoRate() {
	suite.alternative.failLatest = true
	suite.primary.latest = "1.21"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceCurrentFallback, got.Source)
}

func (suite *AlternativeProviderTestSuite) TestCurrentFallbackTriesAlternativeLatest() {
	suite.primary.failHistorical = true
	suite.primary.failLatest = true
	suite.alternative.latest = "1.18"

	got := suite.resolver.Resolve(suite.ctx, "EUR", "USD", day("2026-01-10"))

	suite.Equal(domain.FXSourceErrorFallback, got.Source)
	suite.True(got.Rate.Equal(dec("1.18")))
}

func TestAlternativeProviderTestSuite(t *testing.T) {
	suite.Run(t, new(AlternativeProviderTestSuite))
}
