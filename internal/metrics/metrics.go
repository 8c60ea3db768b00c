package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider request results.
const (
	ResultOK     = "ok"
	ResultNoRate = "no_rate"
	ResultError  = "error"
)

// Registry owns the process metrics. A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	FXResolutions      *prometheus.CounterVec
	FXProviderRequests *prometheus.CounterVec
	FXProviderLatency  *prometheus.HistogramVec
	FXConversions      *prometheus.CounterVec
	FXCacheLookups     *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscly_fx_resolutions_total",
		Help: "Resolved rates by fallback source.",
	}, []string{"source"})
	providerRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscly_fx_provider_requests_total",
		Help: "Rate provider calls by provider, endpoint and result.",
	}, []string{"provider", "endpoint", "result"})
	providerLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fiscly_fx_provider_latency_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "endpoint"})
	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscly_fx_conversions_total",
		Help: "Invoice conversions by outcome.",
	}, []string{"outcome"})
	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscly_fx_cache_lookups_total",
	}, []string{"result"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscly_http_requests_total",
	}, []string{"method", "route", "status"})

	r.MustRegister(resolutions, providerRequests, providerLatency, conversions, cacheLookups, httpRequests)
	r.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return &Registry{
		reg:                r,
		FXResolutions:      resolutions,
		FXProviderRequests: providerRequests,
		FXProviderLatency:  providerLatency,
		FXConversions:      conversions,
		FXCacheLookups:     cacheLookups,
		HTTPRequests:       httpRequests,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) ObserveResolution(source string) {
	if r == nil {
		return
	}
	r.FXResolutions.WithLabelValues(source).Inc()
}

func (r *Registry) ObserveProviderRequest(provider, endpoint, result string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.FXProviderRequests.WithLabelValues(provider, endpoint, result).Inc()
	r.FXProviderLatency.WithLabelValues(provider, endpoint).Observe(elapsed.Seconds())
}

func (r *Registry) ObserveConversion(outcome string) {
	if r == nil {
		return
	}
	r.FXConversions.WithLabelValues(outcome).Inc()
}

func (r *Registry) ObserveCacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.FXCacheLookups.WithLabelValues(result).Inc()
}

func (r *Registry) ObserveHTTPRequest(method, route string, status int) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
