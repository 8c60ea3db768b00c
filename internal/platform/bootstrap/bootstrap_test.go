package bootstrap

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/fiscly/fiscly_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders(t *testing.T) {
	cfg := &config.Config{
		FXAPIBaseURL:    "https://api.frankfurter.app",
		FXAltAPIBaseURL: "https://api.exchangerate-api.com/v4/latest",
		FXTimeout:       time.Second,
	}
	reg := metrics.NewRegistry()

	primary := NewPrimaryProvider(cfg, slog.Default(), reg)
	assert.Equal(t, "frankfurter", primary.Name())

	alt := NewAlternativeProvider(cfg, slog.Default(), reg)
	require.NotNil(t, alt)
	assert.Equal(t, "exchangerate-api", alt.Name())

	cfg.FXAltAPIBaseURL = ""
	assert.Nil(t, NewAlternativeProvider(cfg, slog.Default(), reg))
}

func TestCloseRunsInReverseOrder(t *testing.T) {
	var order []string
	app := &App{closers: []func(){
		func() { order = append(order, "store") },
		func() { order = append(order, "cache") },
	}}

	app.Close()

	assert.Equal(t, []string{"cache", "store"}, order)
}

func TestNewResolverWithoutRedis(t *testing.T) {
	cfg := &config.Config{
		FXAPIBaseURL:   "http://127.0.0.1:1",
		FXTimeout:      time.Second,
		FXFallbackDays: 7,
	}

	app, resolver, err := NewResolver(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer app.Close()

	got := resolver.Resolve(context.Background(), "usd", "USD", time.Now())
	assert.Equal(t, domain.FXSourceNative, got.Source)
	assert.Empty(t, app.closers)
}
