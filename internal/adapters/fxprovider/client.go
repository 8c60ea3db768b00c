package fxprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/shopspring/decimal"
)

const (
	endpointHistorical = "historical"
	endpointLatest     = "latest"
)

// ErrDecode wraps payloads that are not the expected JSON shape.
var ErrDecode = errors.New("fx provider: malformed payload")

// ratesResponse is the payload shared by both providers: {"base": "EUR", "date": "2026-01-10", "rates": {"USD": 1.17}}.
type ratesResponse struct {
	Base  string                     `json:"base,omitempty"`
	Date  string                     `json:"date,omitempty"`
	Rates map[string]decimal.Decimal `json:"rates,omitempty"`
}

// Options configure a provider client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // Optional, defaults to a client without its own timeout
	Metrics    *metrics.Registry
	Logger     *slog.Logger
}

type client struct {
	name    string
	baseURL string
	timeout time.Duration
	http    *http.Client
	metrics *metrics.Registry
	logger  *slog.Logger
}

func newClient(name string, opts Options) client {
	c := client{
		name:    name,
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
		http:    opts.HTTPClient,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}
	return c
}

// fetchRate GETs url and extracts rates[to]. A nil rate with a nil error means the provider has no data.
func (c client) fetchRate(ctx context.Context, endpoint, url, to string) (*decimal.Decimal, error) {
	started := time.Now()
	rate, err := c.doFetch(ctx, url, to)

	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultError
	case rate == nil:
		result = metrics.ResultNoRate
	}
	c.metrics.ObserveProviderRequest(c.name, endpoint, result, time.Since(started))
	return rate, err
}

func (c client) doFetch(ctx context.Context, url, to string) (*decimal.Decimal, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			c.logger.WarnContext(ctx, "fx provider timed out", slog.String("provider", c.name), slog.String("url", url))
			return nil, nil
		}
		return nil, fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.DebugContext(ctx, "fx provider returned no data",
			slog.String("provider", c.name),
			slog.String("url", url),
			slog.Int("status", res.StatusCode))
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, nil
	}

	var data ratesResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, c.name, err)
	}

	rate, ok := data.Rates[to]
	if !ok || !rate.IsPositive() {
		if len(data.Rates) == 0 {
			c.logger.DebugContext(ctx, "fx provider does not support currency",
				slog.String("provider", c.name), slog.String("base", data.Base))
		}
		return nil, nil
	}
	return &rate, nil
}
