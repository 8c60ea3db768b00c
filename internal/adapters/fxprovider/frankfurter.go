package fxprovider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// DefaultFrankfurterURL is the public Frankfurter API (ECB reference rates).
const DefaultFrankfurterURL = "https://api.frankfurter.app"

// Frankfurter serves historical and latest rates:
//
//	GET {base}/2026-01-10?from=EUR&to=USD
//	GET {base}/latest?from=EUR&to=USD
type Frankfurter struct {
	client
}

var _ providers.RateProvider = (*Frankfurter)(nil)

func NewFrankfurter(opts Options) *Frankfurter {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultFrankfurterURL
	}
	return &Frankfurter{client: newClient("frankfurter", opts)}
}

func (f *Frankfurter) Name() string { return f.name }

func (f *Frankfurter) HistoricalRate(ctx context.Context, from, to string, date time.Time) (*decimal.Decimal, error) {
	return f.fetchRate(ctx, endpointHistorical, f.url(domain.FormatFXDate(date), from, to), to)
}

func (f *Frankfurter) LatestRate(ctx context.Context, from, to string) (*decimal.Decimal, error) {
	return f.fetchRate(ctx, endpointLatest, f.url("latest", from, to), to)
}

func (f *Frankfurter) url(path, from, to string) string {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return fmt.Sprintf("%s/%s?%s", f.baseURL, path, q.Encode())
}
