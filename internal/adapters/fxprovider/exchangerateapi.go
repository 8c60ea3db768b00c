package fxprovider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// DefaultExchangeRateAPIURL is the free exchangerate-api.com v4 endpoint.
const DefaultExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest"

// ExchangeRateAPI only knows today's rates, so it is used as the alternative provider:
//
//	GET {base}/EUR -> {"base": "EUR", "rates": {"USD": 1.17, ...}}
//
// It covers currencies Frankfurter lacks, such as TND.
type ExchangeRateAPI struct {
	client
}

var _ providers.RateProvider = (*ExchangeRateAPI)(nil)

func NewExchangeRateAPI(opts Options) *ExchangeRateAPI {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultExchangeRateAPIURL
	}
	return &ExchangeRateAPI{client: newClient("exchangerate-api", opts)}
}

func (e *ExchangeRateAPI) Name() string { return e.name }

// HistoricalRate always reports no data.
func (e *ExchangeRateAPI) HistoricalRate(context.Context, string, string, time.Time) (*decimal.Decimal, error) {
	return nil, nil
}

func (e *ExchangeRateAPI) LatestRate(ctx context.Context, from, to string) (*decimal.Decimal, error) {
	return e.fetchRate(ctx, endpointLatest, fmt.Sprintf("%s/%s", e.baseURL, url.PathEscape(from)), to)
}
