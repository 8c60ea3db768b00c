package dto

import (
	"fmt"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FXRateParams defines query parameters for the rate lookup endpoint.
type FXRateParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,currency_code"`
}

// RateDate returns the requested date, or now when none was given.
func (p FXRateParams) RateDate(now time.Time) (time.Time, error) {
	if p.Date == "" {
		return now, nil
	}
	date, err := time.Parse(domain.FXDateLayout, p.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", p.Date)
	}
	return date, nil
}

// FXRateResponse defines the structure for API responses containing a resolved rate.
type FXRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	RequestedDate    string          `json:"requestedDate"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         string          `json:"rateDate"`
	Source           domain.FXSource `json:"source"`
	Degraded         bool            `json:"degraded"`
}

// ToFXRateResponse converts a resolved rate to FXRateResponse DTO
func ToFXRateResponse(from, to, requestedDate string, r domain.ResolvedRate) FXRateResponse {
	return FXRateResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		RequestedDate:    requestedDate,
		Rate:             r.Rate,
		RateDate:         r.Date,
		Source:           r.Source,
		Degraded:         r.Source.IsDegraded(),
	}
}
