package services

import (
	"context"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// RateResolverSvc walks the rate fallback chain for one currency pair and date.
type RateResolverSvc interface {
	// Resolve always yields a usable rate. When every strategy fails the rate is 1
	// and the source says how it was reached.
	Resolve(ctx context.Context, from, to string, date time.Time) domain.ResolvedRate
}

// FXConversionSvc attaches USD figures to invoices.
type FXConversionSvc interface {
	// EnsureUSDConversion converts and persists an invoice unless it is already converted.
	// It never fails: problems are reported through the result's Outcome and Reason.
	EnsureUSDConversion(ctx context.Context, invoice domain.Invoice) domain.ConversionResult

	// EnsureUSDConversionBatch converts invoices concurrently. Results keep the input order.
	EnsureUSDConversionBatch(ctx context.Context, invoices []domain.Invoice) []domain.ConversionResult
}

// FXSvcFacade combines all FX-related service interfaces
type FXSvcFacade interface {
	RateResolverSvc
	FXConversionSvc
}
