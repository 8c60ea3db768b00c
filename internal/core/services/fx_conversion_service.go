package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// fxService implements the FXSvcFacade interface
type fxService struct {
	BaseService
	portssvc.RateResolverSvc
	invoiceRepo portsrepo.InvoiceFXWriter
	batchLimit  int
	now         func() time.Time
	metrics     *metrics.Registry
}

// FXServiceOption is a functional option for configuring the FX service
type FXServiceOption func(*fxService)

// WithBatchLimit caps how many invoices of a batch are converted at once. 0 means no cap.
func WithBatchLimit(limit int) FXServiceOption {
	return func(s *fxService) {
		s.batchLimit = limit
	}
}

// WithFXClock overrides the source of "today" used for native conversions.
func WithFXClock(now func() time.Time) FXServiceOption {
	return func(s *fxService) {
		s.now = now
	}
}

// WithFXMetrics records conversion outcomes on reg.
func WithFXMetrics(reg *metrics.Registry) FXServiceOption {
	return func(s *fxService) {
		s.metrics = reg
	}
}

// NewFXService creates the invoice conversion service on top of a rate resolver.
func NewFXService(resolver portssvc.RateResolverSvc, invoiceRepo portsrepo.InvoiceFXWriter, options ...FXServiceOption) portssvc.FXSvcFacade {
	svc := &fxService{
		RateResolverSvc: resolver,
		invoiceRepo:     invoiceRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure fxService implements the FXSvcFacade interface
var _ portssvc.FXSvcFacade = (*fxService)(nil)

// EnsureUSDConversion attaches usdAmount, fxRate, fxDate and fxSource to an invoice and persists them.
func (s *fxService) EnsureUSDConversion(ctx context.Context, invoice domain.Invoice) (result domain.ConversionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			s.LogError(ctx, fmt.Errorf("%v", rec), "Invoice conversion panicked",
				slog.String("invoice_id", invoice.InvoiceID))
			result = domain.ConversionResult{
				Invoice: invoice,
				Outcome: domain.OutcomeUnconverted,
				Reason:  fmt.Sprintf("conversion panicked: %v", rec),
			}
		}
		s.metrics.ObserveConversion(string(result.Outcome))
	}()

	if invoice.IsUSDConverted() {
		return domain.ConversionResult{Invoice: invoice, Outcome: domain.OutcomeAlreadyConverted, Persisted: true}
	}
	if err := ctx.Err(); err != nil {
		return domain.ConversionResult{Invoice: invoice, Outcome: domain.OutcomeUnconverted, Reason: err.Error()}
	}

	currency := invoice.EffectiveCurrency()
	var fx domain.FXFields
	if currency == domain.BaseCurrency {
		fx = domain.FXFields{
			USDAmount: invoice.Amount,
			FXRate:    decimal.NewFromInt(1),
			FXDate:    domain.FormatFXDate(s.now()),
			FXSource:  domain.FXSourceNative,
		}
	} else {
		resolved := s.Resolve(ctx, currency, domain.BaseCurrency, invoice.IssueDateOr(s.now()))
		fx = domain.FXFields{
			USDAmount: invoice.Amount.Mul(resolved.Rate),
			FXRate:    resolved.Rate,
			FXDate:    resolved.Date,
			FXSource:  resolved.Source,
		}
	}

	result = domain.ConversionResult{Invoice: invoice.WithFX(fx), Outcome: domain.OutcomeConverted}
	if fx.FXSource.IsDegraded() {
		result.Outcome = domain.OutcomeDegraded
	}

	if invoice.InvoiceID == "" {
		result.Reason = "invoice has no id, conversion not persisted"
		return result
	}
	if err := s.invoiceRepo.UpdateInvoiceFX(ctx, invoice.InvoiceID, fx); err != nil {
		s.LogError(ctx, err, "Failed to persist invoice conversion",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("fx_source", string(fx.FXSource)))
		result.Reason = fmt.Sprintf("conversion not persisted: %v", err)
		return result
	}
	result.Persisted = true

	s.LogDebug(ctx, "Invoice converted to USD",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("currency", currency),
		slog.String("usd_amount", fx.USDAmount.String()),
		slog.String("fx_rate", fx.FXRate.String()),
		slog.String("fx_date", fx.FXDate),
		slog.String("fx_source", string(fx.FXSource)))
	return result
}

// EnsureUSDConversionBatch converts each invoice on its own goroutine.
func (s *fxService) EnsureUSDConversionBatch(ctx context.Context, invoices []domain.Invoice) []domain.ConversionResult {
	results := make([]domain.ConversionResult, len(invoices))
	var g errgroup.Group
	if s.batchLimit > 0 {
		g.SetLimit(s.batchLimit)
	}
	for i := range invoices {
		g.Go(func() error {
			results[i] = s.EnsureUSDConversion(ctx, invoices[i])
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ConvertedInvoices unwraps the invoices of a batch result.
func ConvertedInvoices(results []domain.ConversionResult) []domain.Invoice {
	invoices := make([]domain.Invoice, len(results))
	for i, r := range results {
		invoices[i] = r.Invoice
	}
	return invoices
}
