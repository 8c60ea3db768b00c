package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	fx          portssvc.FXConversionSvc
}

// NewReportingService creates a new reporting service
func NewReportingService(invoiceRepo portsrepo.InvoiceReader, workspaceRepo portsrepo.WorkspaceReader, fx portssvc.FXConversionSvc) portssvc.ReportingService {
	return &reportingService{
		BaseService: BaseService{WorkspaceReader: workspaceRepo},
		invoiceRepo: invoiceRepo,
		fx:          fx,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// InvoiceReport converts every invoice of the caller's workspace and sums the USD figures.
func (s *reportingService) InvoiceReport(ctx context.Context, userID string) (*domain.InvoiceReport, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoicesByWorkspace(ctx, workspace.WorkspaceID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve invoices for report",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, fmt.Errorf("failed to retrieve invoices for report: %w", err)
	}

	report := BuildInvoiceReport(workspace.WorkspaceID, s.fx.EnsureUSDConversionBatch(ctx, invoices))

	s.LogInfo(ctx, "Invoice report generated successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.Int("invoice_count", report.InvoiceCount),
		slog.Int("unconverted_count", report.UnconvertedCount))
	return report, nil
}

// BuildInvoiceReport aggregates conversion results. Invoices without a USD figure are
// counted but left out of the USD totals.
func BuildInvoiceReport(workspaceID string, results []domain.ConversionResult) *domain.InvoiceReport {
	report := &domain.InvoiceReport{
		WorkspaceID:     workspaceID,
		TotalRevenueUSD: decimal.Zero,
		PaidAmountUSD:   decimal.Zero,
		OutstandingUSD:  decimal.Zero,
		InvoiceCount:    len(results),
		ByStatus:        make(map[domain.InvoiceStatus]int, len(domain.InvoiceStatuses)),
	}
	for _, status := range domain.InvoiceStatuses {
		report.ByStatus[status] = 0
	}

	byCurrency := make(map[string]*domain.CurrencyTotal)
	for _, r := range results {
		inv := r.Invoice
		report.ByStatus[inv.Status]++

		currency := inv.EffectiveCurrency()
		ct, ok := byCurrency[currency]
		if !ok {
			ct = &domain.CurrencyTotal{Currency: currency, Amount: decimal.Zero, USDAmount: decimal.Zero}
			byCurrency[currency] = ct
		}
		ct.Amount = ct.Amount.Add(inv.Amount)
		ct.InvoiceCount++

		if !r.HasUSDAmount() {
			report.UnconvertedCount++
			continue
		}
		if inv.FXSource != nil && inv.FXSource.IsDegraded() {
			report.DegradedCount++
		}
		usd := *inv.USDAmount
		ct.USDAmount = ct.USDAmount.Add(usd)
		report.TotalRevenueUSD = report.TotalRevenueUSD.Add(usd)
		if inv.Status == domain.InvoiceStatusPaid {
			report.PaidAmountUSD = report.PaidAmountUSD.Add(usd)
		}
	}
	report.OutstandingUSD = report.TotalRevenueUSD.Sub(report.PaidAmountUSD)

	report.ByCurrency = make([]domain.CurrencyTotal, 0, len(byCurrency))
	for _, ct := range byCurrency {
		report.ByCurrency = append(report.ByCurrency, *ct)
	}
	sort.Slice(report.ByCurrency, func(i, j int) bool {
		return report.ByCurrency[i].Currency < report.ByCurrency[j].Currency
	})
	return report
}
