package dto

import (
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyTotalResponse is one row of the per-currency breakdown.
type CurrencyTotalResponse struct {
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	USDAmount    decimal.Decimal `json:"usdAmount"`
	InvoiceCount int             `json:"invoiceCount"`
}

// InvoiceReportResponse represents the workspace invoice report response
type InvoiceReportResponse struct {
	WorkspaceID      string                  `json:"workspaceID"`
	InvoiceCount     int                     `json:"invoiceCount"`
	UnconvertedCount int                     `json:"unconvertedCount"`
	DegradedCount    int                     `json:"degradedCount"`
	ByStatus         map[string]int          `json:"byStatus"`
	ByCurrency       []CurrencyTotalResponse `json:"byCurrency"`
	Summary          struct {
		TotalRevenueUSD decimal.Decimal `json:"totalRevenueUSD"`
		PaidAmountUSD   decimal.Decimal `json:"paidAmountUSD"`
		OutstandingUSD  decimal.Decimal `json:"outstandingUSD"`
	} `json:"summary"`
}

// ToInvoiceReportResponse converts a domain report to a DTO response
func ToInvoiceReportResponse(report *domain.InvoiceReport) InvoiceReportResponse {
	response := InvoiceReportResponse{
		WorkspaceID:      report.WorkspaceID,
		InvoiceCount:     report.InvoiceCount,
		UnconvertedCount: report.UnconvertedCount,
		DegradedCount:    report.DegradedCount,
		ByStatus:         make(map[string]int, len(report.ByStatus)),
		ByCurrency:       make([]CurrencyTotalResponse, len(report.ByCurrency)),
	}
	for status, count := range report.ByStatus {
		response.ByStatus[string(status)] = count
	}
	for i, ct := range report.ByCurrency {
		response.ByCurrency[i] = CurrencyTotalResponse{
			Currency:     ct.Currency,
			Amount:       ct.Amount,
			USDAmount:    ct.USDAmount,
			InvoiceCount: ct.InvoiceCount,
		}
	}
	response.Summary.TotalRevenueUSD = report.TotalRevenueUSD
	response.Summary.PaidAmountUSD = report.PaidAmountUSD
	response.Summary.OutstandingUSD = report.OutstandingUSD
	return response
}
