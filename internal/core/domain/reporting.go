package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyTotal is the native-currency sum of a workspace's invoices in one currency.
type CurrencyTotal struct {
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	USDAmount    decimal.Decimal `json:"usdAmount"`
	InvoiceCount int             `json:"invoiceCount"`
}

// InvoiceReport summarises a workspace's invoices in USD.
type InvoiceReport struct {
	WorkspaceID      string                `json:"workspaceID"`
	TotalRevenueUSD  decimal.Decimal       `json:"totalRevenueUSD"`
	PaidAmountUSD    decimal.Decimal       `json:"paidAmountUSD"`
	OutstandingUSD   decimal.Decimal       `json:"outstandingUSD"`
	InvoiceCount     int                   `json:"invoiceCount"`
	UnconvertedCount int                   `json:"unconvertedCount"` // Invoices left out of the USD totals
	DegradedCount    int                   `json:"degradedCount"`    // Invoices converted at a non-historical rate
	ByStatus         map[InvoiceStatus]int `json:"byStatus"`
	ByCurrency       []CurrencyTotal       `json:"byCurrency"`
}
