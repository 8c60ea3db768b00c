package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceStatuses lists every status in display order.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
}

// PaymentMethod is how the customer is expected to settle an invoice.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCrypto       PaymentMethod = "crypto"
	PaymentMethodCash         PaymentMethod = "cash"
)

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	InvoiceItemID string          `json:"invoiceItemID"`
	InvoiceID     string          `json:"invoiceID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
}

// Invoice is a bill issued by a workspace to one of its customers.
// The FX fields are nil until the invoice has been converted to USD.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	WorkspaceID   string          `json:"workspaceID"`
	CustomerID    string          `json:"customerID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     *time.Time      `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        InvoiceStatus   `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`

	USDAmount *decimal.Decimal `json:"usdAmount"`
	FXRate    *decimal.Decimal `json:"fxRate"`
	FXDate    *string          `json:"fxDate"`
	FXSource  *FXSource        `json:"fxSource"`

	Items []InvoiceItem `json:"items,omitempty"`
	AuditFields
}

// EffectiveCurrency is the invoice currency, upper-cased, defaulting to USD.
func (i Invoice) EffectiveCurrency() string {
	c := strings.ToUpper(strings.TrimSpace(i.Currency))
	if c == "" {
		return BaseCurrency
	}
	return c
}

// IsUSDConverted reports whether the invoice already carries a usable conversion.
// A non-USD invoice at a rate of exactly 1 is treated as not converted.
func (i Invoice) IsUSDConverted() bool {
	if i.USDAmount == nil || i.FXRate == nil {
		return false
	}
	return i.EffectiveCurrency() == BaseCurrency || !i.FXRate.Equal(decimal.NewFromInt(1))
}

// WithFX returns a copy of the invoice carrying the given conversion.
func (i Invoice) WithFX(fx FXFields) Invoice {
	usd := fx.USDAmount
	rate := fx.FXRate
	date := fx.FXDate
	source := fx.FXSource
	i.USDAmount = &usd
	i.FXRate = &rate
	i.FXDate = &date
	i.FXSource = &source
	return i
}

// ClearFX drops any conversion so the invoice is picked up again on the next read.
func (i *Invoice) ClearFX() {
	i.USDAmount = nil
	i.FXRate = nil
	i.FXDate = nil
	i.FXSource = nil
}

// IssueDateOr returns the issue date, or fallback when the invoice has none.
func (i Invoice) IssueDateOr(fallback time.Time) time.Time {
	if i.IssueDate == nil || i.IssueDate.IsZero() {
		return fallback
	}
	return *i.IssueDate
}

// ItemsTotal sums the line item totals.
func (i Invoice) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Total)
	}
	return total
}

// IsValidInvoiceStatus reports whether s is a known status.
func IsValidInvoiceStatus(s InvoiceStatus) bool {
	for _, known := range InvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsValidPaymentMethod reports whether m is a known payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodCrypto, PaymentMethodCash:
		return true
	}
	return false
}
