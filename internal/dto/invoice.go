package dto

import (
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one line item in a create or update request.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"` // Defaults to 1 when zero
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	Total       decimal.Decimal `json:"total"` // Computed from quantity * unitPrice when zero
}

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerID" binding:"required"`
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	IssueDate     *time.Time           `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate" binding:"required"`
	Amount        decimal.Decimal      `json:"amount"`
	Currency      string               `json:"currency" binding:"omitempty,currency_code"`
	Status        domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=bank_transfer card crypto cash"`
	Description   string               `json:"description"`
	Notes         string               `json:"notes"`
	PaidDate      *time.Time           `json:"paidDate"`
	Items         []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
// Use pointers to distinguish between zero-value updates and fields not provided.
// A non-nil Items replaces every line item of the invoice.
type UpdateInvoiceRequest struct {
	CustomerID    *string               `json:"customerID"`
	InvoiceNumber *string               `json:"invoiceNumber"`
	IssueDate     *time.Time            `json:"issueDate"`
	DueDate       *time.Time            `json:"dueDate"`
	Amount        *decimal.Decimal      `json:"amount"`
	Currency      *string               `json:"currency" binding:"omitempty,currency_code"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=bank_transfer card crypto cash"`
	Description   *string               `json:"description"`
	Notes         *string               `json:"notes"`
	PaidDate      *time.Time            `json:"paidDate"`
	Items         *[]InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// InvoiceItemResponse defines the data returned for a line item.
type InvoiceItemResponse struct {
	InvoiceItemID string          `json:"invoiceItemID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
}

// InvoiceResponse defines the data returned for an invoice.
// Mirrors domain.Invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	WorkspaceID   string                `json:"workspaceID"`
	CustomerID    string                `json:"customerID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	IssueDate     *time.Time            `json:"issueDate"`
	DueDate       time.Time             `json:"dueDate"`
	Amount        decimal.Decimal       `json:"amount"`
	Currency      string                `json:"currency"`
	Status        domain.InvoiceStatus  `json:"status"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod"`
	Description   string                `json:"description"`
	Notes         string                `json:"notes"`
	PaidDate      *time.Time            `json:"paidDate,omitempty"`
	USDAmount     *decimal.Decimal      `json:"usdAmount"`
	FXRate        *decimal.Decimal      `json:"fxRate"`
	FXDate        *string               `json:"fxDate"`
	FXSource      *domain.FXSource      `json:"fxSource"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit  int `form:"limit,default=50" binding:"min=0,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ToInvoiceItems converts request line items into domain items.
func ToInvoiceItems(invoiceID string, reqs []InvoiceItemRequest) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(reqs))
	for i, r := range reqs {
		qty := r.Quantity
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}
		total := r.Total
		if total.IsZero() {
			total = qty.Mul(r.UnitPrice)
		}
		items[i] = domain.InvoiceItem{
			InvoiceID:   invoiceID,
			Description: r.Description,
			Quantity:    qty,
			UnitPrice:   r.UnitPrice,
			Total:       total,
		}
	}
	return items
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			InvoiceItemID: item.InvoiceItemID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Total:         item.Total,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		WorkspaceID:   inv.WorkspaceID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Amount:        inv.Amount,
		Currency:      inv.EffectiveCurrency(),
		Status:        inv.Status,
		PaymentMethod: inv.PaymentMethod,
		Description:   inv.Description,
		Notes:         inv.Notes,
		PaidDate:      inv.PaidDate,
		USDAmount:     inv.USDAmount,
		FXRate:        inv.FXRate,
		FXDate:        inv.FXDate,
		FXSource:      inv.FXSource,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		LastUpdatedAt: inv.LastUpdatedAt,
		LastUpdatedBy: inv.LastUpdatedBy,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
