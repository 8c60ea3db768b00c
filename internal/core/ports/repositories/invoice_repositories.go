package repositories

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its line items. Returns apperrors.ErrNotFound when missing.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByWorkspace retrieves a page of a workspace's invoices, newest issue date first.
	// A limit of 0 returns every invoice.
	ListInvoicesByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceFXWriter persists the result of a USD conversion.
type InvoiceFXWriter interface {
	// UpdateInvoiceFX writes usdAmount, fxRate, fxDate and fxSource of one invoice.
	UpdateInvoiceFX(ctx context.Context, invoiceID string, fx domain.FXFields) error
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	InvoiceFXWriter

	// SaveInvoice inserts a new invoice together with its line items.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice overwrites the editable fields of an invoice, including the FX fields.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// ReplaceInvoiceItems deletes the invoice's line items and inserts items in their place.
	ReplaceInvoiceItems(ctx context.Context, invoiceID string, items []domain.InvoiceItem) error

	// DeleteInvoice removes an invoice and its line items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
