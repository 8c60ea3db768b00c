package services

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data.
// Every invoice returned has been passed through the FX conversion.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves one invoice of the caller's workspace.
	GetInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices of the caller's workspace.
	ListInvoices(ctx context.Context, userID string, limit int, offset int) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice in the caller's workspace.
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice updates an existing invoice. Changing amount, currency or issue date
	// discards the stored conversion.
	UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice and its line items.
	DeleteInvoice(ctx context.Context, userID string, invoiceID string) error
}

// InvoiceBackfillSvc converts stored invoices in bulk.
type InvoiceBackfillSvc interface {
	// BackfillWorkspace runs the FX conversion over every invoice of a workspace.
	BackfillWorkspace(ctx context.Context, workspaceID string) ([]domain.ConversionResult, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
// This is a facade for clients that need access to all operations
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceBackfillSvc
}
