package services

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// ReportingService defines operations for generating invoice reports
type ReportingService interface {
	// InvoiceReport aggregates the caller's invoices in USD.
	InvoiceReport(ctx context.Context, userID string) (*domain.InvoiceReport, error)
}
