package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/google/uuid"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
	fx           portssvc.FXConversionSvc
	now          func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceClock overrides the source of audit timestamps.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	workspaceRepo portsrepo.WorkspaceReader,
	customerRepo portsrepo.CustomerReader,
	fx portssvc.FXConversionSvc,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		BaseService:  BaseService{WorkspaceReader: workspaceRepo},
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		fx:           fx,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}
	if err := s.checkCustomer(ctx, workspace.WorkspaceID, req.CustomerID); err != nil {
		return nil, err
	}

	now := s.now()
	invoiceID := uuid.NewString()
	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		WorkspaceID:   workspace.WorkspaceID,
		CustomerID:    req.CustomerID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Amount:        req.Amount,
		Currency:      strings.ToUpper(strings.TrimSpace(req.Currency)),
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		Notes:         req.Notes,
		PaidDate:      req.PaidDate,
		Items:         dto.ToInvoiceItems(invoiceID, req.Items),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if invoice.Currency == "" {
		invoice.Currency = workspace.DefaultCurrencyCode
	}
	invoice.Currency = invoice.EffectiveCurrency()
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusDraft
	}
	if invoice.PaymentMethod == "" {
		invoice.PaymentMethod = domain.PaymentMethodBankTransfer
	}
	if invoice.Amount.IsZero() && len(invoice.Items) > 0 {
		invoice.Amount = invoice.ItemsTotal()
	}
	if err := validateInvoice(invoice); err != nil {
		return nil, err
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceItemID = uuid.NewString()
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("workspace_id", workspace.WorkspaceID),
			slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("currency", invoice.Currency))
	return s.convert(ctx, invoice), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	return s.convert(ctx, *invoice), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string, limit int, offset int) ([]domain.Invoice, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoicesByWorkspace(ctx, workspace.WorkspaceID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	results := s.fx.EnsureUSDConversionBatch(ctx, invoices)
	s.logUnpersisted(ctx, results)
	return ConvertedInvoices(results), nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	before := *invoice
	if req.CustomerID != nil && *req.CustomerID != "" && *req.CustomerID != before.CustomerID {
		if err := s.checkCustomer(ctx, invoice.WorkspaceID, *req.CustomerID); err != nil {
			return nil, err
		}
	}
	applyInvoiceUpdate(invoice, req)
	if err := validateInvoice(*invoice); err != nil {
		return nil, err
	}
	if fxInputsChanged(before, *invoice) {
		s.LogDebug(ctx, "Invoice amount, currency or issue date changed, clearing conversion",
			slog.String("invoice_id", invoiceID))
		invoice.ClearFX()
	}
	invoice.Touch(userID, s.now())

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	if req.Items != nil {
		items := dto.ToInvoiceItems(invoiceID, *req.Items)
		for i := range items {
			items[i].InvoiceItemID = uuid.NewString()
		}
		if err := s.invoiceRepo.ReplaceInvoiceItems(ctx, invoiceID, items); err != nil {
			s.LogError(ctx, err, "Failed to replace invoice items", slog.String("invoice_id", invoiceID))
			return nil, fmt.Errorf("failed to replace invoice items: %w", err)
		}
		invoice.Items = items
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return s.convert(ctx, *invoice), nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, userID string, invoiceID string) error {
	if _, err := s.findOwnedInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) BackfillWorkspace(ctx context.Context, workspaceID string) ([]domain.ConversionResult, error) {
	if _, err := s.WorkspaceReader.FindWorkspaceByID(ctx, workspaceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
		}
		s.LogError(ctx, err, "Failed to look up workspace for backfill", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to look up workspace: %w", err)
	}

	invoices, err := s.invoiceRepo.ListInvoicesByWorkspace(ctx, workspaceID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for backfill", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	results := s.fx.EnsureUSDConversionBatch(ctx, invoices)
	s.logUnpersisted(ctx, results)
	s.LogInfo(ctx, "Workspace backfill finished",
		slog.String("workspace_id", workspaceID),
		slog.Int("invoice_count", len(results)))
	return results, nil
}

// findOwnedInvoice loads an invoice and hides it unless it belongs to the caller's workspace.
func (s *invoiceService) findOwnedInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.WorkspaceID != workspace.WorkspaceID {
		s.LogWarn(ctx, "Invoice requested from another workspace",
			slog.String("invoice_id", invoiceID),
			slog.String("user_id", userID))
		return nil, apperrors.NewNotFoundError("invoice not found")
	}
	return invoice, nil
}

// checkCustomer fails with a validation error unless customerID is a customer of workspaceID.
func (s *invoiceService) checkCustomer(ctx context.Context, workspaceID, customerID string) error {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("customer " + customerID + " not found in workspace")
		}
		s.LogError(ctx, err, "Failed to look up customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to look up customer: %w", err)
	}
	if !customer.BelongsTo(workspaceID) {
		s.LogWarn(ctx, "Invoice references a customer of another workspace",
			slog.String("customer_id", customerID),
			slog.String("workspace_id", workspaceID))
		return apperrors.NewValidationError("customer " + customerID + " not found in workspace")
	}
	return nil
}

func (s *invoiceService) convert(ctx context.Context, invoice domain.Invoice) *domain.Invoice {
	result := s.fx.EnsureUSDConversion(ctx, invoice)
	s.logUnpersisted(ctx, []domain.ConversionResult{result})
	return &result.Invoice
}

func (s *invoiceService) logUnpersisted(ctx context.Context, results []domain.ConversionResult) {
	for _, r := range results {
		if r.Reason == "" {
			continue
		}
		s.LogWarn(ctx, "Invoice returned without a stored conversion",
			slog.String("invoice_id", r.Invoice.InvoiceID),
			slog.String("outcome", string(r.Outcome)),
			slog.String("reason", r.Reason))
	}
}

func applyInvoiceUpdate(invoice *domain.Invoice, req dto.UpdateInvoiceRequest) {
	if req.CustomerID != nil {
		invoice.CustomerID = *req.CustomerID
	}
	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.IssueDate != nil {
		issueDate := *req.IssueDate
		invoice.IssueDate = &issueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Currency != nil {
		invoice.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		invoice.PaymentMethod = *req.PaymentMethod
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.PaidDate != nil {
		paidDate := *req.PaidDate
		invoice.PaidDate = &paidDate
	}
}

func fxInputsChanged(before, after domain.Invoice) bool {
	if !before.Amount.Equal(after.Amount) || before.EffectiveCurrency() != after.EffectiveCurrency() {
		return true
	}
	var zero time.Time
	return !before.IssueDateOr(zero).Equal(after.IssueDateOr(zero))
}

func validateInvoice(invoice domain.Invoice) error {
	if invoice.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if !domain.IsValidInvoiceStatus(invoice.Status) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown invoice status %q", invoice.Status))
	}
	if !domain.IsValidPaymentMethod(invoice.PaymentMethod) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown payment method %q", invoice.PaymentMethod))
	}
	if strings.TrimSpace(invoice.InvoiceNumber) == "" {
		return apperrors.NewValidationError("invoice number is required")
	}
	return nil
}
