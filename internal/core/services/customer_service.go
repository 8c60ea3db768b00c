package services

import (
	"context"
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

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	now          func() time.Time
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithCustomerClock overrides the source of audit timestamps.
func WithCustomerClock(now func() time.Time) CustomerServiceOption {
	return func(s *customerService) {
		s.now = now
	}
}

// NewCustomerService creates a new customer service with the provided options
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	workspaceRepo portsrepo.WorkspaceReader,
	options ...CustomerServiceOption,
) portssvc.CustomerSvcFacade {
	svc := &customerService{
		BaseService:  BaseService{WorkspaceReader: workspaceRepo},
		customerRepo: customerRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		WorkspaceID: workspace.WorkspaceID,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       req.Phone,
		Company:     req.Company,
		Address:     req.Address,
		TaxID:       req.TaxID,
		Status:      req.Status,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if customer.Status == "" {
		customer.Status = domain.CustomerStatusActive
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	s.LogInfo(ctx, "Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.String("workspace_id", workspace.WorkspaceID))
	return &customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, userID string, customerID string) (*domain.Customer, error) {
	return s.findOwnedCustomer(ctx, userID, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListCustomersByWorkspace(ctx, workspace.WorkspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, userID string, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.findOwnedCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Company != nil {
		customer.Company = *req.Company
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.TaxID != nil {
		customer.TaxID = *req.TaxID
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if err := validateCustomer(*customer); err != nil {
		return nil, err
	}
	customer.Touch(userID, s.now())

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	s.LogInfo(ctx, "Customer updated", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, userID string, customerID string) error {
	if _, err := s.findOwnedCustomer(ctx, userID, customerID); err != nil {
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}

// findOwnedCustomer loads a customer and hides it unless it belongs to the caller's workspace.
func (s *customerService) findOwnedCustomer(ctx context.Context, userID, customerID string) (*domain.Customer, error) {
	workspace, err := s.ResolveWorkspace(ctx, userID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.BelongsTo(workspace.WorkspaceID) {
		s.LogWarn(ctx, "Customer requested from another workspace",
			slog.String("customer_id", customerID),
			slog.String("user_id", userID))
		return nil, apperrors.NewNotFoundError("customer not found")
	}
	return customer, nil
}

func validateCustomer(c domain.Customer) error {
	if c.Name == "" {
		return apperrors.NewValidationError("customer name is required")
	}
	if c.Email == "" {
		return apperrors.NewValidationError("customer email is required")
	}
	if !domain.IsValidCustomerStatus(c.Status) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown customer status %q", c.Status))
	}
	return nil
}
