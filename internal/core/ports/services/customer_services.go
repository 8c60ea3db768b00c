package services

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customers of the caller's workspace.
type CustomerReaderSvc interface {
	GetCustomer(ctx context.Context, userID string, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers of the caller's workspace.
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, userID string, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer. Its invoices stay, without a customer.
	DeleteCustomer(ctx context.Context, userID string, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
