package repositories

import (
	"context"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomersByWorkspace returns a workspace's customers ordered by name.
	ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
