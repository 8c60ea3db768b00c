package dto

import (
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to add a customer to a workspace.
type CreateCustomerRequest struct {
	Name    string                `json:"name" binding:"required,max=255"`
	Email   string                `json:"email" binding:"required,email"`
	Phone   string                `json:"phone" binding:"omitempty,max=64"`
	Company string                `json:"company" binding:"omitempty,max=255"`
	Address string                `json:"address"`
	TaxID   string                `json:"taxID" binding:"omitempty,max=64"`
	Status  domain.CustomerStatus `json:"status" binding:"omitempty,oneof=active inactive"` // Defaults to active
	Notes   string                `json:"notes"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name    *string                `json:"name" binding:"omitempty,max=255"`
	Email   *string                `json:"email" binding:"omitempty,email"`
	Phone   *string                `json:"phone" binding:"omitempty,max=64"`
	Company *string                `json:"company" binding:"omitempty,max=255"`
	Address *string                `json:"address"`
	TaxID   *string                `json:"taxID" binding:"omitempty,max=64"`
	Status  *domain.CustomerStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes   *string                `json:"notes"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string                `json:"customerID"`
	WorkspaceID   string                `json:"workspaceID"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Company       string                `json:"company"`
	Address       string                `json:"address"`
	TaxID         string                `json:"taxID"`
	Status        domain.CustomerStatus `json:"status"`
	Notes         string                `json:"notes"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		WorkspaceID:   c.WorkspaceID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Company:       c.Company,
		Address:       c.Address,
		TaxID:         c.TaxID,
		Status:        c.Status,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
