package mapping

import (
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/models"
)

// ToModelCustomer converts a domain.Customer to a models.Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Company:     d.Company,
		Address:     d.Address,
		TaxID:       d.TaxID,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a models.Customer to a domain.Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Company:     m.Company,
		Address:     m.Address,
		TaxID:       m.TaxID,
		Status:      domain.CustomerStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
