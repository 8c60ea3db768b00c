package mapping

import (
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/models"
)

// ToModelWorkspace converts a domain.Workspace to a models.Workspace
func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID:         d.WorkspaceID,
		OwnerUserID:         d.OwnerUserID,
		Name:                d.Name,
		DefaultCurrencyCode: d.DefaultCurrencyCode,
		Email:               d.Email,
		Address:             d.Address,
		TaxID:               d.TaxID,
		LogoURL:             d.LogoURL,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkspace converts a models.Workspace to a domain.Workspace
func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID:         m.WorkspaceID,
		OwnerUserID:         m.OwnerUserID,
		Name:                m.Name,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		Email:               m.Email,
		Address:             m.Address,
		TaxID:               m.TaxID,
		LogoURL:             m.LogoURL,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
