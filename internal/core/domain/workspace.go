package domain

import "time"

// Workspace is a tenant's company profile. It owns customers and invoices.
type Workspace struct {
	WorkspaceID         string `json:"workspaceID"`         // Primary Key (UUID)
	OwnerUserID         string `json:"ownerUserID"`         // One workspace per user
	Name                string `json:"name"`                // Company name printed on invoices
	DefaultCurrencyCode string `json:"defaultCurrencyCode"` // Currency new invoices start in
	Email               string `json:"email"`
	Address             string `json:"address"`
	TaxID               string `json:"taxID"`
	LogoURL             string `json:"logoURL"`
	AuditFields
}

// Defaults for a workspace created on first access.
const (
	DefaultWorkspaceName = "My Company"
)

// NewDefaultWorkspace builds the profile a user gets before filling in their own.
func NewDefaultWorkspace(workspaceID, ownerUserID string, now time.Time) Workspace {
	return Workspace{
		WorkspaceID:         workspaceID,
		OwnerUserID:         ownerUserID,
		Name:                DefaultWorkspaceName,
		DefaultCurrencyCode: BaseCurrency,
		AuditFields:         NewAuditFields(ownerUserID, now),
	}
}

// OwnedBy reports whether userID owns the workspace.
func (w Workspace) OwnedBy(userID string) bool {
	return userID != "" && w.OwnerUserID == userID
}
