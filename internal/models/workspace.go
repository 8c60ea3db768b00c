package models

// Workspace is the storage shape of a workspace (company profile).
type Workspace struct {
	WorkspaceID         string `db:"workspace_id"`
	OwnerUserID         string `db:"owner_user_id"`
	Name                string `db:"name"`
	DefaultCurrencyCode string `db:"default_currency_code"`
	Email               string `db:"email"`
	Address             string `db:"address"`
	TaxID               string `db:"tax_id"`
	LogoURL             string `db:"logo_url"`
	AuditFields
}
