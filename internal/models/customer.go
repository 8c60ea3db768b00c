package models

// Customer is the storage shape of a workspace customer.
type Customer struct {
	CustomerID  string `db:"customer_id"`
	WorkspaceID string `db:"workspace_id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Company     string `db:"company"`
	Address     string `db:"address"`
	TaxID       string `db:"tax_id"`
	Status      string `db:"status"`
	Notes       string `db:"notes"`
	AuditFields
}
