package domain

// CustomerStatus marks whether a customer can still be billed.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValidCustomerStatus reports whether s is a known customer status.
func IsValidCustomerStatus(s CustomerStatus) bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer is a billable party inside a workspace.
type Customer struct {
	CustomerID  string         `json:"customerID"` // Primary Key (UUID)
	WorkspaceID string         `json:"workspaceID"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Company     string         `json:"company"`
	Address     string         `json:"address"`
	TaxID       string         `json:"taxID"`
	Status      CustomerStatus `json:"status"`
	Notes       string         `json:"notes"`
	AuditFields
}

// BelongsTo reports whether the customer is part of workspaceID.
func (c Customer) BelongsTo(workspaceID string) bool {
	return workspaceID != "" && c.WorkspaceID == workspaceID
}
