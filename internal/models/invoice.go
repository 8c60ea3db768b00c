package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the storage shape of an invoice row.
// The fx_* columns are NULL until the invoice has been converted.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	WorkspaceID   string          `db:"workspace_id"`
	CustomerID    sql.NullString  `db:"customer_id"` // Nullable
	InvoiceNumber string          `db:"invoice_number"`
	IssueDate     sql.NullTime    `db:"issue_date"` // Nullable
	DueDate       time.Time       `db:"due_date"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	Description   string          `db:"description"`
	Notes         string          `db:"notes"`
	PaidDate      sql.NullTime    `db:"paid_date"`

	USDAmount decimal.NullDecimal `db:"usd_amount"`
	FXRate    decimal.NullDecimal `db:"fx_rate"`
	FXDate    sql.NullString      `db:"fx_date"`
	FXSource  sql.NullString      `db:"fx_source"`
	AuditFields
}

// InvoiceItem is the storage shape of an invoice line.
type InvoiceItem struct {
	InvoiceItemID string          `db:"invoice_item_id"`
	InvoiceID     string          `db:"invoice_id"`
	Description   string          `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Total         decimal.Decimal `db:"total"`
	Position      int             `db:"position"`
}
