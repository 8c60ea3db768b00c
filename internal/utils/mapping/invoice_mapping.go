package mapping

import (
	"database/sql"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelInvoice converts a domain.Invoice to a models.Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:     d.InvoiceID,
		WorkspaceID:   d.WorkspaceID,
		CustomerID:    sql.NullString{String: d.CustomerID, Valid: d.CustomerID != ""},
		InvoiceNumber: d.InvoiceNumber,
		IssueDate:     toNullTime(d.IssueDate),
		DueDate:       d.DueDate,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Status:        string(d.Status),
		PaymentMethod: string(d.PaymentMethod),
		Description:   d.Description,
		Notes:         d.Notes,
		PaidDate:      toNullTime(d.PaidDate),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.USDAmount != nil {
		m.USDAmount = decimal.NewNullDecimal(*d.USDAmount)
	}
	if d.FXRate != nil {
		m.FXRate = decimal.NewNullDecimal(*d.FXRate)
	}
	if d.FXDate != nil {
		m.FXDate = sql.NullString{String: *d.FXDate, Valid: true}
	}
	if d.FXSource != nil {
		m.FXSource = sql.NullString{String: string(*d.FXSource), Valid: true}
	}
	return m
}

// ToDomainInvoice converts a models.Invoice to a domain.Invoice. Items are left empty.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		WorkspaceID:   m.WorkspaceID,
		CustomerID:    m.CustomerID.String,
		InvoiceNumber: m.InvoiceNumber,
		IssueDate:     fromNullTime(m.IssueDate),
		DueDate:       m.DueDate,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        domain.InvoiceStatus(m.Status),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Description:   m.Description,
		Notes:         m.Notes,
		PaidDate:      fromNullTime(m.PaidDate),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	// A partially written conversion is ignored so the invoice gets converted again.
	if m.USDAmount.Valid && m.FXRate.Valid && m.FXDate.Valid && m.FXSource.Valid {
		d = d.WithFX(domain.FXFields{
			USDAmount: m.USDAmount.Decimal,
			FXRate:    m.FXRate.Decimal,
			FXDate:    m.FXDate.String,
			FXSource:  domain.FXSource(m.FXSource.String),
		})
	}
	return d
}

// ToModelInvoiceItems converts invoice lines, recording their display order.
func ToModelInvoiceItems(items []domain.InvoiceItem) []models.InvoiceItem {
	out := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = models.InvoiceItem{
			InvoiceItemID: item.InvoiceItemID,
			InvoiceID:     item.InvoiceID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Total:         item.Total,
			Position:      i,
		}
	}
	return out
}

// ToDomainInvoiceItems converts stored invoice lines. The input must already be in display order.
func ToDomainInvoiceItems(items []models.InvoiceItem) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = domain.InvoiceItem{
			InvoiceItemID: item.InvoiceItemID,
			InvoiceID:     item.InvoiceID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Total:         item.Total,
		}
	}
	return out
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
