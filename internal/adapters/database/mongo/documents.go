package mongo

import (
	"fmt"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/models"
	"github.com/fiscly/fiscly_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// Decimals are stored as strings so no precision is lost to float64.

type invoiceItemDocument struct {
	InvoiceItemID string `bson:"invoiceItemId"`
	Description   string `bson:"description"`
	Quantity      string `bson:"quantity"`
	UnitPrice     string `bson:"unitPrice"`
	Total         string `bson:"total"`
}

type fxDocument struct {
	USDAmount string `bson:"usdAmount"`
	FXRate    string `bson:"fxRate"`
	FXDate    string `bson:"fxDate"`
	FXSource  string `bson:"fxSource"`
}

type invoiceDocument struct {
	InvoiceID     string                `bson:"_id"`
	WorkspaceID   string                `bson:"workspaceId"`
	CustomerID    string                `bson:"customerId,omitempty"`
	InvoiceNumber string                `bson:"invoiceNumber"`
	IssueDate     *time.Time            `bson:"issueDate,omitempty"`
	DueDate       time.Time             `bson:"dueDate"`
	Amount        string                `bson:"amount"`
	Currency      string                `bson:"currency"`
	Status        string                `bson:"status"`
	PaymentMethod string                `bson:"paymentMethod"`
	Description   string                `bson:"description"`
	Notes         string                `bson:"notes"`
	PaidDate      *time.Time            `bson:"paidDate,omitempty"`
	FX            *fxDocument           `bson:"fx,omitempty"`
	Items         []invoiceItemDocument `bson:"items"`
	models.AuditFields `bson:",inline"`
}

type workspaceDocument struct {
	WorkspaceID         string `bson:"_id"`
	OwnerUserID         string `bson:"ownerUserId"`
	Name                string `bson:"name"`
	DefaultCurrencyCode string `bson:"defaultCurrencyCode"`
	Email               string `bson:"email"`
	Address             string `bson:"address"`
	TaxID               string `bson:"taxId"`
	LogoURL             string `bson:"logoUrl"`
	models.AuditFields  `bson:",inline"`
}

type customerDocument struct {
	CustomerID         string `bson:"_id"`
	WorkspaceID        string `bson:"workspaceId"`
	Name               string `bson:"name"`
	Email              string `bson:"email"`
	Phone              string `bson:"phone"`
	Company            string `bson:"company"`
	Address            string `bson:"address"`
	TaxID              string `bson:"taxId"`
	Status             string `bson:"status"`
	Notes              string `bson:"notes"`
	models.AuditFields `bson:",inline"`
}

func newFXDocument(fx domain.FXFields) *fxDocument {
	return &fxDocument{
		USDAmount: fx.USDAmount.String(),
		FXRate:    fx.FXRate.String(),
		FXDate:    fx.FXDate,
		FXSource:  string(fx.FXSource),
	}
}

func toInvoiceDocument(d domain.Invoice) invoiceDocument {
	doc := invoiceDocument{
		InvoiceID:     d.InvoiceID,
		WorkspaceID:   d.WorkspaceID,
		CustomerID:    d.CustomerID,
		InvoiceNumber: d.InvoiceNumber,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Amount:        d.Amount.String(),
		Currency:      d.Currency,
		Status:        string(d.Status),
		PaymentMethod: string(d.PaymentMethod),
		Description:   d.Description,
		Notes:         d.Notes,
		PaidDate:      d.PaidDate,
		Items:         toItemDocuments(d.Items),
		AuditFields:   mapping.ToModelAuditFields(d.AuditFields),
	}
	if d.USDAmount != nil && d.FXRate != nil && d.FXDate != nil && d.FXSource != nil {
		doc.FX = newFXDocument(domain.FXFields{
			USDAmount: *d.USDAmount,
			FXRate:    *d.FXRate,
			FXDate:    *d.FXDate,
			FXSource:  *d.FXSource,
		})
	}
	return doc
}

func toItemDocuments(items []domain.InvoiceItem) []invoiceItemDocument {
	out := make([]invoiceItemDocument, len(items))
	for i, item := range items {
		out[i] = invoiceItemDocument{
			InvoiceItemID: item.InvoiceItemID,
			Description:   item.Description,
			Quantity:      item.Quantity.String(),
			UnitPrice:     item.UnitPrice.String(),
			Total:         item.Total.String(),
		}
	}
	return out
}

func (doc invoiceDocument) toDomain() (domain.Invoice, error) {
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invoice %s: bad amount %q: %w", doc.InvoiceID, doc.Amount, err)
	}
	invoice := domain.Invoice{
		InvoiceID:     doc.InvoiceID,
		WorkspaceID:   doc.WorkspaceID,
		CustomerID:    doc.CustomerID,
		InvoiceNumber: doc.InvoiceNumber,
		IssueDate:     utc(doc.IssueDate),
		DueDate:       doc.DueDate.UTC(),
		Amount:        amount,
		Currency:      doc.Currency,
		Status:        domain.InvoiceStatus(doc.Status),
		PaymentMethod: domain.PaymentMethod(doc.PaymentMethod),
		Description:   doc.Description,
		Notes:         doc.Notes,
		PaidDate:      utc(doc.PaidDate),
		AuditFields:   mapping.ToDomainAuditFields(doc.AuditFields),
	}

	for _, item := range doc.Items {
		parsed, err := parseDecimals(item.Quantity, item.UnitPrice, item.Total)
		if err != nil {
			return domain.Invoice{}, fmt.Errorf("invoice %s item %s: %w", doc.InvoiceID, item.InvoiceItemID, err)
		}
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			InvoiceItemID: item.InvoiceItemID,
			InvoiceID:     doc.InvoiceID,
			Description:   item.Description,
			Quantity:      parsed[0],
			UnitPrice:     parsed[1],
			Total:         parsed[2],
		})
	}

	if doc.FX != nil {
		parsed, err := parseDecimals(doc.FX.USDAmount, doc.FX.FXRate)
		if err != nil {
			// An unreadable conversion is dropped so the invoice gets converted again.
			return invoice, nil
		}
		invoice = invoice.WithFX(domain.FXFields{
			USDAmount: parsed[0],
			FXRate:    parsed[1],
			FXDate:    doc.FX.FXDate,
			FXSource:  domain.FXSource(doc.FX.FXSource),
		})
	}
	return invoice, nil
}

func toWorkspaceDocument(d domain.Workspace) workspaceDocument {
	return workspaceDocument{
		WorkspaceID:         d.WorkspaceID,
		OwnerUserID:         d.OwnerUserID,
		Name:                d.Name,
		DefaultCurrencyCode: d.DefaultCurrencyCode,
		Email:               d.Email,
		Address:             d.Address,
		TaxID:               d.TaxID,
		LogoURL:             d.LogoURL,
		AuditFields:         mapping.ToModelAuditFields(d.AuditFields),
	}
}

func (doc workspaceDocument) toDomain() domain.Workspace {
	return domain.Workspace{
		WorkspaceID:         doc.WorkspaceID,
		OwnerUserID:         doc.OwnerUserID,
		Name:                doc.Name,
		DefaultCurrencyCode: doc.DefaultCurrencyCode,
		Email:               doc.Email,
		Address:             doc.Address,
		TaxID:               doc.TaxID,
		LogoURL:             doc.LogoURL,
		AuditFields:         mapping.ToDomainAuditFields(doc.AuditFields),
	}
}

func toCustomerDocument(d domain.Customer) customerDocument {
	return customerDocument{
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
		AuditFields: mapping.ToModelAuditFields(d.AuditFields),
	}
}

func (doc customerDocument) toDomain() domain.Customer {
	return domain.Customer{
		CustomerID:  doc.CustomerID,
		WorkspaceID: doc.WorkspaceID,
		Name:        doc.Name,
		Email:       doc.Email,
		Phone:       doc.Phone,
		Company:     doc.Company,
		Address:     doc.Address,
		TaxID:       doc.TaxID,
		Status:      domain.CustomerStatus(doc.Status),
		Notes:       doc.Notes,
		AuditFields: mapping.ToDomainAuditFields(doc.AuditFields),
	}
}

func parseDecimals(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("bad decimal %q: %w", v, err)
		}
		out[i] = d
	}
	return out, nil
}

// utc normalises a stored time; the driver decodes BSON dates in local time.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
