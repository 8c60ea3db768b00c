package mapping

import (
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceMappingKeepsFXFields(t *testing.T) {
	issued := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	invoice := domain.Invoice{
		InvoiceID:     "inv-1",
		WorkspaceID:   "ws-1",
		InvoiceNumber: "INV-001",
		IssueDate:     &issued,
		Amount:        decimal.RequireFromString("500"),
		Currency:      "EUR",
		Status:        domain.InvoiceStatusSent,
		PaymentMethod: domain.PaymentMethodCard,
	}.WithFX(domain.FXFields{
		USDAmount: decimal.RequireFromString("585"),
		FXRate:    decimal.RequireFromString("1.17"),
		FXDate:    "2026-01-10",
		FXSource:  domain.FXSourceAPI,
	})

	m := ToModelInvoice(invoice)
	assert.False(t, m.CustomerID.Valid)
	assert.True(t, m.IssueDate.Valid)
	assert.True(t, m.USDAmount.Valid)
	assert.Equal(t, "api", m.FXSource.String)

	back := ToDomainInvoice(m)
	require.True(t, back.IsUSDConverted())
	assert.True(t, back.USDAmount.Equal(decimal.RequireFromString("585")))
	assert.Equal(t, "2026-01-10", *back.FXDate)
	assert.Equal(t, issued, *back.IssueDate)
	assert.Nil(t, back.PaidDate)
}

func TestInvoiceMappingIgnoresPartialConversion(t *testing.T) {
	m := ToModelInvoice(domain.Invoice{InvoiceID: "inv-2", Currency: "EUR"})
	m.USDAmount = decimal.NewNullDecimal(decimal.RequireFromString("10"))

	back := ToDomainInvoice(m)

	assert.Nil(t, back.USDAmount)
	assert.Nil(t, back.FXSource)
}

func TestInvoiceItemsKeepOrder(t *testing.T) {
	items := []domain.InvoiceItem{
		{InvoiceItemID: "b", Description: "second"},
		{InvoiceItemID: "a", Description: "first"},
	}

	m := ToModelInvoiceItems(items)
	assert.Equal(t, 0, m[0].Position)
	assert.Equal(t, 1, m[1].Position)
	assert.Equal(t, items, ToDomainInvoiceItems(m))
}
