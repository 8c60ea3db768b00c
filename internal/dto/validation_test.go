package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type currencyHolder struct {
	Code string `validate:"omitempty,currency_code"`
}

func TestValidateCurrencyCode(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("currency_code", ValidateCurrencyCode))

	tests := []struct {
		code  string
		valid bool
	}{
		{"EUR", true},
		{"usd", true},
		{"", true},
		{"EURO", false},
		{"E1R", false},
		{"US", false},
	}
	for _, tt := range tests {
		err := v.Struct(currencyHolder{Code: tt.code})
		if tt.valid {
			assert.NoError(t, err, tt.code)
		} else {
			assert.Error(t, err, tt.code)
		}
	}
}

func TestToInvoiceItemsDefaults(t *testing.T) {
	items := ToInvoiceItems("inv-1", []InvoiceItemRequest{
		{Description: "Design", UnitPrice: mustDecimal(t, "120.50")},
		{Description: "Hosting", Quantity: mustDecimal(t, "3"), UnitPrice: mustDecimal(t, "10"), Total: mustDecimal(t, "25")},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "inv-1", items[0].InvoiceID)
	assert.True(t, items[0].Quantity.Equal(mustDecimal(t, "1")))
	assert.True(t, items[0].Total.Equal(mustDecimal(t, "120.50")))
	assert.True(t, items[1].Total.Equal(mustDecimal(t, "25")), "explicit totals are kept")
}
