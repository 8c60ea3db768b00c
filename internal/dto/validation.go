package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// IsCurrencyCode reports whether code looks like an ISO 4217 code, in either case.
func IsCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}

// ValidateCurrencyCode is the "currency_code" binding tag.
func ValidateCurrencyCode(fl validator.FieldLevel) bool {
	return IsCurrencyCode(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on gin's validator.
// Must run before any request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency_code", ValidateCurrencyCode)
}
