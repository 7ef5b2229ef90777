package handlers

import (
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateCurrencyCode accepts any three-letter code, ignoring case and surrounding spaces.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.NormalizeCurrencyCode(fl.Field().String()).IsWellFormed()
}

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency", validateCurrencyCode)
}
