package dto

import (
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed for updating a profile.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=255"`
}

// ChangeCurrencyRequest carries the new base currency.
type ChangeCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// CurrencyOption is one entry of the currency picker.
type CurrencyOption struct {
	Code   domain.CurrencyCode `json:"code"`
	Symbol string              `json:"symbol"`
}

// ProfileResponse defines the structure for API responses containing profile details.
type ProfileResponse struct {
	UserID              string              `json:"userID"`
	FullName            string              `json:"fullName"`
	Currency            domain.CurrencyCode `json:"currency"`
	CurrencySymbol      string              `json:"currencySymbol"`
	SupportedCurrencies []CurrencyOption    `json:"supportedCurrencies"`
}

// ToProfileResponse converts a domain.UserProfile to ProfileResponse DTO
func ToProfileResponse(p *domain.UserProfile) ProfileResponse {
	options := make([]CurrencyOption, len(domain.SupportedCurrencies))
	for i, code := range domain.SupportedCurrencies {
		options[i] = CurrencyOption{Code: code, Symbol: code.Symbol()}
	}
	return ProfileResponse{
		UserID:              p.UserID,
		FullName:            p.FullName,
		Currency:            p.Currency,
		CurrencySymbol:      p.Currency.Symbol(),
		SupportedCurrencies: options,
	}
}
