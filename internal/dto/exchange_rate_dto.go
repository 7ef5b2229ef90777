package dto

import (
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing a spot quote.
type ExchangeRateResponse struct {
	FromCurrencyCode domain.CurrencyCode `json:"fromCurrencyCode"`
	ToCurrencyCode   domain.CurrencyCode `json:"toCurrencyCode"`
	Rate             decimal.Decimal     `json:"rate"`
	Status           domain.RateStatus   `json:"status"`
	Reason           string              `json:"reason,omitempty"`
	FetchedAt        *time.Time          `json:"fetchedAt,omitempty"`
}

// ToExchangeRateResponse converts a domain.RateQuote to ExchangeRateResponse DTO
func ToExchangeRateResponse(q domain.RateQuote) ExchangeRateResponse {
	resp := ExchangeRateResponse{
		FromCurrencyCode: q.Base,
		ToCurrencyCode:   q.Quote,
		Rate:             q.Rate,
		Status:           q.Status,
		Reason:           q.Reason,
	}
	if !q.FetchedAt.IsZero() {
		fetchedAt := q.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	return resp
}
