package services

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// ExchangeRateSvc looks up spot conversion rates.
type ExchangeRateSvc interface {
	// GetRate never fails on provider trouble; it reports it through RateQuote.Status instead.
	GetRate(ctx context.Context, base, quote domain.CurrencyCode) domain.RateQuote
}
