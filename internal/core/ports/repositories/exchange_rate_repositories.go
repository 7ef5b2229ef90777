package repositories

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// ExchangeRateReader fetches the latest rate table for a base currency from an external source.
type ExchangeRateReader interface {
	FetchRateTable(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, error)
}
