package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService turns provider answers into quotes and never returns provider errors.
type exchangeRateService struct {
	BaseService
	reader portsrepo.ExchangeRateReader
}

// NewExchangeRateService creates a new exchange rate gateway on top of reader.
func NewExchangeRateService(reader portsrepo.ExchangeRateReader) portssvc.ExchangeRateSvc {
	return &exchangeRateService{reader: reader}
}

var _ portssvc.ExchangeRateSvc = (*exchangeRateService)(nil)

func (s *exchangeRateService) GetRate(ctx context.Context, base, quote domain.CurrencyCode) domain.RateQuote {
	base = domain.NormalizeCurrencyCode(base.String())
	quote = domain.NormalizeCurrencyCode(quote.String())

	if base == quote {
		return domain.KnownRate(base, quote, decimal.NewFromInt(1), s.now())
	}

	logAttrs := []any{slog.String("base", base.String()), slog.String("quote", quote.String())}

	if !base.IsWellFormed() || !quote.IsWellFormed() {
		s.LogWarn(ctx, "Exchange rate requested for malformed currency code", logAttrs...)
		return domain.UnavailableRate(base, quote, "malformed currency code")
	}

	table, err := s.reader.FetchRateTable(ctx, base)
	if err != nil {
		s.LogWarn(ctx, "Exchange rate lookup failed", append(logAttrs, slog.String("error", err.Error()))...)
		return domain.UnavailableRate(base, quote, err.Error())
	}

	rate, ok := table.Lookup(quote)
	if !ok {
		s.LogWarn(ctx, "Exchange rate missing from provider response", logAttrs...)
		return domain.UnavailableRate(base, quote, "no positive rate for "+quote.String())
	}

	s.LogDebug(ctx, "Exchange rate resolved", append(logAttrs, slog.String("rate", rate.String()))...)
	return domain.KnownRate(base, quote, rate, table.FetchedAt)
}
