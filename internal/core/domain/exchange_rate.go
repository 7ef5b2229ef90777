package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateStatus tells whether a quote carries a usable rate.
type RateStatus string

const (
	RateKnown       RateStatus = "known"
	RateUnavailable RateStatus = "unavailable"
)

// RateQuote is the outcome of a rate lookup: units of Quote per one unit of Base.
// An unavailable quote has a zero Rate and a Reason; callers pick a fallback via Resolve.
type RateQuote struct {
	Base      CurrencyCode    `json:"base"`
	Quote     CurrencyCode    `json:"quote"`
	Rate      decimal.Decimal `json:"rate"`
	Status    RateStatus      `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// KnownRate builds a usable quote.
func KnownRate(base, quote CurrencyCode, rate decimal.Decimal, fetchedAt time.Time) RateQuote {
	return RateQuote{Base: base, Quote: quote, Rate: rate, Status: RateKnown, FetchedAt: fetchedAt}
}

// UnavailableRate builds a quote for a failed lookup.
func UnavailableRate(base, quote CurrencyCode, reason string) RateQuote {
	return RateQuote{Base: base, Quote: quote, Rate: decimal.Zero, Status: RateUnavailable, Reason: reason}
}

// IsKnown reports whether the quote carries a real rate.
func (q RateQuote) IsKnown() bool {
	return q.Status == RateKnown
}

// RateFallback decides what an unavailable quote resolves to.
type RateFallback string

const (
	// FallbackZero values unknown amounts at zero (best-effort display valuation).
	FallbackZero RateFallback = "zero"
	// FallbackIdentity leaves amounts unchanged (bulk mutations).
	FallbackIdentity RateFallback = "identity"
	// FallbackAbort turns an unavailable rate into apperrors.ErrRateUnavailable.
	FallbackAbort RateFallback = "abort"
)

// ParseRateFallback parses a configured fallback policy name.
func ParseRateFallback(raw string) (RateFallback, error) {
	switch p := RateFallback(strings.ToLower(strings.TrimSpace(raw))); p {
	case FallbackZero, FallbackIdentity, FallbackAbort:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown rate fallback %q", apperrors.ErrValidation, raw)
	}
}

// Resolve returns the rate to multiply by, applying policy when the quote is unavailable.
func (q RateQuote) Resolve(policy RateFallback) (decimal.Decimal, error) {
	if q.IsKnown() {
		return q.Rate, nil
	}
	switch policy {
	case FallbackZero:
		return decimal.Zero, nil
	case FallbackIdentity:
		return decimal.NewFromInt(1), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s to %s: %s", apperrors.ErrRateUnavailable, q.Base, q.Quote, q.Reason)
	}
}

// RateTable is the provider's answer for one base currency.
type RateTable struct {
	Base      CurrencyCode
	Rates     map[CurrencyCode]decimal.Decimal
	FetchedAt time.Time
}

// Lookup returns the positive rate for quote, if present.
func (t RateTable) Lookup(quote CurrencyCode) (decimal.Decimal, bool) {
	rate, ok := t.Rates[quote]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}
