package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateQuote_Resolve(t *testing.T) {
	known := domain.KnownRate("USD", "EUR", decimal.RequireFromString("0.92"), time.Now())
	unavailable := domain.UnavailableRate("USD", "EUR", "provider down")

	tests := []struct {
		name    string
		quote   domain.RateQuote
		policy  domain.RateFallback
		want    decimal.Decimal
		wantErr error
	}{
		{name: "known ignores zero policy", quote: known, policy: domain.FallbackZero, want: decimal.RequireFromString("0.92")},
		{name: "known ignores abort policy", quote: known, policy: domain.FallbackAbort, want: decimal.RequireFromString("0.92")},
		{name: "unavailable with zero", quote: unavailable, policy: domain.FallbackZero, want: decimal.Zero},
		{name: "unavailable with identity", quote: unavailable, policy: domain.FallbackIdentity, want: decimal.NewFromInt(1)},
		{name: "unavailable with abort", quote: unavailable, policy: domain.FallbackAbort, wantErr: apperrors.ErrRateUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.quote.Resolve(tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseRateFallback(t *testing.T) {
	p, err := domain.ParseRateFallback(" Identity ")
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackIdentity, p)

	_, err = domain.ParseRateFallback("guess")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRateTable_Lookup(t *testing.T) {
	table := domain.RateTable{
		Base: "USD",
		Rates: map[domain.CurrencyCode]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.92"),
			"XXX": decimal.Zero,
		},
	}

	rate, ok := table.Lookup("EUR")
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.92").Equal(rate))

	_, ok = table.Lookup("XXX")
	assert.False(t, ok, "non-positive rates are not usable")

	_, ok = table.Lookup("GBP")
	assert.False(t, ok)
}
