package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode identifies a currency (e.g. "USD").
type CurrencyCode string

// DefaultCurrency is assumed for users that never picked a base currency.
const DefaultCurrency CurrencyCode = "USD"

// SupportedCurrencies is the display set offered to users. Rate lookups accept any code.
var SupportedCurrencies = []CurrencyCode{"USD", "EUR", "GBP", "NGN"}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeCurrencyCode upper-cases and trims a raw currency code.
func NormalizeCurrencyCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c CurrencyCode) String() string {
	return string(c)
}

// IsWellFormed reports whether the code looks like an ISO 4217 code.
func (c CurrencyCode) IsWellFormed() bool {
	return currencyCodePattern.MatchString(string(c))
}

// IsSupported reports whether the code belongs to the display set.
func (c CurrencyCode) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if s == c {
			return true
		}
	}
	return false
}

// Symbol returns the display symbol; anything outside the supported set shows as "$".
func (c CurrencyCode) Symbol() string {
	if c.IsSupported() {
		if cur := money.GetCurrency(string(c)); cur != nil {
			return cur.Grapheme
		}
	}
	return "$"
}

// FormatAmount renders an amount with the currency's grapheme and separators.
// Unsupported currencies are rendered like USD, matching Symbol.
func FormatAmount(amount decimal.Decimal, code CurrencyCode) string {
	display := code
	if !display.IsSupported() {
		display = DefaultCurrency
	}
	cur := money.GetCurrency(string(display))
	if cur == nil {
		return "$" + amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return formatLarge(amount, cur)
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatLarge renders amounts whose minor units overflow int64, following go-money's
// template and separators.
func formatLarge(amount decimal.Decimal, cur *money.Currency) string {
	fixed := amount.Abs().StringFixed(int32(cur.Fraction))
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(frac)
	}

	out := strings.Replace(cur.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if amount.IsNegative() {
		out = "-" + out
	}
	return out
}
