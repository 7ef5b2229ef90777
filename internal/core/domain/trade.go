package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TradeSide is the direction of a trade.
type TradeSide string

const (
	Long  TradeSide = "long"
	Short TradeSide = "short"
)

// ParseTradeSide accepts long/short and the buy/sell aliases.
func ParseTradeSide(raw string) (TradeSide, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "long", "buy":
		return Long, nil
	case "short", "sell":
		return Short, nil
	default:
		return "", fmt.Errorf("%w: trade side must be long or short, got %q", apperrors.ErrValidation, raw)
	}
}

const (
	goldContractSize     = 100
	bitcoinContractSize  = 1
	standardContractSize = 100000
)

var symbolSeparators = strings.NewReplacer(" ", "", "/", "", "-", "", "_", "", ":", "")

// NormalizeSymbol upper-cases a symbol and strips separators, so "xau/usd" becomes "XAUUSD".
func NormalizeSymbol(symbol string) string {
	return symbolSeparators.Replace(strings.ToUpper(strings.TrimSpace(symbol)))
}

// ContractSize returns the notional units per lot for a symbol.
// Gold is 100 oz, bitcoin is 1 coin, everything else is a standard forex lot.
func ContractSize(symbol string) decimal.Decimal {
	s := NormalizeSymbol(symbol)
	switch {
	case strings.Contains(s, "XAUUSD"):
		return decimal.NewFromInt(goldContractSize)
	case strings.Contains(s, "BTCUSD"):
		return decimal.NewFromInt(bitcoinContractSize)
	default:
		return decimal.NewFromInt(standardContractSize)
	}
}

// RawProfitLoss is the USD P&L of a closed position before any currency conversion.
func RawProfitLoss(symbol string, side TradeSide, quantity, entryPrice, exitPrice decimal.Decimal) decimal.Decimal {
	move := exitPrice.Sub(entryPrice)
	if side == Short {
		move = entryPrice.Sub(exitPrice)
	}
	return move.Mul(quantity).Mul(ContractSize(symbol))
}

// Trade is a single logged position.
// ProfitLoss is nil while the position is open and is stored in the profile currency once set.
type Trade struct {
	TradeID    string           `json:"tradeID"`
	UserID     string           `json:"userID"`
	Symbol     string           `json:"symbol"`
	Side       TradeSide        `json:"side"`
	Quantity   decimal.Decimal  `json:"quantity"`
	EntryPrice decimal.Decimal  `json:"entryPrice"`
	ExitPrice  *decimal.Decimal `json:"exitPrice,omitempty"`
	Leverage   *decimal.Decimal `json:"leverage,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	ProfitLoss *decimal.Decimal `json:"profitLoss,omitempty"`
	TradeDate  time.Time        `json:"tradeDate"`
	AuditFields
}

// IsClosed reports whether the trade counts towards P&L aggregates.
func (t Trade) IsClosed() bool {
	return t.ProfitLoss != nil
}
