package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a row of the trades table. Nullable numerics use decimal.NullDecimal.
type Trade struct {
	TradeID    string              `db:"trade_id"`
	UserID     string              `db:"user_id"`
	Symbol     string              `db:"symbol"`
	Side       string              `db:"side"`
	Quantity   decimal.Decimal     `db:"quantity"`
	EntryPrice decimal.Decimal     `db:"entry_price"`
	ExitPrice  decimal.NullDecimal `db:"exit_price"`
	Leverage   decimal.NullDecimal `db:"leverage"`
	ProfitLoss decimal.NullDecimal `db:"profit_loss"`
	Notes      *string             `db:"notes"`
	TradeDate  time.Time           `db:"trade_date"`
	AuditFields
}
