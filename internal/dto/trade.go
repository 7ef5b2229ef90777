package dto

import (
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LogTradeRequest defines the structure for logging a trade.
// ProfitLoss, when set, is taken as already denominated in the user's currency and
// bypasses the computed value. Without it and without ExitPrice the trade stays open.
type LogTradeRequest struct {
	Symbol     string           `json:"symbol" binding:"required,max=32"`
	Side       string           `json:"side" binding:"required,oneof=long short buy sell LONG SHORT BUY SELL"`
	Quantity   decimal.Decimal  `json:"quantity" binding:"required"`
	EntryPrice decimal.Decimal  `json:"entryPrice" binding:"required"`
	ExitPrice  *decimal.Decimal `json:"exitPrice"`
	Leverage   *decimal.Decimal `json:"leverage"`
	Notes      *string          `json:"notes" binding:"omitempty,max=2000"`
	ProfitLoss *decimal.Decimal `json:"profitLoss"`
	TradeDate  *time.Time       `json:"tradeDate"`
}

// ListTradesParams defines query parameters for listing trades.
type ListTradesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// TradeResponse defines the structure for API responses containing trade details.
type TradeResponse struct {
	TradeID             string           `json:"tradeID"`
	Symbol              string           `json:"symbol"`
	Side                domain.TradeSide `json:"side"`
	Quantity            decimal.Decimal  `json:"quantity"`
	EntryPrice          decimal.Decimal  `json:"entryPrice"`
	ExitPrice           *decimal.Decimal `json:"exitPrice,omitempty"`
	Leverage            *decimal.Decimal `json:"leverage,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
	ProfitLoss          *decimal.Decimal `json:"profitLoss,omitempty"`
	FormattedProfitLoss string           `json:"formattedProfitLoss,omitempty"`
	Status              string           `json:"status"` // open or closed
	TradeDate           time.Time        `json:"tradeDate"`
}

// ListTradesResponse wraps a page of trades.
type ListTradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToTradeResponse converts a domain.Trade to TradeResponse DTO
func ToTradeResponse(t *domain.Trade, currency domain.CurrencyCode) TradeResponse {
	resp := TradeResponse{
		TradeID:    t.TradeID,
		Symbol:     t.Symbol,
		Side:       t.Side,
		Quantity:   t.Quantity,
		EntryPrice: t.EntryPrice,
		ExitPrice:  t.ExitPrice,
		Leverage:   t.Leverage,
		Notes:      t.Notes,
		ProfitLoss: t.ProfitLoss,
		Status:     "open",
		TradeDate:  t.TradeDate,
	}
	if t.IsClosed() {
		resp.Status = "closed"
		resp.FormattedProfitLoss = domain.FormatAmount(*t.ProfitLoss, currency)
	}
	return resp
}

// ToListTradeResponse converts a slice of domain.Trade to TradeResponse DTOs
func ToListTradeResponse(trades []domain.Trade, currency domain.CurrencyCode) []TradeResponse {
	responses := make([]TradeResponse, len(trades))
	for i := range trades {
		responses[i] = ToTradeResponse(&trades[i], currency)
	}
	return responses
}
