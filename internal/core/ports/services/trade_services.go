package services

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
)

// TradeReaderSvc defines read operations for trades
type TradeReaderSvc interface {
	GetTrade(ctx context.Context, userID string, tradeID string) (*domain.Trade, error)
	ListTrades(ctx context.Context, userID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error)
}

// TradeWriterSvc defines write operations for trades
type TradeWriterSvc interface {
	// LogTrade persists one trade, deriving its profit/loss in the user's currency when possible.
	LogTrade(ctx context.Context, userID string, req dto.LogTradeRequest) (*domain.Trade, error)
	DeleteTrade(ctx context.Context, userID string, tradeID string) error
}

// TradeSvcFacade combines all trade-related service interfaces
type TradeSvcFacade interface {
	TradeReaderSvc
	TradeWriterSvc
}
