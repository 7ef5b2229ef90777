package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// TradeCursor positions a keyset page after the given trade.
type TradeCursor struct {
	TradeDate time.Time
	CreatedAt time.Time
	TradeID   string
}

// TradeReader defines read operations for trade data
type TradeReader interface {
	// FindTradeByID retrieves one trade owned by userID.
	FindTradeByID(ctx context.Context, userID string, tradeID string) (*domain.Trade, error)

	// ListTrades returns up to limit trades ordered by trade date then creation time, newest first.
	// A nil cursor starts from the newest trade.
	ListTrades(ctx context.Context, userID string, limit int, after *TradeCursor) ([]domain.Trade, error)

	// FindClosedTrades returns every trade of userID that has a profit/loss.
	FindClosedTrades(ctx context.Context, userID string) ([]domain.Trade, error)
}

// TradeWriter defines write operations for trade data
type TradeWriter interface {
	SaveTrade(ctx context.Context, trade domain.Trade) error
	DeleteTrade(ctx context.Context, userID string, tradeID string) error
	DeleteTradesByUser(ctx context.Context, userID string) (int64, error)
}

// TradeRepositoryFacade combines all trade-related repository interfaces
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}
