package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/models"
	"github.com/SscSPs/casa_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxTradeRepository struct {
	BaseRepository
}

// newPgxTradeRepository creates a new repository for trade data.
func newPgxTradeRepository(pool PgxPool) portsrepo.TradeRepositoryFacade {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTradeRepository implements portsrepo.TradeRepositoryFacade
var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

const tradeColumns = `trade_id, user_id, symbol, side, quantity, entry_price, exit_price, leverage, profit_loss, notes, trade_date, created_at, created_by, last_updated_at, last_updated_by`

// SaveTrade inserts a new trade. Trades are immutable once logged.
func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	m := mapping.ToModelTrade(trade)
	query := `INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	_, err := r.Pool.Exec(ctx, query,
		m.TradeID, m.UserID, m.Symbol, m.Side, m.Quantity, m.EntryPrice,
		m.ExitPrice, m.Leverage, m.ProfitLoss, m.Notes, m.TradeDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapInsertError(err, "trade", m.TradeID)
	}
	return nil
}

// FindTradeByID retrieves a trade by its ID, scoped to its owner.
func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, userID string, tradeID string) (*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE trade_id = $1 AND user_id = $2;`

	rows, err := r.Pool.Query(ctx, query, tradeID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade %s: %w", tradeID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Trade])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: trade %s", apperrors.ErrNotFound, tradeID)
		}
		return nil, fmt.Errorf("failed to find trade by ID %s: %w", tradeID, err)
	}
	trade := mapping.ToDomainTrade(m)
	return &trade, nil
}

// ListTrades pages through trades newest first using a (trade_date, created_at, trade_id) keyset.
func (r *PgxTradeRepository) ListTrades(ctx context.Context, userID string, limit int, after *portsrepo.TradeCursor) ([]domain.Trade, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `SELECT ` + tradeColumns + `
			FROM trades
			WHERE user_id = $1
			ORDER BY trade_date DESC, created_at DESC, trade_id DESC
			LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, userID, limit)
	} else {
		query := `SELECT ` + tradeColumns + `
			FROM trades
			WHERE user_id = $1 AND (trade_date, created_at, trade_id) < ($2, $3, $4)
			ORDER BY trade_date DESC, created_at DESC, trade_id DESC
			LIMIT $5;`
		rows, err = r.Pool.Query(ctx, query, userID, after.TradeDate, after.CreatedAt, after.TradeID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for user %s: %w", userID, err)
	}

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trade])
	if err != nil {
		return nil, fmt.Errorf("failed to scan trades for user %s: %w", userID, err)
	}
	return mapping.ToDomainTradeSlice(ms), nil
}

// FindClosedTrades returns every trade with a profit/loss, newest first.
func (r *PgxTradeRepository) FindClosedTrades(ctx context.Context, userID string) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + `
		FROM trades
		WHERE user_id = $1 AND profit_loss IS NOT NULL
		ORDER BY trade_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query closed trades for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trade])
	if err != nil {
		return nil, fmt.Errorf("failed to scan closed trades for user %s: %w", userID, err)
	}
	return mapping.ToDomainTradeSlice(ms), nil
}

func (r *PgxTradeRepository) DeleteTrade(ctx context.Context, userID string, tradeID string) error {
	return deleteOwned(ctx, r.Pool, "trades", "trade_id", userID, tradeID)
}

func (r *PgxTradeRepository) DeleteTradesByUser(ctx context.Context, userID string) (int64, error) {
	return deleteAllOwned(ctx, r.Pool, "trades", userID)
}
