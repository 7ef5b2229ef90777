package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository performs whole-ledger rewrites inside a single transaction.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool PgxPool) portsrepo.LedgerRebaser {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRebaser = (*PgxLedgerRepository)(nil)

// rebaseStatements are applied in order. Open trades keep a NULL profit_loss.
var rebaseStatements = []struct {
	table string
	query string
}{
	{"assets", `UPDATE assets SET value = value * $2, last_updated_at = $3, last_updated_by = $1 WHERE user_id = $1;`},
	{"liabilities", `UPDATE liabilities SET amount = amount * $2, last_updated_at = $3, last_updated_by = $1 WHERE user_id = $1;`},
	{"expenses", `UPDATE expenses SET amount = amount * $2, last_updated_at = $3, last_updated_by = $1 WHERE user_id = $1;`},
	{"trades", `UPDATE trades SET profit_loss = profit_loss * $2, last_updated_at = $3, last_updated_by = $1 WHERE user_id = $1 AND profit_loss IS NOT NULL;`},
}

// RebaseLedger multiplies every amount owned by userID by rate and moves the profile
// currency from -> to. Either everything changes or nothing does.
func (r *PgxLedgerRepository) RebaseLedger(ctx context.Context, userID string, from, to domain.CurrencyCode, rate decimal.Decimal, at time.Time) (result *domain.RebaseResult, err error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				logger.Error("Failed to rollback rebase transaction", slog.String("error", rbErr.Error()), slog.String("user_id", userID))
			}
		}
	}()

	if err = lockProfileCurrency(ctx, tx, userID, from, at); err != nil {
		return nil, err
	}

	result = &domain.RebaseResult{FromCurrency: from, ToCurrency: to, Changed: true, Rate: rate}
	counts := map[string]*int64{
		"assets":      &result.AssetsUpdated,
		"liabilities": &result.LiabilitiesUpdated,
		"expenses":    &result.ExpensesUpdated,
		"trades":      &result.TradesUpdated,
	}
	for _, stmt := range rebaseStatements {
		tag, execErr := tx.Exec(ctx, stmt.query, userID, rate, at)
		if execErr != nil {
			err = fmt.Errorf("failed to rebase %s for user %s: %w", stmt.table, userID, execErr)
			return nil, err
		}
		*counts[stmt.table] = tag.RowsAffected()
	}

	_, err = tx.Exec(ctx,
		`UPDATE user_profiles SET currency = $2, last_updated_at = $3, last_updated_by = $1 WHERE user_id = $1;`,
		userID, to.String(), at)
	if err != nil {
		err = fmt.Errorf("failed to update profile currency for user %s: %w", userID, err)
		return nil, err
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

// lockProfileCurrency makes sure the profile row exists, locks it and checks that the
// stored currency is still expected.
func lockProfileCurrency(ctx context.Context, tx pgx.Tx, userID string, expected domain.CurrencyCode, at time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO user_profiles (user_id, full_name, currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, '', $2, $3, $1, $3, $1)
		ON CONFLICT (user_id) DO NOTHING;`,
		userID, domain.DefaultCurrency.String(), at)
	if err != nil {
		return fmt.Errorf("failed to ensure profile for user %s: %w", userID, err)
	}

	var stored string
	err = tx.QueryRow(ctx, `SELECT currency FROM user_profiles WHERE user_id = $1 FOR UPDATE;`, userID).Scan(&stored)
	if err != nil {
		return fmt.Errorf("failed to lock profile for user %s: %w", userID, err)
	}
	if domain.NormalizeCurrencyCode(stored) != expected {
		return fmt.Errorf("%w: profile currency is %s, expected %s", apperrors.ErrConflict, stored, expected)
	}
	return nil
}
