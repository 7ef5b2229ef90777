package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPool is the part of *pgxpool.Pool the repositories rely on.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ PgxPool = (*pgxpool.Pool)(nil)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool PgxPool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is not an error.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// wrapInsertError turns a unique violation into apperrors.ErrDuplicate.
func wrapInsertError(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
	}
	return fmt.Errorf("failed to save %s %s: %w", entity, id, err)
}

// deleteOwned removes one row of table owned by userID and maps "no rows" to apperrors.ErrNotFound.
func deleteOwned(ctx context.Context, pool PgxPool, table, idColumn, userID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2;`, table, idColumn)
	tag, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s %s: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, table, id)
	}
	return nil
}

// deleteAllOwned removes every row of table owned by userID.
func deleteAllOwned(ctx context.Context, pool PgxPool, table, userID string) (int64, error) {
	tag, err := pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1;`, table), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s for user %s: %w", table, userID, err)
	}
	return tag.RowsAffected(), nil
}
