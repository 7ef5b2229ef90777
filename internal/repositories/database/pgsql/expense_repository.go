package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/models"
	"github.com/SscSPs/casa_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool PgxPool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, user_id, description, amount, category, date, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.UserID, m.Description, m.Amount, m.Category, m.Date,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapInsertError(err, "expense", m.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpensesByUser(ctx context.Context, userID string, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2;`
	return r.queryExpenses(ctx, query, userID, limit)
}

func (r *PgxExpenseRepository) FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, created_at DESC;`
	return r.queryExpenses(ctx, query, userID, from, to)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, userID string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses for user %s: %w", userID, err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	return deleteOwned(ctx, r.Pool, "expenses", "expense_id", userID, expenseID)
}

func (r *PgxExpenseRepository) DeleteExpensesByUser(ctx context.Context, userID string) (int64, error) {
	return deleteAllOwned(ctx, r.Pool, "expenses", userID)
}
