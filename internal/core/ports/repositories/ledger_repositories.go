package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetsByUser lists a user's assets; an empty assetType means all types.
	FindAssetsByUser(ctx context.Context, userID string, assetType string) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
	// DeleteAsset removes one asset owned by userID, returning apperrors.ErrNotFound when absent.
	DeleteAsset(ctx context.Context, userID string, assetID string) error
	DeleteAssetsByUser(ctx context.Context, userID string) (int64, error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}

// LiabilityReader defines read operations for liability data
type LiabilityReader interface {
	FindLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liability data
type LiabilityWriter interface {
	SaveLiability(ctx context.Context, liability domain.Liability) error
	DeleteLiability(ctx context.Context, userID string, liabilityID string) error
	DeleteLiabilitiesByUser(ctx context.Context, userID string) (int64, error)
}

// LiabilityRepositoryFacade combines all liability-related repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpensesByUser lists the newest expenses first, at most limit rows.
	FindExpensesByUser(ctx context.Context, userID string, limit int) ([]domain.Expense, error)
	// FindExpensesInRange lists expenses dated in [from, to), newest first.
	FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
	DeleteExpensesByUser(ctx context.Context, userID string) (int64, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// LedgerRebaser re-denominates a user's whole ledger.
type LedgerRebaser interface {
	// RebaseLedger multiplies every stored amount of userID by rate and switches the profile
	// currency from -> to, atomically. It returns apperrors.ErrConflict when the stored profile
	// currency is no longer from.
	RebaseLedger(ctx context.Context, userID string, from, to domain.CurrencyCode, rate decimal.Decimal, at time.Time) (*domain.RebaseResult, error)
}
