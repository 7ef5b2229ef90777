package services

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
)

// AssetReaderSvc defines read operations for assets
type AssetReaderSvc interface {
	ListAssets(ctx context.Context, userID string, assetType string) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for assets
type AssetWriterSvc interface {
	CreateAsset(ctx context.Context, userID string, req dto.CreateAssetRequest) (*domain.Asset, error)
	// CreateInvestment stores an asset of type "investment".
	CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, userID string, assetID string) error
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}

// LiabilitySvcFacade combines all liability-related service operations
type LiabilitySvcFacade interface {
	CreateLiability(ctx context.Context, userID string, req dto.CreateLiabilityRequest) (*domain.Liability, error)
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)
	DeleteLiability(ctx context.Context, userID string, liabilityID string) error
}

// ExpenseSvcFacade combines all expense-related service operations
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, limit int) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
}
