package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateReader ---
type MockExchangeRateReader struct {
	mock.Mock
}

func (m *MockExchangeRateReader) FetchRateTable(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Mock ExchangeRateSvc ---
type MockExchangeRateSvc struct {
	mock.Mock
}

func (m *MockExchangeRateSvc) GetRate(ctx context.Context, base, quote domain.CurrencyCode) domain.RateQuote {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(domain.RateQuote)
}

// --- Mock TradeRepository ---
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) FindTradeByID(ctx context.Context, userID string, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, userID, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListTrades(ctx context.Context, userID string, limit int, after *portsrepo.TradeCursor) ([]domain.Trade, error) {
	args := m.Called(ctx, userID, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) FindClosedTrades(ctx context.Context, userID string) ([]domain.Trade, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

func (m *MockTradeRepository) DeleteTrade(ctx context.Context, userID string, tradeID string) error {
	args := m.Called(ctx, userID, tradeID)
	return args.Error(0)
}

func (m *MockTradeRepository) DeleteTradesByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// --- Mock LedgerRebaser ---
type MockLedgerRebaser struct {
	mock.Mock
}

func (m *MockLedgerRebaser) RebaseLedger(ctx context.Context, userID string, from, to domain.CurrencyCode, rate decimal.Decimal, at time.Time) (*domain.RebaseResult, error) {
	args := m.Called(ctx, userID, from, to, rate, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RebaseResult), args.Error(1)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetsByUser(ctx context.Context, userID string, assetType string) ([]domain.Asset, error) {
	args := m.Called(ctx, userID, assetType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, userID string, assetID string) error {
	args := m.Called(ctx, userID, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAssetsByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LiabilityRepository ---
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) FindLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) DeleteLiability(ctx context.Context, userID string, liabilityID string) error {
	args := m.Called(ctx, userID, liabilityID)
	return args.Error(0)
}

func (m *MockLiabilityRepository) DeleteLiabilitiesByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpensesByUser(ctx context.Context, userID string, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpensesByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Compile-time checks that the mocks satisfy the ports they stand in for.
var (
	_ portsrepo.ExchangeRateReader        = (*MockExchangeRateReader)(nil)
	_ portssvc.ExchangeRateSvc            = (*MockExchangeRateSvc)(nil)
	_ portsrepo.TradeRepositoryFacade     = (*MockTradeRepository)(nil)
	_ portsrepo.ProfileRepositoryFacade   = (*MockProfileRepository)(nil)
	_ portsrepo.LedgerRebaser             = (*MockLedgerRebaser)(nil)
	_ portsrepo.AssetRepositoryFacade     = (*MockAssetRepository)(nil)
	_ portsrepo.LiabilityRepositoryFacade = (*MockLiabilityRepository)(nil)
	_ portsrepo.ExpenseRepositoryFacade   = (*MockExpenseRepository)(nil)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
