package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed token the way the identity service does.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "casa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

// --- Mock TradeService ---
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) GetTrade(ctx context.Context, userID string, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, userID, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) ListTrades(ctx context.Context, userID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTradesResponse), args.Error(1)
}

func (m *MockTradeService) LogTrade(ctx context.Context, userID string, req dto.LogTradeRequest) (*domain.Trade, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) DeleteTrade(ctx context.Context, userID string, tradeID string) error {
	args := m.Called(ctx, userID, tradeID)
	return args.Error(0)
}

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) ChangeBaseCurrency(ctx context.Context, userID string, newCurrency domain.CurrencyCode) (*domain.RebaseResult, error) {
	args := m.Called(ctx, userID, newCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RebaseResult), args.Error(1)
}

func (m *MockProfileService) DeleteAllData(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRate(ctx context.Context, base, quote domain.CurrencyCode) domain.RateQuote {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(domain.RateQuote)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.TradeSvcFacade   = (*MockTradeService)(nil)
	_ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)
	_ portssvc.ExchangeRateSvc  = (*MockExchangeRateService)(nil)
)
