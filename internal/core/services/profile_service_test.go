package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/core/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	ctx               context.Context
	userID            string
	mockProfileRepo   *MockProfileRepository
	mockLedger        *MockLedgerRebaser
	mockAssetRepo     *MockAssetRepository
	mockLiabilityRepo *MockLiabilityRepository
	mockExpenseRepo   *MockExpenseRepository
	mockTradeRepo     *MockTradeRepository
	mockRates         *MockExchangeRateSvc
	service           portssvc.ProfileSvcFacade
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userID = "user-1"
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockLedger = new(MockLedgerRebaser)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockLiabilityRepo = new(MockLiabilityRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTradeRepo = new(MockTradeRepository)
	suite.mockRates = new(MockExchangeRateSvc)
	suite.service = suite.newService(domain.FallbackIdentity)
}

func (suite *ProfileServiceTestSuite) repos() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:     suite.mockAssetRepo,
		LiabilityRepo: suite.mockLiabilityRepo,
		ExpenseRepo:   suite.mockExpenseRepo,
		TradeRepo:     suite.mockTradeRepo,
		ProfileRepo:   suite.mockProfileRepo,
		LedgerRepo:    suite.mockLedger,
	}
}

func (suite *ProfileServiceTestSuite) newService(fallback domain.RateFallback) portssvc.ProfileSvcFacade {
	return services.NewProfileService(suite.repos(), suite.mockRates, services.WithRebaseRateFallback(fallback))
}

func (suite *ProfileServiceTestSuite) withCurrency(code domain.CurrencyCode) {
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, suite.userID).
		Return(&domain.UserProfile{UserID: suite.userID, Currency: code}, nil)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_DefaultsToUSD() {
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetProfile(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultCurrency, profile.Currency)
	suite.Equal(suite.userID, profile.UserID)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_CreatesRow() {
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProfileRepo.On("SaveProfile", suite.ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.FullName == "Ada Obi" && p.Currency == "USD" && !p.CreatedAt.IsZero() && p.CreatedBy == suite.userID
	})).Return(nil).Once()

	profile, err := suite.service.UpdateProfile(suite.ctx, suite.userID, dto.UpdateProfileRequest{FullName: "  Ada Obi "})

	suite.Require().NoError(err)
	suite.Equal("Ada Obi", profile.FullName)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_SameCurrencyIsNoop() {
	suite.withCurrency("EUR")

	result, err := suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "eur")

	suite.Require().NoError(err)
	suite.False(result.Changed)
	suite.mockRates.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "RebaseLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_KnownRate() {
	suite.withCurrency("USD")
	suite.mockRates.On("GetRate", suite.ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("NGN")).
		Return(domain.KnownRate("USD", "NGN", dec("1500"), time.Now())).Once()
	suite.mockLedger.On("RebaseLedger", suite.ctx, suite.userID, domain.CurrencyCode("USD"), domain.CurrencyCode("NGN"),
		mock.MatchedBy(func(r decimal.Decimal) bool { return r.Equal(dec("1500")) }), mock.AnythingOfType("time.Time")).
		Return(&domain.RebaseResult{FromCurrency: "USD", ToCurrency: "NGN", Changed: true, Rate: dec("1500"), AssetsUpdated: 2}, nil).Once()

	result, err := suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "NGN")

	suite.Require().NoError(err)
	suite.True(result.Changed)
	suite.False(result.RateFallbackApplied)
	suite.Equal(int64(2), result.AssetsUpdated)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_IdentityFallbackSwitchesLabelOnly() {
	suite.withCurrency("USD")
	suite.mockRates.On("GetRate", suite.ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("GBP")).
		Return(domain.UnavailableRate("USD", "GBP", "provider down")).Once()
	suite.mockLedger.On("RebaseLedger", suite.ctx, suite.userID, domain.CurrencyCode("USD"), domain.CurrencyCode("GBP"),
		mock.MatchedBy(func(r decimal.Decimal) bool { return r.Equal(decimal.NewFromInt(1)) }), mock.Anything).
		Return(&domain.RebaseResult{FromCurrency: "USD", ToCurrency: "GBP", Changed: true, Rate: decimal.NewFromInt(1)}, nil).Once()

	result, err := suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "GBP")

	suite.Require().NoError(err)
	suite.True(result.RateFallbackApplied)
	suite.Equal(domain.CurrencyCode("GBP"), result.ToCurrency)
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_AbortFallback() {
	svc := suite.newService(domain.FallbackAbort)
	suite.withCurrency("USD")
	suite.mockRates.On("GetRate", suite.ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("GBP")).
		Return(domain.UnavailableRate("USD", "GBP", "provider down")).Once()

	_, err := svc.ChangeBaseCurrency(suite.ctx, suite.userID, "GBP")

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockLedger.AssertNotCalled(suite.T(), "RebaseLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_ZeroFallbackNeverWipesLedger() {
	svc := suite.newService(domain.FallbackZero)
	suite.withCurrency("USD")
	suite.mockRates.On("GetRate", suite.ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("EUR")).
		Return(domain.UnavailableRate("USD", "EUR", "provider down")).Once()

	_, err := svc.ChangeBaseCurrency(suite.ctx, suite.userID, "EUR")

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockLedger.AssertNotCalled(suite.T(), "RebaseLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_Conflict() {
	suite.withCurrency("USD")
	suite.mockRates.On("GetRate", suite.ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("EUR")).
		Return(domain.KnownRate("USD", "EUR", dec("0.9"), time.Now())).Once()
	suite.mockLedger.On("RebaseLedger", suite.ctx, suite.userID, domain.CurrencyCode("USD"), domain.CurrencyCode("EUR"), mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "EUR")
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ProfileServiceTestSuite) TestChangeBaseCurrency_InvalidInput() {
	_, err := suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "EURO")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ChangeBaseCurrency(suite.ctx, suite.userID, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ChangeBaseCurrency(suite.ctx, "", "EUR")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *ProfileServiceTestSuite) TestDeleteAllData_BestEffort() {
	boom := errors.New("db down")
	suite.mockTradeRepo.On("DeleteTradesByUser", suite.ctx, suite.userID).Return(int64(3), nil).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByUser", suite.ctx, suite.userID).Return(int64(0), boom).Once()
	suite.mockLiabilityRepo.On("DeleteLiabilitiesByUser", suite.ctx, suite.userID).Return(int64(1), nil).Once()
	suite.mockAssetRepo.On("DeleteAssetsByUser", suite.ctx, suite.userID).Return(int64(2), nil).Once()

	err := suite.service.DeleteAllData(suite.ctx, suite.userID)

	suite.ErrorIs(err, boom)
	suite.ErrorContains(err, "expenses")
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockLiabilityRepo.AssertExpectations(suite.T())
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}

// memoryLedger applies re-basing to in-memory amounts so conversions can be checked end to end.
type memoryLedger struct {
	currency domain.CurrencyCode
	amounts  []decimal.Decimal
}

func (l *memoryLedger) FindProfileByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	return &domain.UserProfile{UserID: userID, Currency: l.currency}, nil
}

func (l *memoryLedger) SaveProfile(context.Context, domain.UserProfile) error { return nil }

func (l *memoryLedger) RebaseLedger(_ context.Context, _ string, from, to domain.CurrencyCode, rate decimal.Decimal, _ time.Time) (*domain.RebaseResult, error) {
	if from != l.currency {
		return nil, apperrors.ErrConflict
	}
	for i := range l.amounts {
		l.amounts[i] = l.amounts[i].Mul(rate)
	}
	l.currency = to
	return &domain.RebaseResult{FromCurrency: from, ToCurrency: to, Changed: true, Rate: rate, AssetsUpdated: int64(len(l.amounts))}, nil
}

func TestChangeBaseCurrency_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger := &memoryLedger{currency: "USD", amounts: []decimal.Decimal{dec("1000"), dec("12.34"), dec("-250.5")}}
	original := append([]decimal.Decimal(nil), ledger.amounts...)

	rates := new(MockExchangeRateSvc)
	rates.On("GetRate", ctx, domain.CurrencyCode("USD"), domain.CurrencyCode("EUR")).Return(domain.KnownRate("USD", "EUR", dec("0.8"), time.Now()))
	rates.On("GetRate", ctx, domain.CurrencyCode("EUR"), domain.CurrencyCode("USD")).Return(domain.KnownRate("EUR", "USD", dec("1.25"), time.Now()))

	svc := services.NewProfileService(portsrepo.RepositoryProvider{ProfileRepo: ledger, LedgerRepo: ledger}, rates)

	_, err := svc.ChangeBaseCurrency(ctx, "user-1", "EUR")
	require.NoError(t, err)
	assert.True(t, dec("800").Equal(ledger.amounts[0]))

	_, err = svc.ChangeBaseCurrency(ctx, "user-1", "USD")
	require.NoError(t, err)

	for i := range original {
		assert.True(t, original[i].Sub(ledger.amounts[i]).Abs().LessThan(dec("0.0000001")), "amount %d drifted: %s", i, ledger.amounts[i])
	}
	assert.Equal(t, domain.CurrencyCode("USD"), ledger.currency)
}
