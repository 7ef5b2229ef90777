package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/core/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerServicesTestSuite struct {
	suite.Suite
	ctx           context.Context
	assetRepo     *MockAssetRepository
	liabilityRepo *MockLiabilityRepository
	expenseRepo   *MockExpenseRepository
}

func (s *LedgerServicesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.assetRepo = new(MockAssetRepository)
	s.liabilityRepo = new(MockLiabilityRepository)
	s.expenseRepo = new(MockExpenseRepository)
}

func (s *LedgerServicesTestSuite) TearDownTest() {
	s.assetRepo.AssertExpectations(s.T())
	s.liabilityRepo.AssertExpectations(s.T())
	s.expenseRepo.AssertExpectations(s.T())
}

func TestLedgerServicesTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServicesTestSuite))
}

func (s *LedgerServicesTestSuite) TestCreateAsset_NormalizesType() {
	svc := services.NewAssetService(s.assetRepo)
	s.assetRepo.On("SaveAsset", s.ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.UserID == "user-1" && a.Name == "Flat" && a.Type == "property" && a.Value.Equal(dec("250000"))
	})).Return(nil).Once()

	asset, err := svc.CreateAsset(s.ctx, "user-1", dto.CreateAssetRequest{Name: " Flat ", Type: " Property", Value: dec("250000")})

	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), asset.AssetID)
	assert.Equal(s.T(), "user-1", asset.CreatedBy)
}

func (s *LedgerServicesTestSuite) TestCreateInvestment_UsesInvestmentType() {
	svc := services.NewAssetService(s.assetRepo)
	s.assetRepo.On("SaveAsset", s.ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Type == domain.AssetTypeInvestment
	})).Return(nil).Once()

	asset, err := svc.CreateInvestment(s.ctx, "user-1", dto.CreateInvestmentRequest{Name: "Index fund", Value: dec("100")})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.AssetTypeInvestment, asset.Type)
}

func (s *LedgerServicesTestSuite) TestCreateAsset_Invalid() {
	svc := services.NewAssetService(s.assetRepo)

	_, err := svc.CreateAsset(s.ctx, "user-1", dto.CreateAssetRequest{Name: "Car", Type: "vehicle", Value: dec("-1")})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)

	_, err = svc.CreateAsset(s.ctx, "user-1", dto.CreateAssetRequest{Name: "  ", Type: "vehicle", Value: dec("1")})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)

	_, err = svc.CreateAsset(s.ctx, "", dto.CreateAssetRequest{Name: "Car", Type: "vehicle", Value: dec("1")})
	assert.ErrorIs(s.T(), err, apperrors.ErrUnauthorized)

	s.assetRepo.AssertNotCalled(s.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (s *LedgerServicesTestSuite) TestListAssets_PassesLowercasedFilter() {
	svc := services.NewAssetService(s.assetRepo)
	s.assetRepo.On("FindAssetsByUser", s.ctx, "user-1", "investment").
		Return([]domain.Asset{{AssetID: "a1"}}, nil).Once()

	assets, err := svc.ListAssets(s.ctx, "user-1", " Investment ")

	require.NoError(s.T(), err)
	assert.Len(s.T(), assets, 1)
}

func (s *LedgerServicesTestSuite) TestDeleteAsset_OtherUsersRowIsNotFound() {
	svc := services.NewAssetService(s.assetRepo)
	s.assetRepo.On("DeleteAsset", s.ctx, "user-2", "a1").Return(apperrors.ErrNotFound).Once()

	err := svc.DeleteAsset(s.ctx, "user-2", "a1")

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *LedgerServicesTestSuite) TestCreateLiability() {
	svc := services.NewLiabilityService(s.liabilityRepo)
	s.liabilityRepo.On("SaveLiability", s.ctx, mock.MatchedBy(func(l domain.Liability) bool {
		return l.Name == "Mortgage" && l.Type == "loan" && l.Amount.Equal(dec("90000"))
	})).Return(nil).Once()

	liability, err := svc.CreateLiability(s.ctx, "user-1", dto.CreateLiabilityRequest{Name: "Mortgage", Type: "LOAN", Amount: dec("90000")})

	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), liability.LiabilityID)

	_, err = svc.CreateLiability(s.ctx, "user-1", dto.CreateLiabilityRequest{Name: "Card", Type: "credit", Amount: dec("-5")})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *LedgerServicesTestSuite) TestListAndDeleteLiabilities() {
	svc := services.NewLiabilityService(s.liabilityRepo)
	s.liabilityRepo.On("FindLiabilitiesByUser", s.ctx, "user-1").Return([]domain.Liability{{LiabilityID: "l1"}, {LiabilityID: "l2"}}, nil).Once()
	s.liabilityRepo.On("DeleteLiability", s.ctx, "user-1", "l1").Return(nil).Once()

	liabilities, err := svc.ListLiabilities(s.ctx, "user-1")
	require.NoError(s.T(), err)
	assert.Len(s.T(), liabilities, 2)

	require.NoError(s.T(), svc.DeleteLiability(s.ctx, "user-1", "l1"))
}

func (s *LedgerServicesTestSuite) TestCreateExpense_DefaultsDateToNow() {
	svc := services.NewExpenseService(s.expenseRepo)
	before := time.Now().Add(-time.Second)
	s.expenseRepo.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := svc.CreateExpense(s.ctx, "user-1", dto.CreateExpenseRequest{Description: "Groceries", Amount: dec("42.50"), Category: "Food"})

	require.NoError(s.T(), err)
	assert.True(s.T(), expense.Date.After(before))
	assert.Equal(s.T(), "Food", expense.Category)
}

func (s *LedgerServicesTestSuite) TestCreateExpense_KeepsGivenDate() {
	svc := services.NewExpenseService(s.expenseRepo)
	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	s.expenseRepo.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := svc.CreateExpense(s.ctx, "user-1", dto.CreateExpenseRequest{Description: "Rent", Amount: dec("800"), Category: "Housing", Date: &date})

	require.NoError(s.T(), err)
	assert.True(s.T(), expense.Date.Equal(date))
}

func (s *LedgerServicesTestSuite) TestCreateExpense_RejectsZeroAmount() {
	svc := services.NewExpenseService(s.expenseRepo)

	_, err := svc.CreateExpense(s.ctx, "user-1", dto.CreateExpenseRequest{Description: "Nothing", Amount: dec("0"), Category: "Misc"})

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *LedgerServicesTestSuite) TestListExpenses_DefaultLimit() {
	svc := services.NewExpenseService(s.expenseRepo)
	s.expenseRepo.On("FindExpensesByUser", s.ctx, "user-1", 50).Return([]domain.Expense{}, nil).Once()
	s.expenseRepo.On("FindExpensesByUser", s.ctx, "user-1", 10).Return([]domain.Expense{}, nil).Once()

	_, err := svc.ListExpenses(s.ctx, "user-1", 0)
	require.NoError(s.T(), err)
	_, err = svc.ListExpenses(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
}

func (s *LedgerServicesTestSuite) TestDeleteExpense_WrapsRepositoryError() {
	svc := services.NewExpenseService(s.expenseRepo)
	s.expenseRepo.On("DeleteExpense", s.ctx, "user-1", "e1").Return(apperrors.ErrNotFound).Once()

	err := svc.DeleteExpense(s.ctx, "user-1", "e1")

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	assert.Contains(s.T(), err.Error(), "e1")
}
