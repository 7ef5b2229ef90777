package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	pool   pgxmock.PgxPoolIface
	repo   *PgxLedgerRepository
	userID string
	rate   decimal.Decimal
	at     time.Time
}

func (s *LedgerRepositoryTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.pool = pool
	s.repo = newPgxLedgerRepository(pool).(*PgxLedgerRepository)
	s.ctx = context.Background()
	s.userID = "user-1"
	s.rate = decimal.RequireFromString("1500")
	s.at = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func (s *LedgerRepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.pool.ExpectationsWereMet())
	s.pool.Close()
}

func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}

func (s *LedgerRepositoryTestSuite) expectLockedProfile(stored string) {
	s.pool.ExpectExec(regexp.QuoteMeta("INSERT INTO user_profiles")).
		WithArgs(s.userID, "USD", s.at).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	s.pool.ExpectQuery(regexp.QuoteMeta("SELECT currency FROM user_profiles WHERE user_id = $1 FOR UPDATE;")).
		WithArgs(s.userID).
		WillReturnRows(pgxmock.NewRows([]string{"currency"}).AddRow(stored))
}

func (s *LedgerRepositoryTestSuite) expectRebase(table string, affected int64) *pgxmock.ExpectedExec {
	return s.pool.ExpectExec(regexp.QuoteMeta("UPDATE "+table+" SET")).
		WithArgs(s.userID, s.rate, s.at).
		WillReturnResult(pgxmock.NewResult("UPDATE", affected))
}

func (s *LedgerRepositoryTestSuite) TestRebaseLedger_UpdatesEveryTableInOneTransaction() {
	s.pool.ExpectBegin()
	s.expectLockedProfile("USD")
	s.expectRebase("assets", 2)
	s.expectRebase("liabilities", 1)
	s.expectRebase("expenses", 7)
	s.pool.ExpectExec(regexp.QuoteMeta("UPDATE trades SET profit_loss = profit_loss * $2") + ".*" + regexp.QuoteMeta("AND profit_loss IS NOT NULL;")).
		WithArgs(s.userID, s.rate, s.at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	s.pool.ExpectExec(regexp.QuoteMeta("UPDATE user_profiles SET currency = $2")).
		WithArgs(s.userID, "NGN", s.at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.pool.ExpectCommit()

	result, err := s.repo.RebaseLedger(s.ctx, s.userID, "USD", "NGN", s.rate, s.at)

	s.Require().NoError(err)
	s.True(result.Changed)
	s.Equal(domain.CurrencyCode("USD"), result.FromCurrency)
	s.Equal(domain.CurrencyCode("NGN"), result.ToCurrency)
	s.True(s.rate.Equal(result.Rate))
	s.Equal(int64(2), result.AssetsUpdated)
	s.Equal(int64(1), result.LiabilitiesUpdated)
	s.Equal(int64(7), result.ExpensesUpdated)
	s.Equal(int64(3), result.TradesUpdated)
}

func (s *LedgerRepositoryTestSuite) TestRebaseLedger_CurrencyChangedConcurrently() {
	s.pool.ExpectBegin()
	s.expectLockedProfile("EUR")
	s.pool.ExpectRollback()

	result, err := s.repo.RebaseLedger(s.ctx, s.userID, "USD", "NGN", s.rate, s.at)

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerRepositoryTestSuite) TestRebaseLedger_RollsBackWhenAStatementFails() {
	boom := errors.New("disk full")
	s.pool.ExpectBegin()
	s.expectLockedProfile("USD")
	s.expectRebase("assets", 2)
	s.expectRebase("liabilities", 1)
	s.pool.ExpectExec(regexp.QuoteMeta("UPDATE expenses SET")).
		WithArgs(s.userID, s.rate, s.at).
		WillReturnError(boom)
	s.pool.ExpectRollback()

	result, err := s.repo.RebaseLedger(s.ctx, s.userID, "USD", "NGN", s.rate, s.at)

	s.Nil(result)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "expenses")
}

func (s *LedgerRepositoryTestSuite) TestRebaseLedger_BeginFails() {
	s.pool.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := s.repo.RebaseLedger(s.ctx, s.userID, "USD", "NGN", s.rate, s.at)

	var appErr *apperrors.AppError
	s.ErrorAs(err, &appErr)
}
