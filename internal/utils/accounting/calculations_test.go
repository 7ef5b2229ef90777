package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func closedTrade(pnl string, at time.Time) domain.Trade {
	v := dec(pnl)
	return domain.Trade{ProfitLoss: &v, TradeDate: at}
}

func TestNetWorthStatusFor(t *testing.T) {
	tests := []struct {
		usd  string
		want domain.NetWorthStatus
	}{
		{usd: "0", want: domain.NetWorthLow},
		{usd: "-500", want: domain.NetWorthLow},
		{usd: "29.99", want: domain.NetWorthLow},
		{usd: "30", want: domain.NetWorthModerate},
		{usd: "99.99", want: domain.NetWorthModerate},
		{usd: "100", want: domain.NetWorthHealthy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NetWorthStatusFor(dec(tt.usd)), "usd=%s", tt.usd)
	}
}

func TestSums(t *testing.T) {
	assets := []domain.Asset{{Value: dec("100.50")}, {Value: dec("20")}}
	liabilities := []domain.Liability{{Amount: dec("70")}}
	expenses := []domain.Expense{{Amount: dec("1.25")}, {Amount: dec("2.75")}}

	assert.True(t, dec("120.50").Equal(SumAssets(assets)))
	assert.True(t, dec("70").Equal(SumLiabilities(liabilities)))
	assert.True(t, dec("4").Equal(SumExpenses(expenses)))
	assert.True(t, decimal.Zero.Equal(SumAssets(nil)))
}

func TestSummarizeExpenses(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "food", Amount: dec("10"), Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Category: "rent", Amount: dec("500"), Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Category: "food", Amount: dec("15"), Date: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{Category: "food", Amount: dec("99"), Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{Category: "fun", Amount: dec("25"), Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	s := SummarizeExpenses(expenses, "EUR", 2026, time.March, time.UTC)

	assert.Equal(t, domain.CurrencyCode("EUR"), s.Currency)
	assert.True(t, dec("525").Equal(s.Total), "total %s", s.Total)
	require.Len(t, s.CategoryTotals, 2)
	assert.Equal(t, "rent", s.CategoryTotals[0].Category)
	assert.Equal(t, "food", s.CategoryTotals[1].Category)
	assert.True(t, dec("25").Equal(s.CategoryTotals[1].Total))
	assert.Len(t, s.Expenses, 3)
}

func TestSummarizeTrades(t *testing.T) {
	march := func(day int) time.Time { return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC) }
	open := domain.Trade{TradeDate: march(5)}

	trades := []domain.Trade{
		closedTrade("100", march(5)),
		closedTrade("-40", march(5)),
		closedTrade("0", march(9)),
		closedTrade("60", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
		open,
	}

	s := SummarizeTrades(trades, "USD", 2026, time.March, time.UTC)

	assert.Equal(t, 4, s.TotalTrades, "open trades are excluded")
	assert.Equal(t, 2, s.WinningTrades)
	assert.True(t, dec("50").Equal(s.WinRate), "win rate %s", s.WinRate)
	assert.True(t, dec("120").Equal(s.TotalPnL), "total %s", s.TotalPnL)

	assert.Equal(t, 31, s.DaysInMonth)
	assert.Equal(t, time.Sunday, s.FirstWeekday) // 2026-03-01
	require.Len(t, s.Calendar, 2)
	assert.Equal(t, 5, s.Calendar[0].Day)
	assert.True(t, dec("60").Equal(s.Calendar[0].PnL))
	assert.Equal(t, 1, s.Calendar[0].Wins)
	assert.Equal(t, 1, s.Calendar[0].Losses)
	assert.Equal(t, 9, s.Calendar[1].Day)
	assert.Equal(t, 1, s.Calendar[1].Losses, "zero P&L counts as a loss")

	assert.Equal(t, 1, s.MonthlyWins)
	assert.Equal(t, 2, s.MonthlyLosses)
	assert.True(t, dec("60").Equal(s.MonthlyPnL))
}

func TestSummarizeTrades_NoClosedTrades(t *testing.T) {
	s := SummarizeTrades([]domain.Trade{{}}, "GBP", 2026, time.February, time.UTC)

	assert.Equal(t, 0, s.TotalTrades)
	assert.True(t, decimal.Zero.Equal(s.WinRate))
	assert.Equal(t, 28, s.DaysInMonth)
	assert.Empty(t, s.Calendar)
}
