package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	lowNetWorthUSD      = decimal.NewFromInt(30)
	moderateNetWorthUSD = decimal.NewFromInt(100)
	hundred             = decimal.NewFromInt(100)
)

// MonthRange returns [first day of month, first day of next month) in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// SumAssets totals asset values.
func SumAssets(assets []domain.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Value)
	}
	return total
}

// SumLiabilities totals liability amounts.
func SumLiabilities(liabilities []domain.Liability) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		total = total.Add(l.Amount)
	}
	return total
}

// SumExpenses totals expense amounts.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// NetWorthStatusFor labels a USD-denominated net worth.
// An unknown USD valuation arrives as zero and therefore reads as Low.
func NetWorthStatusFor(netWorthUSD decimal.Decimal) domain.NetWorthStatus {
	switch {
	case netWorthUSD.LessThan(lowNetWorthUSD):
		return domain.NetWorthLow
	case netWorthUSD.LessThan(moderateNetWorthUSD):
		return domain.NetWorthModerate
	default:
		return domain.NetWorthHealthy
	}
}

// SummarizeExpenses aggregates the expenses dated in the given month.
// Category totals are ordered by total descending, then by name.
func SummarizeExpenses(expenses []domain.Expense, currency domain.CurrencyCode, year int, month time.Month, loc *time.Location) *domain.ExpenseSummary {
	from, to := MonthRange(year, month, loc)
	summary := &domain.ExpenseSummary{
		Currency:       currency,
		Year:           year,
		Month:          month,
		Total:          decimal.Zero,
		CategoryTotals: []domain.CategoryTotal{},
		Expenses:       []domain.Expense{},
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		d := e.Date.In(loc)
		if d.Before(from) || !d.Before(to) {
			continue
		}
		summary.Expenses = append(summary.Expenses, e)
		summary.Total = summary.Total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	for category, total := range byCategory {
		summary.CategoryTotals = append(summary.CategoryTotals, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary.CategoryTotals, func(i, j int) bool {
		a, b := summary.CategoryTotals[i], summary.CategoryTotals[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})
	return summary
}

// SummarizeTrades computes win rate, total P&L and the month calendar from closed trades.
// Open trades (no profit/loss) are skipped. A trade with zero or negative P&L counts as a loss.
func SummarizeTrades(trades []domain.Trade, currency domain.CurrencyCode, year int, month time.Month, loc *time.Location) *domain.TradingSummary {
	from, to := MonthRange(year, month, loc)
	summary := &domain.TradingSummary{
		Currency:     currency,
		TotalPnL:     decimal.Zero,
		WinRate:      decimal.Zero,
		Year:         year,
		Month:        month,
		DaysInMonth:  to.AddDate(0, 0, -1).Day(),
		FirstWeekday: from.Weekday(),
		Calendar:     []domain.CalendarDay{},
		MonthlyPnL:   decimal.Zero,
	}

	days := make(map[int]*domain.CalendarDay)
	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		pnl := *t.ProfitLoss
		win := pnl.IsPositive()

		summary.TotalTrades++
		summary.TotalPnL = summary.TotalPnL.Add(pnl)
		if win {
			summary.WinningTrades++
		}

		d := t.TradeDate.In(loc)
		if d.Before(from) || !d.Before(to) {
			continue
		}
		day, ok := days[d.Day()]
		if !ok {
			day = &domain.CalendarDay{Day: d.Day(), PnL: decimal.Zero}
			days[d.Day()] = day
		}
		day.PnL = day.PnL.Add(pnl)
		summary.MonthlyPnL = summary.MonthlyPnL.Add(pnl)
		if win {
			day.Wins++
			summary.MonthlyWins++
		} else {
			day.Losses++
			summary.MonthlyLosses++
		}
	}

	if summary.TotalTrades > 0 {
		summary.WinRate = decimal.NewFromInt(int64(summary.WinningTrades)).
			Div(decimal.NewFromInt(int64(summary.TotalTrades))).
			Mul(hundred).
			Round(2)
	}

	for _, day := range days {
		summary.Calendar = append(summary.Calendar, *day)
	}
	sort.Slice(summary.Calendar, func(i, j int) bool {
		return summary.Calendar[i].Day < summary.Calendar[j].Day
	})
	return summary
}
