package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthStatus is the dashboard health label.
type NetWorthStatus string

const (
	NetWorthLow      NetWorthStatus = "Low"
	NetWorthModerate NetWorthStatus = "Moderate"
	NetWorthHealthy  NetWorthStatus = "Healthy"
)

// Dashboard is the landing summary for a user.
type Dashboard struct {
	Currency         CurrencyCode    `json:"currency"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	NetWorthUSD      decimal.Decimal `json:"netWorthUSD"`
	Status           NetWorthStatus  `json:"status"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	RecentExpenses   []Expense       `json:"recentExpenses"`
}

// CategoryTotal is the spend of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseSummary aggregates one calendar month of expenses.
type ExpenseSummary struct {
	Currency       CurrencyCode    `json:"currency"`
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	Total          decimal.Decimal `json:"total"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
	Expenses       []Expense       `json:"expenses"`
}

// InvestmentSummary aggregates investment assets.
type InvestmentSummary struct {
	Currency    CurrencyCode    `json:"currency"`
	Total       decimal.Decimal `json:"total"`
	Investments []Asset         `json:"investments"`
}

// CalendarDay aggregates the closed trades of one day.
type CalendarDay struct {
	Day    int             `json:"day"`
	PnL    decimal.Decimal `json:"pnl"`
	Wins   int             `json:"wins"`
	Losses int             `json:"losses"`
}

// TradingSummary aggregates closed trades; open trades never appear in it.
type TradingSummary struct {
	Currency      CurrencyCode    `json:"currency"`
	TotalPnL      decimal.Decimal `json:"totalPnL"`
	TotalTrades   int             `json:"totalTrades"`
	WinningTrades int             `json:"winningTrades"`
	WinRate       decimal.Decimal `json:"winRate"`
	Year          int             `json:"year"`
	Month         time.Month      `json:"month"`
	DaysInMonth   int             `json:"daysInMonth"`
	FirstWeekday  time.Weekday    `json:"firstWeekday"`
	Calendar      []CalendarDay   `json:"calendar"`
	MonthlyWins   int             `json:"monthlyWins"`
	MonthlyLosses int             `json:"monthlyLosses"`
	MonthlyPnL    decimal.Decimal `json:"monthlyPnL"`
}
