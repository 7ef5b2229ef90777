package dto

import (
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams selects a calendar month; zero values mean the current month.
type ReportPeriodParams struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// DashboardResponse represents the landing summary response
type DashboardResponse struct {
	Currency         domain.CurrencyCode   `json:"currency"`
	CurrencySymbol   string                `json:"currencySymbol"`
	TotalAssets      decimal.Decimal       `json:"totalAssets"`
	TotalLiabilities decimal.Decimal       `json:"totalLiabilities"`
	NetWorth         decimal.Decimal       `json:"netWorth"`
	NetWorthUSD      decimal.Decimal       `json:"netWorthUSD"`
	Status           domain.NetWorthStatus `json:"status"`
	MonthlyExpenses  decimal.Decimal       `json:"monthlyExpenses"`
	RecentExpenses   []ExpenseResponse     `json:"recentExpenses"`
	Formatted        struct {
		TotalAssets      string `json:"totalAssets"`
		TotalLiabilities string `json:"totalLiabilities"`
		NetWorth         string `json:"netWorth"`
		MonthlyExpenses  string `json:"monthlyExpenses"`
	} `json:"formatted"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Currency:         d.Currency,
		CurrencySymbol:   d.Currency.Symbol(),
		TotalAssets:      d.TotalAssets,
		TotalLiabilities: d.TotalLiabilities,
		NetWorth:         d.NetWorth,
		NetWorthUSD:      d.NetWorthUSD,
		Status:           d.Status,
		MonthlyExpenses:  d.MonthlyExpenses,
		RecentExpenses:   ToListExpenseResponse(d.RecentExpenses, d.Currency),
	}
	resp.Formatted.TotalAssets = domain.FormatAmount(d.TotalAssets, d.Currency)
	resp.Formatted.TotalLiabilities = domain.FormatAmount(d.TotalLiabilities, d.Currency)
	resp.Formatted.NetWorth = domain.FormatAmount(d.NetWorth, d.Currency)
	resp.Formatted.MonthlyExpenses = domain.FormatAmount(d.MonthlyExpenses, d.Currency)
	return resp
}

// CategoryTotalResponse represents the spend of one category
type CategoryTotalResponse struct {
	Category       string          `json:"category"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
}

// ExpenseSummaryResponse represents the monthly expense report response
type ExpenseSummaryResponse struct {
	Currency       domain.CurrencyCode     `json:"currency"`
	CurrencySymbol string                  `json:"currencySymbol"`
	Year           int                     `json:"year"`
	Month          int                     `json:"month"`
	Total          decimal.Decimal         `json:"total"`
	FormattedTotal string                  `json:"formattedTotal"`
	CategoryTotals []CategoryTotalResponse `json:"categoryTotals"`
	Expenses       []ExpenseResponse       `json:"expenses"`
}

// ToExpenseSummaryResponse converts a domain.ExpenseSummary to its response DTO
func ToExpenseSummaryResponse(s *domain.ExpenseSummary) ExpenseSummaryResponse {
	categories := make([]CategoryTotalResponse, len(s.CategoryTotals))
	for i, c := range s.CategoryTotals {
		categories[i] = CategoryTotalResponse{
			Category:       c.Category,
			Total:          c.Total,
			FormattedTotal: domain.FormatAmount(c.Total, s.Currency),
		}
	}
	return ExpenseSummaryResponse{
		Currency:       s.Currency,
		CurrencySymbol: s.Currency.Symbol(),
		Year:           s.Year,
		Month:          int(s.Month),
		Total:          s.Total,
		FormattedTotal: domain.FormatAmount(s.Total, s.Currency),
		CategoryTotals: categories,
		Expenses:       ToListExpenseResponse(s.Expenses, s.Currency),
	}
}

// InvestmentSummaryResponse represents the investments report response
type InvestmentSummaryResponse struct {
	Currency       domain.CurrencyCode `json:"currency"`
	CurrencySymbol string              `json:"currencySymbol"`
	Total          decimal.Decimal     `json:"total"`
	FormattedTotal string              `json:"formattedTotal"`
	Investments    []AssetResponse     `json:"investments"`
}

// ToInvestmentSummaryResponse converts a domain.InvestmentSummary to its response DTO
func ToInvestmentSummaryResponse(s *domain.InvestmentSummary) InvestmentSummaryResponse {
	return InvestmentSummaryResponse{
		Currency:       s.Currency,
		CurrencySymbol: s.Currency.Symbol(),
		Total:          s.Total,
		FormattedTotal: domain.FormatAmount(s.Total, s.Currency),
		Investments:    ToListAssetResponse(s.Investments, s.Currency),
	}
}

// CalendarDayResponse represents one day of the trading calendar
type CalendarDayResponse struct {
	Day          int             `json:"day"`
	PnL          decimal.Decimal `json:"pnl"`
	FormattedPnL string          `json:"formattedPnl"`
	Wins         int             `json:"wins"`
	Losses       int             `json:"losses"`
}

// TradingSummaryResponse represents the trading journal report response
type TradingSummaryResponse struct {
	Currency          domain.CurrencyCode   `json:"currency"`
	CurrencySymbol    string                `json:"currencySymbol"`
	TotalPnL          decimal.Decimal       `json:"totalPnL"`
	FormattedTotalPnL string                `json:"formattedTotalPnL"`
	TotalTrades       int                   `json:"totalTrades"`
	WinningTrades     int                   `json:"winningTrades"`
	WinRate           decimal.Decimal       `json:"winRate"`
	Year              int                   `json:"year"`
	Month             int                   `json:"month"`
	DaysInMonth       int                   `json:"daysInMonth"`
	FirstWeekday      int                   `json:"firstWeekday"` // 0 = Sunday
	Calendar          []CalendarDayResponse `json:"calendar"`
	MonthlyWins       int                   `json:"monthlyWins"`
	MonthlyLosses     int                   `json:"monthlyLosses"`
	MonthlyPnL        decimal.Decimal       `json:"monthlyPnL"`
}

// ToTradingSummaryResponse converts a domain.TradingSummary to its response DTO
func ToTradingSummaryResponse(s *domain.TradingSummary) TradingSummaryResponse {
	days := make([]CalendarDayResponse, len(s.Calendar))
	for i, d := range s.Calendar {
		days[i] = CalendarDayResponse{
			Day:          d.Day,
			PnL:          d.PnL,
			FormattedPnL: domain.FormatAmount(d.PnL, s.Currency),
			Wins:         d.Wins,
			Losses:       d.Losses,
		}
	}
	return TradingSummaryResponse{
		Currency:          s.Currency,
		CurrencySymbol:    s.Currency.Symbol(),
		TotalPnL:          s.TotalPnL,
		FormattedTotalPnL: domain.FormatAmount(s.TotalPnL, s.Currency),
		TotalTrades:       s.TotalTrades,
		WinningTrades:     s.WinningTrades,
		WinRate:           s.WinRate,
		Year:              s.Year,
		Month:             int(s.Month),
		DaysInMonth:       s.DaysInMonth,
		FirstWeekday:      int(s.FirstWeekday),
		Calendar:          days,
		MonthlyWins:       s.MonthlyWins,
		MonthlyLosses:     s.MonthlyLosses,
		MonthlyPnL:        s.MonthlyPnL,
	}
}
