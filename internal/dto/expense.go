package dto

import (
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the structure for recording a new expense.
// Date defaults to today when omitted.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required,max=100"`
	Date        *time.Time      `json:"date"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=500"`
}

// ExpenseResponse defines the structure for API responses containing expense details.
type ExpenseResponse struct {
	ExpenseID       string          `json:"expenseID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formattedAmount"`
	Category        string          `json:"category"`
	Date            string          `json:"date"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense, currency domain.CurrencyCode) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		Description:     e.Description,
		Amount:          e.Amount,
		FormattedAmount: domain.FormatAmount(e.Amount, currency),
		Category:        e.Category,
		Date:            e.Date.Format(time.DateOnly),
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense, currency domain.CurrencyCode) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i], currency)
	}
	return responses
}
