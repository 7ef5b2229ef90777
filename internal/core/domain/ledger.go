package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetTypeInvestment marks assets shown on the investments page.
const AssetTypeInvestment = "investment"

// Asset is something the user owns, valued in the profile currency.
type Asset struct {
	AssetID     string          `json:"assetID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"` // Nullable
	AuditFields
}

// Liability is something the user owes, valued in the profile currency.
type Liability struct {
	LiabilityID string          `json:"liabilityID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// Expense is a single spend, valued in the profile currency.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	UserID      string          `json:"userID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	AuditFields
}
