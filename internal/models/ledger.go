package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a row of the assets table.
type Asset struct {
	AssetID     string          `db:"asset_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	Value       decimal.Decimal `db:"value"`
	Description sql.NullString  `db:"description"`
	AuditFields
}

// Liability is a row of the liabilities table.
type Liability struct {
	LiabilityID string          `db:"liability_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	AuditFields
}
