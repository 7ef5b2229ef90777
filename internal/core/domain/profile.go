package domain

import "github.com/shopspring/decimal"

// UserProfile holds the per-user settings. Currency governs how every stored amount is read.
type UserProfile struct {
	UserID   string       `json:"userID"`
	FullName string       `json:"fullName"`
	Currency CurrencyCode `json:"currency"`
	AuditFields
}

// RebaseResult reports what a base-currency change did.
type RebaseResult struct {
	FromCurrency        CurrencyCode    `json:"fromCurrency"`
	ToCurrency          CurrencyCode    `json:"toCurrency"`
	Changed             bool            `json:"changed"`
	Rate                decimal.Decimal `json:"rate"`
	RateFallbackApplied bool            `json:"rateFallbackApplied"`
	AssetsUpdated       int64           `json:"assetsUpdated"`
	LiabilitiesUpdated  int64           `json:"liabilitiesUpdated"`
	ExpensesUpdated     int64           `json:"expensesUpdated"`
	TradesUpdated       int64           `json:"tradesUpdated"`
}
