package dto

import (
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLiabilityRequest defines the structure for recording a new liability.
type CreateLiabilityRequest struct {
	Name   string          `json:"name" binding:"required,max=255"`
	Type   string          `json:"type" binding:"required,max=50"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// LiabilityResponse defines the structure for API responses containing liability details.
type LiabilityResponse struct {
	LiabilityID     string          `json:"liabilityID"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formattedAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToLiabilityResponse converts a domain.Liability to LiabilityResponse DTO
func ToLiabilityResponse(l *domain.Liability, currency domain.CurrencyCode) LiabilityResponse {
	return LiabilityResponse{
		LiabilityID:     l.LiabilityID,
		Name:            l.Name,
		Type:            l.Type,
		Amount:          l.Amount,
		FormattedAmount: domain.FormatAmount(l.Amount, currency),
		CreatedAt:       l.CreatedAt,
	}
}

// ToListLiabilityResponse converts a slice of domain.Liability to LiabilityResponse DTOs
func ToListLiabilityResponse(liabilities []domain.Liability, currency domain.CurrencyCode) []LiabilityResponse {
	responses := make([]LiabilityResponse, len(liabilities))
	for i := range liabilities {
		responses[i] = ToLiabilityResponse(&liabilities[i], currency)
	}
	return responses
}
