package dto

import (
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the structure for recording a new asset.
type CreateAssetRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Type        string          `json:"type" binding:"required,max=50"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
}

// CreateInvestmentRequest defines the structure for recording a new investment.
type CreateInvestmentRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Type string `form:"type"`
}

// AssetResponse defines the structure for API responses containing asset details.
type AssetResponse struct {
	AssetID        string          `json:"assetID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Value          decimal.Decimal `json:"value"`
	FormattedValue string          `json:"formattedValue"`
	Description    string          `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a *domain.Asset, currency domain.CurrencyCode) AssetResponse {
	return AssetResponse{
		AssetID:        a.AssetID,
		Name:           a.Name,
		Type:           a.Type,
		Value:          a.Value,
		FormattedValue: domain.FormatAmount(a.Value, currency),
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
	}
}

// ToListAssetResponse converts a slice of domain.Asset to AssetResponse DTOs
func ToListAssetResponse(assets []domain.Asset, currency domain.CurrencyCode) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i := range assets {
		responses[i] = ToAssetResponse(&assets[i], currency)
	}
	return responses
}
