package services

import (
	"context"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// ReportingService defines operations for the user's aggregated summaries
type ReportingService interface {
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
	ExpenseSummary(ctx context.Context, userID string, year int, month time.Month) (*domain.ExpenseSummary, error)
	InvestmentSummary(ctx context.Context, userID string) (*domain.InvestmentSummary, error)
	TradingSummary(ctx context.Context, userID string, year int, month time.Month) (*domain.TradingSummary, error)
}
