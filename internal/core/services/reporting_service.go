package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/utils/accounting"
)

const recentExpensesOnDashboard = 5

// reportingService builds the read-only summaries shown on the dashboard pages.
type reportingService struct {
	BaseService
	assetRepo     portsrepo.AssetReader
	liabilityRepo portsrepo.LiabilityReader
	expenseRepo   portsrepo.ExpenseReader
	tradeRepo     portsrepo.TradeReader
	profileRepo   portsrepo.ProfileReader
	rates         portssvc.ExchangeRateSvc
	loc           *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock that decides the current month.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Now = now
	}
}

// WithReportingLocation sets the time zone month boundaries are computed in (UTC by default).
func WithReportingLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, rates portssvc.ExchangeRateSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		assetRepo:     repos.AssetRepo,
		liabilityRepo: repos.LiabilityRepo,
		expenseRepo:   repos.ExpenseRepo,
		tradeRepo:     repos.TradeRepo,
		profileRepo:   repos.ProfileRepo,
		rates:         rates,
		loc:           time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// period defaults a zero year or month to the current one.
func (s *reportingService) period(year int, month time.Month) (int, time.Month) {
	now := s.now().In(s.loc)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	return year, month
}

func (s *reportingService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.FindAssetsByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for dashboard: %w", err)
	}
	liabilities, err := s.liabilityRepo.FindLiabilitiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load liabilities for dashboard: %w", err)
	}

	year, month := s.period(0, 0)
	from, to := accounting.MonthRange(year, month, s.loc)
	monthExpenses, err := s.expenseRepo.FindExpensesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for dashboard: %w", err)
	}

	d := &domain.Dashboard{
		Currency:         currency,
		TotalAssets:      accounting.SumAssets(assets),
		TotalLiabilities: accounting.SumLiabilities(liabilities),
		MonthlyExpenses:  accounting.SumExpenses(monthExpenses),
		RecentExpenses:   monthExpenses,
	}
	if len(d.RecentExpenses) > recentExpensesOnDashboard {
		d.RecentExpenses = d.RecentExpenses[:recentExpensesOnDashboard]
	}
	d.NetWorth = d.TotalAssets.Sub(d.TotalLiabilities)

	// Display valuation only; an unknown rate values the net worth at zero.
	usdRate, _ := s.rates.GetRate(ctx, currency, domain.DefaultCurrency).Resolve(domain.FallbackZero)
	d.NetWorthUSD = d.NetWorth.Mul(usdRate)
	d.Status = accounting.NetWorthStatusFor(d.NetWorthUSD)
	return d, nil
}

func (s *reportingService) ExpenseSummary(ctx context.Context, userID string, year int, month time.Month) (*domain.ExpenseSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	year, month = s.period(year, month)
	from, to := accounting.MonthRange(year, month, s.loc)
	expenses, err := s.expenseRepo.FindExpensesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for summary: %w", err)
	}
	return accounting.SummarizeExpenses(expenses, currency, year, month, s.loc), nil
}

func (s *reportingService) InvestmentSummary(ctx context.Context, userID string) (*domain.InvestmentSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	investments, err := s.assetRepo.FindAssetsByUser(ctx, userID, domain.AssetTypeInvestment)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	return &domain.InvestmentSummary{
		Currency:    currency,
		Total:       accounting.SumAssets(investments),
		Investments: investments,
	}, nil
}

func (s *reportingService) TradingSummary(ctx context.Context, userID string, year int, month time.Month) (*domain.TradingSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	trades, err := s.tradeRepo.FindClosedTrades(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades for summary: %w", err)
	}
	year, month = s.period(year, month)
	return accounting.SummarizeTrades(trades, currency, year, month, s.loc), nil
}
