package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

type profileService struct {
	BaseService
	profileRepo   portsrepo.ProfileRepositoryFacade
	ledgerRepo    portsrepo.LedgerRebaser
	assetRepo     portsrepo.AssetWriter
	liabilityRepo portsrepo.LiabilityWriter
	expenseRepo   portsrepo.ExpenseWriter
	tradeRepo     portsrepo.TradeWriter
	rates         portssvc.ExchangeRateSvc
	fallback      domain.RateFallback
}

// ProfileServiceOption is a functional option for configuring the profile service
type ProfileServiceOption func(*profileService)

// WithRebaseRateFallback sets what an unknown conversion rate resolves to during re-basing.
func WithRebaseRateFallback(policy domain.RateFallback) ProfileServiceOption {
	return func(s *profileService) {
		s.fallback = policy
	}
}

// NewProfileService creates the profile service. It needs every ledger writer because
// re-basing and data deletion span all of them.
func NewProfileService(repos portsrepo.RepositoryProvider, rates portssvc.ExchangeRateSvc, options ...ProfileServiceOption) portssvc.ProfileSvcFacade {
	svc := &profileService{
		profileRepo:   repos.ProfileRepo,
		ledgerRepo:    repos.LedgerRepo,
		assetRepo:     repos.AssetRepo,
		liabilityRepo: repos.LiabilityRepo,
		expenseRepo:   repos.ExpenseRepo,
		tradeRepo:     repos.TradeRepo,
		rates:         rates,
		fallback:      domain.FallbackIdentity,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// GetProfile returns the stored profile, or an unsaved default one in USD.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.UserProfile{UserID: userID, Currency: domain.DefaultCurrency}, nil
		}
		s.LogError(ctx, err, "Failed to load profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.Currency == "" {
		profile.Currency = domain.DefaultCurrency
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", apperrors.ErrValidation)
	}

	now := s.now()
	if profile.CreatedAt.IsZero() {
		profile.AuditFields = domain.NewAuditFields(userID, now)
	}
	profile.FullName = fullName
	profile.LastUpdatedAt = now
	profile.LastUpdatedBy = userID

	if err := s.profileRepo.SaveProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// ChangeBaseCurrency converts every stored amount from the current base currency to newCurrency
// and switches the profile, all in one transaction. Changing to the current currency is a no-op.
func (s *profileService) ChangeBaseCurrency(ctx context.Context, userID string, newCurrency domain.CurrencyCode) (*domain.RebaseResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	newCurrency = domain.NormalizeCurrencyCode(newCurrency.String())
	if !newCurrency.IsWellFormed() {
		return nil, fmt.Errorf("%w: invalid currency code %q", apperrors.ErrValidation, newCurrency)
	}

	oldCurrency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	logAttrs := []any{slog.String("from", oldCurrency.String()), slog.String("to", newCurrency.String())}

	if oldCurrency == newCurrency {
		s.LogDebug(ctx, "Base currency unchanged, nothing to rebase", logAttrs...)
		return &domain.RebaseResult{
			FromCurrency: oldCurrency,
			ToCurrency:   newCurrency,
			Rate:         decimal.NewFromInt(1),
		}, nil
	}

	quote := s.rates.GetRate(ctx, oldCurrency, newCurrency)
	rate, err := quote.Resolve(s.fallback)
	if err != nil {
		s.LogWarn(ctx, "Exchange rate unavailable, base currency not changed", logAttrs...)
		return nil, err
	}
	// A zero multiplier would erase the ledger; only a known positive rate or identity may be applied.
	if !rate.IsPositive() {
		s.LogWarn(ctx, "Refusing to rebase with a non-positive rate", append(logAttrs, slog.String("fallback", string(s.fallback)))...)
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrRateUnavailable, oldCurrency, newCurrency)
	}
	fallbackApplied := !quote.IsKnown()
	if fallbackApplied {
		s.LogWarn(ctx, "Exchange rate unavailable, switching currency label without converting amounts",
			append(logAttrs, slog.String("reason", quote.Reason))...)
	}

	result, err := s.ledgerRepo.RebaseLedger(ctx, userID, oldCurrency, newCurrency, rate, s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Concurrent base currency change detected", logAttrs...)
		} else {
			s.LogError(ctx, err, "Failed to rebase ledger", logAttrs...)
		}
		return nil, fmt.Errorf("failed to change base currency: %w", err)
	}
	result.RateFallbackApplied = fallbackApplied

	s.LogInfo(ctx, "Base currency changed", append(logAttrs,
		slog.String("rate", rate.String()),
		slog.Int64("assets", result.AssetsUpdated),
		slog.Int64("liabilities", result.LiabilitiesUpdated),
		slog.Int64("expenses", result.ExpensesUpdated),
		slog.Int64("trades", result.TradesUpdated))...)
	return result, nil
}

// DeleteAllData removes trades, expenses, liabilities and assets. Each table is attempted even
// when an earlier one fails; all failures are returned together.
func (s *profileService) DeleteAllData(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	steps := []struct {
		table string
		purge func(context.Context, string) (int64, error)
	}{
		{"trades", s.tradeRepo.DeleteTradesByUser},
		{"expenses", s.expenseRepo.DeleteExpensesByUser},
		{"liabilities", s.liabilityRepo.DeleteLiabilitiesByUser},
		{"assets", s.assetRepo.DeleteAssetsByUser},
	}

	var errs []error
	for _, step := range steps {
		n, err := step.purge(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to delete user data", slog.String("table", step.table))
			errs = append(errs, fmt.Errorf("deleting %s: %w", step.table, err))
			continue
		}
		s.LogInfo(ctx, "Deleted user data", slog.String("table", step.table), slog.Int64("rows", n))
	}
	return errors.Join(errs...)
}
