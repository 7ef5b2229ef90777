package services

import (
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateReader portsrepo.ExchangeRateReader) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Every currency-aware service depends on the rate gateway.
	container.ExchangeRate = NewExchangeRateService(rateReader)

	container.Asset = NewAssetService(repos.AssetRepo)
	container.Liability = NewLiabilityService(repos.LiabilityRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Trade = NewTradeService(repos.TradeRepo, repos.ProfileRepo, container.ExchangeRate,
		WithTradeRateFallback(cfg.TradeRateFallback))
	container.Profile = NewProfileService(repos, container.ExchangeRate,
		WithRebaseRateFallback(cfg.RebaseRateFallback))
	container.Reporting = NewReportingService(repos, container.ExchangeRate)

	return container
}
