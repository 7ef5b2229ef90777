package pgsql

import (
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:     newPgxAssetRepository(dbPool),
		LiabilityRepo: newPgxLiabilityRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		TradeRepo:     newPgxTradeRepository(dbPool),
		ProfileRepo:   newPgxProfileRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
	}
}
