package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/models"
	"github.com/SscSPs/casa_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxLiabilityRepository struct {
	BaseRepository
}

func newPgxLiabilityRepository(pool PgxPool) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

const liabilityColumns = `liability_id, user_id, name, type, amount, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) error {
	m := mapping.ToModelLiability(liability)
	query := `INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	_, err := r.Pool.Exec(ctx, query,
		m.LiabilityID, m.UserID, m.Name, m.Type, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapInsertError(err, "liability", m.LiabilityID)
	}
	return nil
}

func (r *PgxLiabilityRepository) FindLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE user_id = $1
		ORDER BY created_at DESC, liability_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liabilities for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Liability])
	if err != nil {
		return nil, fmt.Errorf("failed to scan liabilities for user %s: %w", userID, err)
	}
	return mapping.ToDomainLiabilitySlice(ms), nil
}

func (r *PgxLiabilityRepository) DeleteLiability(ctx context.Context, userID string, liabilityID string) error {
	return deleteOwned(ctx, r.Pool, "liabilities", "liability_id", userID, liabilityID)
}

func (r *PgxLiabilityRepository) DeleteLiabilitiesByUser(ctx context.Context, userID string) (int64, error) {
	return deleteAllOwned(ctx, r.Pool, "liabilities", userID)
}
