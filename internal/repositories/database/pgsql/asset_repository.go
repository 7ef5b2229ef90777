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

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool PgxPool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, user_id, name, type, value, description, created_at, created_by, last_updated_at, last_updated_by`

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.UserID, m.Name, m.Type, m.Value, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapInsertError(err, "asset", m.AssetID)
	}
	return nil
}

// FindAssetsByUser lists assets newest first, optionally filtered by type.
func (r *PgxAssetRepository) FindAssetsByUser(ctx context.Context, userID string, assetType string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + `
		FROM assets
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC, asset_id;`

	rows, err := r.Pool.Query(ctx, query, userID, assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets for user %s: %w", userID, err)
	}
	return mapping.ToDomainAssetSlice(ms), nil
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, userID string, assetID string) error {
	return deleteOwned(ctx, r.Pool, "assets", "asset_id", userID, assetID)
}

func (r *PgxAssetRepository) DeleteAssetsByUser(ctx context.Context, userID string) (int64, error) {
	return deleteAllOwned(ctx, r.Pool, "assets", userID)
}
