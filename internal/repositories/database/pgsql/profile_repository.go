package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/models"
	"github.com/SscSPs/casa_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool PgxPool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, full_name, currency, created_at, created_by, last_updated_at, last_updated_by
		FROM user_profiles
		WHERE user_id = $1;
	`
	var m models.UserProfile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.FullName,
		&m.Currency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}

	profile := mapping.ToDomainUserProfile(m)
	return &profile, nil
}

// SaveProfile upserts the profile. On conflict only the name and update stamps change.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	m := mapping.ToModelUserProfile(profile)
	query := `
		INSERT INTO user_profiles (user_id, full_name, currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.FullName, m.Currency,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile for user %s: %w", m.UserID, err)
	}
	return nil
}
