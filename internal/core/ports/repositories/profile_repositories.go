package repositories

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
)

// ProfileReader defines read operations for user profiles
type ProfileReader interface {
	// FindProfileByUserID returns apperrors.ErrNotFound when the user never saved a profile.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// ProfileWriter defines write operations for user profiles
type ProfileWriter interface {
	// SaveProfile inserts the profile or updates its name. The currency is only
	// written on insert; changing it goes through LedgerRebaser.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
