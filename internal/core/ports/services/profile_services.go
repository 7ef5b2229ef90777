package services

import (
	"context"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
)

// ProfileReaderSvc defines read operations for user profiles
type ProfileReaderSvc interface {
	// GetProfile returns the stored profile or a default USD profile.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// ProfileWriterSvc defines write operations for user profiles
type ProfileWriterSvc interface {
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.UserProfile, error)

	// ChangeBaseCurrency re-bases every stored amount into newCurrency and switches the profile.
	ChangeBaseCurrency(ctx context.Context, userID string, newCurrency domain.CurrencyCode) (*domain.RebaseResult, error)

	// DeleteAllData removes every ledger row of the user; the profile is kept.
	DeleteAllData(ctx context.Context, userID string) error
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
