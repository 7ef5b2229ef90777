package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now is the service clock; nil means time.Now.
	Now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// now returns the current UTC time from the service clock.
func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// requireUser rejects calls made without an authenticated user.
func requireUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrUnauthorized)
	}
	return nil
}

// profileCurrency returns the user's base currency, defaulting when no profile was saved yet.
func profileCurrency(ctx context.Context, profiles portsrepo.ProfileReader, userID string) (domain.CurrencyCode, error) {
	profile, err := profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultCurrency, nil
		}
		return "", fmt.Errorf("failed to load profile currency: %w", err)
	}
	if profile.Currency == "" {
		return domain.DefaultCurrency, nil
	}
	return profile.Currency, nil
}
