package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

func NewLiabilityService(liabilityRepo portsrepo.LiabilityRepositoryFacade) portssvc.LiabilitySvcFacade {
	return &liabilityService{liabilityRepo: liabilityRepo}
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

func (s *liabilityService) CreateLiability(ctx context.Context, userID string, req dto.CreateLiabilityRequest) (*domain.Liability, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Type) == "" {
		return nil, fmt.Errorf("%w: liability name and type are required", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: liability amount cannot be negative", apperrors.ErrValidation)
	}

	liability := domain.Liability{
		LiabilityID: uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Type:        strings.ToLower(strings.TrimSpace(req.Type)),
		Amount:      req.Amount,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.liabilityRepo.SaveLiability(ctx, liability); err != nil {
		s.LogError(ctx, err, "Failed to save liability", slog.String("liability_id", liability.LiabilityID))
		return nil, fmt.Errorf("failed to create liability: %w", err)
	}
	return &liability, nil
}

func (s *liabilityService) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	liabilities, err := s.liabilityRepo.FindLiabilitiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	return liabilities, nil
}

func (s *liabilityService) DeleteLiability(ctx context.Context, userID string, liabilityID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.liabilityRepo.DeleteLiability(ctx, userID, liabilityID); err != nil {
		return fmt.Errorf("failed to delete liability %s: %w", liabilityID, err)
	}
	return nil
}
