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

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, userID string, req dto.CreateAssetRequest) (*domain.Asset, error) {
	return s.createAsset(ctx, userID, req.Type, req)
}

func (s *assetService) CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Asset, error) {
	return s.createAsset(ctx, userID, domain.AssetTypeInvestment, dto.CreateAssetRequest{
		Name:        req.Name,
		Value:       req.Value,
		Description: req.Description,
	})
}

func (s *assetService) createAsset(ctx context.Context, userID, assetType string, req dto.CreateAssetRequest) (*domain.Asset, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	assetType = strings.ToLower(strings.TrimSpace(assetType))
	if name == "" || assetType == "" {
		return nil, fmt.Errorf("%w: asset name and type are required", apperrors.ErrValidation)
	}
	if req.Value.IsNegative() {
		return nil, fmt.Errorf("%w: asset value cannot be negative", apperrors.ErrValidation)
	}

	now := s.now()
	asset := domain.Asset{
		AssetID:     uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Type:        assetType,
		Value:       req.Value,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	s.LogInfo(ctx, "Asset created", slog.String("asset_id", asset.AssetID), slog.String("type", asset.Type))
	return &asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, userID string, assetType string) ([]domain.Asset, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.FindAssetsByUser(ctx, userID, strings.ToLower(strings.TrimSpace(assetType)))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, userID string, assetID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.assetRepo.DeleteAsset(ctx, userID, assetID); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	return nil
}
