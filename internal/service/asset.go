package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/repository"
)

// AssetService handles business logic for assets and the request workflow
type AssetService struct {
	assetRepo repository.AssetRepository
}

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo repository.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
	}
}

// CreateAsset validates and inserts a new asset document
func (s *AssetService) CreateAsset(ctx context.Context, a *domain.Asset) (*domain.InsertOneResult, error) {
	if a.AssetName == "" {
		return nil, domain.ErrAssetNameRequired
	}
	if a.Quantity < 0 {
		a.Quantity = 0
	}

	return s.assetRepo.Create(ctx, a)
}

// GetAsset retrieves a single asset by its opaque id
func (s *AssetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	assetID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.assetRepo.GetByID(ctx, assetID)
}

// ListAssets lists assets matching the filter
func (s *AssetService) ListAssets(ctx context.Context, f domain.AssetFilter) ([]*domain.Asset, error) {
	return s.assetRepo.List(ctx, f)
}

// ReplaceAsset fully replaces an asset document, inserting it when absent
func (s *AssetService) ReplaceAsset(ctx context.Context, id string, a *domain.Asset) (*domain.UpdateResult, error) {
	assetID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	if a.AssetName == "" {
		return nil, domain.ErrAssetNameRequired
	}
	if a.Quantity < 0 {
		a.Quantity = 0
	}

	return s.assetRepo.Replace(ctx, assetID, a)
}

// UpdateAssetFields merges the submitted fields into the asset document
func (s *AssetService) UpdateAssetFields(ctx context.Context, id string, upd domain.AssetUpdate) (*domain.UpdateResult, error) {
	assetID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.assetRepo.UpdateFields(ctx, assetID, upd)
}

// RequestAsset decrements the stock quantity by one as part of the request
// workflow. The decrement is a single conditional update, so the quantity is
// clamped at zero even under concurrent requesters.
func (s *AssetService) RequestAsset(ctx context.Context, id string) (*domain.UpdateResult, error) {
	assetID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.assetRepo.DecrementQuantity(ctx, assetID)
}

// DeleteAsset removes an asset document by id
func (s *AssetService) DeleteAsset(ctx context.Context, id string) (*domain.DeleteResult, error) {
	assetID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.assetRepo.Delete(ctx, assetID)
}
