package repositories

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/entities"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/types"
)

const (
	assetPath       = "/activos"
	environmentPath = "/ambientes"
)

// Активы в консоли только читаются и удаляются.
type AssetRepositoryInterface interface {
	GetAssets(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Asset], error)
	DeleteAsset(ctx context.Context, id uint64) error
	GetEnvironments(ctx context.Context) ([]entities.Environment, error)
}

type AssetRepository struct {
	resource     apiResource[entities.Asset]
	environments apiResource[entities.Environment]
}

func NewAssetRepository(client *apiclient.Client, logger *zap.Logger) AssetRepositoryInterface {
	return &AssetRepository{
		resource:     newAPIResource[entities.Asset](client, assetPath, logger),
		environments: newAPIResource[entities.Environment](client, environmentPath, logger),
	}
}

func (r *AssetRepository) GetAssets(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Asset], error) {
	return r.resource.list(ctx, q)
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, id uint64) error {
	return r.resource.delete(ctx, id)
}

func (r *AssetRepository) GetEnvironments(ctx context.Context) ([]entities.Environment, error) {
	return r.environments.all(ctx)
}
