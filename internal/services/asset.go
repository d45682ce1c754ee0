package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/entities"
	"facilities-console/internal/events"
	"facilities-console/internal/listing"
	"facilities-console/internal/repositories"
	"facilities-console/pkg/types"
	"facilities-console/pkg/utils"
)

// Выгрузка не ходит дальше этой страницы, даже если backend обещает больше.
const maxExportPages = 200

type AssetServiceInterface interface {
	GetAssets(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Asset], error)
	DeleteAsset(ctx context.Context, id uint64) error
	GetEnvironments(ctx context.Context) ([]entities.Environment, error)
	// CollectAssets проходит все страницы списка с данным поиском.
	CollectAssets(ctx context.Context, search string) ([]entities.Asset, error)
}

type AssetService struct {
	assetRepository repositories.AssetRepositoryInterface
	publisher       EventPublisher
	logger          *zap.Logger
}

func NewAssetService(
	assetRepository repositories.AssetRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) AssetServiceInterface {
	return &AssetService{
		assetRepository: assetRepository,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *AssetService) GetAssets(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Asset], error) {
	return s.assetRepository.GetAssets(ctx, q)
}

func (s *AssetService) DeleteAsset(ctx context.Context, id uint64) error {
	if err := s.assetRepository.DeleteAsset(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityAsset, events.ActionDeleted, id))
	return nil
}

func (s *AssetService) GetEnvironments(ctx context.Context) ([]entities.Environment, error) {
	return s.assetRepository.GetEnvironments(ctx)
}

func (s *AssetService) CollectAssets(ctx context.Context, search string) ([]entities.Asset, error) {
	var all []entities.Asset
	for page := 1; page <= maxExportPages; page++ {
		resp, err := s.assetRepository.GetAssets(ctx, types.ListQuery{Page: page, Limit: utils.MaxLimit, Search: search})
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Items...)

		// hasNextPage здесь не расширяет счёт: пустая страница завершает обход
		if len(resp.Items) == 0 || page >= listing.ResolvePageCount(resp.Meta, page) {
			break
		}
	}
	s.logger.Info("активы собраны для выгрузки", zap.Int("count", len(all)), zap.String("search", search))
	return all, nil
}
