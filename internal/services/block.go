package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/internal/events"
	"facilities-console/internal/repositories"
	"facilities-console/pkg/types"
)

type BlockServiceInterface interface {
	GetBlocks(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Block], error)
	FindBlock(ctx context.Context, id uint64) (*entities.Block, error)
	CreateBlock(ctx context.Context, payload dto.BlockPayload) error
	UpdateBlock(ctx context.Context, id uint64, payload dto.BlockPayload) error
	DeleteBlock(ctx context.Context, id uint64) error
}

type BlockService struct {
	blockRepository repositories.BlockRepositoryInterface
	publisher       EventPublisher
	logger          *zap.Logger
}

func NewBlockService(
	blockRepository repositories.BlockRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) BlockServiceInterface {
	return &BlockService{
		blockRepository: blockRepository,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *BlockService) GetBlocks(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Block], error) {
	return s.blockRepository.GetBlocks(ctx, q)
}

func (s *BlockService) FindBlock(ctx context.Context, id uint64) (*entities.Block, error) {
	return s.blockRepository.FindBlock(ctx, id)
}

func (s *BlockService) CreateBlock(ctx context.Context, payload dto.BlockPayload) error {
	if err := s.blockRepository.CreateBlock(ctx, payload); err != nil {
		s.logger.Error("ошибка при создании блока", zap.String("codigo", payload.Code), zap.Error(err))
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityBlock, events.ActionCreated, 0))
	return nil
}

func (s *BlockService) UpdateBlock(ctx context.Context, id uint64, payload dto.BlockPayload) error {
	if err := s.blockRepository.UpdateBlock(ctx, id, payload); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityBlock, events.ActionUpdated, id))
	return nil
}

func (s *BlockService) DeleteBlock(ctx context.Context, id uint64) error {
	if err := s.blockRepository.DeleteBlock(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityBlock, events.ActionDeleted, id))
	return nil
}
