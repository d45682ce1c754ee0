package repositories

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/types"
)

const (
	blockPath     = "/bloques"
	blockTypePath = "/tipo_bloques"
)

type BlockRepositoryInterface interface {
	GetBlocks(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Block], error)
	FindBlock(ctx context.Context, id uint64) (*entities.Block, error)
	CreateBlock(ctx context.Context, payload dto.BlockPayload) error
	UpdateBlock(ctx context.Context, id uint64, payload dto.BlockPayload) error
	DeleteBlock(ctx context.Context, id uint64) error
	GetBlockTypes(ctx context.Context) ([]entities.BlockType, error)
}

type BlockRepository struct {
	resource   apiResource[entities.Block]
	blockTypes apiResource[entities.BlockType]
}

func NewBlockRepository(client *apiclient.Client, logger *zap.Logger) BlockRepositoryInterface {
	return &BlockRepository{
		resource:   newAPIResource[entities.Block](client, blockPath, logger),
		blockTypes: newAPIResource[entities.BlockType](client, blockTypePath, logger),
	}
}

func (r *BlockRepository) GetBlocks(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Block], error) {
	return r.resource.list(ctx, q)
}

func (r *BlockRepository) FindBlock(ctx context.Context, id uint64) (*entities.Block, error) {
	return r.resource.find(ctx, id)
}

func (r *BlockRepository) CreateBlock(ctx context.Context, payload dto.BlockPayload) error {
	return r.resource.create(ctx, payload)
}

func (r *BlockRepository) UpdateBlock(ctx context.Context, id uint64, payload dto.BlockPayload) error {
	return r.resource.update(ctx, id, payload)
}

func (r *BlockRepository) DeleteBlock(ctx context.Context, id uint64) error {
	return r.resource.delete(ctx, id)
}

func (r *BlockRepository) GetBlockTypes(ctx context.Context) ([]entities.BlockType, error) {
	return r.blockTypes.all(ctx)
}
