package repositories

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/types"
)

const campusPath = "/campus"

type CampusRepositoryInterface interface {
	GetCampuses(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Campus], error)
	GetAllCampuses(ctx context.Context) ([]entities.Campus, error)
	FindCampus(ctx context.Context, id uint64) (*entities.Campus, error)
	CreateCampus(ctx context.Context, payload dto.CampusPayload) error
	UpdateCampus(ctx context.Context, id uint64, payload dto.CampusPayload) error
	DeleteCampus(ctx context.Context, id uint64) error
}

type CampusRepository struct {
	resource apiResource[entities.Campus]
}

func NewCampusRepository(client *apiclient.Client, logger *zap.Logger) CampusRepositoryInterface {
	return &CampusRepository{resource: newAPIResource[entities.Campus](client, campusPath, logger)}
}

func (r *CampusRepository) GetCampuses(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Campus], error) {
	return r.resource.list(ctx, q)
}

func (r *CampusRepository) GetAllCampuses(ctx context.Context) ([]entities.Campus, error) {
	return r.resource.all(ctx)
}

func (r *CampusRepository) FindCampus(ctx context.Context, id uint64) (*entities.Campus, error) {
	return r.resource.find(ctx, id)
}

func (r *CampusRepository) CreateCampus(ctx context.Context, payload dto.CampusPayload) error {
	return r.resource.create(ctx, payload)
}

func (r *CampusRepository) UpdateCampus(ctx context.Context, id uint64, payload dto.CampusPayload) error {
	return r.resource.update(ctx, id, payload)
}

func (r *CampusRepository) DeleteCampus(ctx context.Context, id uint64) error {
	return r.resource.delete(ctx, id)
}
