package repositories

import (
	"context"

	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/types"
)

const facultyPath = "/facultades"

type FacultyRepositoryInterface interface {
	GetFaculties(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Faculty], error)
	GetAllFaculties(ctx context.Context) ([]entities.Faculty, error)
	FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error)
	CreateFaculty(ctx context.Context, payload dto.FacultyPayload) error
	UpdateFaculty(ctx context.Context, id uint64, payload dto.FacultyPayload) error
	DeleteFaculty(ctx context.Context, id uint64) error
}

type FacultyRepository struct {
	resource apiResource[entities.Faculty]
}

func NewFacultyRepository(client *apiclient.Client, logger *zap.Logger) FacultyRepositoryInterface {
	return &FacultyRepository{resource: newAPIResource[entities.Faculty](client, facultyPath, logger)}
}

func (r *FacultyRepository) GetFaculties(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Faculty], error) {
	return r.resource.list(ctx, q)
}

func (r *FacultyRepository) GetAllFaculties(ctx context.Context) ([]entities.Faculty, error) {
	return r.resource.all(ctx)
}

func (r *FacultyRepository) FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error) {
	return r.resource.find(ctx, id)
}

func (r *FacultyRepository) CreateFaculty(ctx context.Context, payload dto.FacultyPayload) error {
	return r.resource.create(ctx, payload)
}

func (r *FacultyRepository) UpdateFaculty(ctx context.Context, id uint64, payload dto.FacultyPayload) error {
	return r.resource.update(ctx, id, payload)
}

func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id uint64) error {
	return r.resource.delete(ctx, id)
}
