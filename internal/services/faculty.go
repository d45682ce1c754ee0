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

type FacultyServiceInterface interface {
	GetFaculties(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Faculty], error)
	FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error)
	CreateFaculty(ctx context.Context, payload dto.FacultyPayload) error
	UpdateFaculty(ctx context.Context, id uint64, payload dto.FacultyPayload) error
	DeleteFaculty(ctx context.Context, id uint64) error
}

type FacultyService struct {
	facultyRepository repositories.FacultyRepositoryInterface
	publisher         EventPublisher
	logger            *zap.Logger
}

func NewFacultyService(
	facultyRepository repositories.FacultyRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) FacultyServiceInterface {
	return &FacultyService{
		facultyRepository: facultyRepository,
		publisher:         publisher,
		logger:            logger,
	}
}

func (s *FacultyService) GetFaculties(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Faculty], error) {
	return s.facultyRepository.GetFaculties(ctx, q)
}

func (s *FacultyService) FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error) {
	return s.facultyRepository.FindFaculty(ctx, id)
}

func (s *FacultyService) CreateFaculty(ctx context.Context, payload dto.FacultyPayload) error {
	if err := s.facultyRepository.CreateFaculty(ctx, payload); err != nil {
		s.logger.Error("ошибка при создании факультета", zap.String("codigo", payload.Code), zap.Error(err))
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityFaculty, events.ActionCreated, 0))
	return nil
}

func (s *FacultyService) UpdateFaculty(ctx context.Context, id uint64, payload dto.FacultyPayload) error {
	if err := s.facultyRepository.UpdateFaculty(ctx, id, payload); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityFaculty, events.ActionUpdated, id))
	return nil
}

func (s *FacultyService) DeleteFaculty(ctx context.Context, id uint64) error {
	if err := s.facultyRepository.DeleteFaculty(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityFaculty, events.ActionDeleted, id))
	return nil
}
