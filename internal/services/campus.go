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

type CampusServiceInterface interface {
	GetCampuses(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Campus], error)
	FindCampus(ctx context.Context, id uint64) (*entities.Campus, error)
	CreateCampus(ctx context.Context, payload dto.CampusPayload) error
	UpdateCampus(ctx context.Context, id uint64, payload dto.CampusPayload) error
	DeleteCampus(ctx context.Context, id uint64) error
}

type CampusService struct {
	campusRepository repositories.CampusRepositoryInterface
	publisher        EventPublisher
	logger           *zap.Logger
}

func NewCampusService(
	campusRepository repositories.CampusRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) CampusServiceInterface {
	return &CampusService{
		campusRepository: campusRepository,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *CampusService) GetCampuses(ctx context.Context, q types.ListQuery) (types.ListResponse[entities.Campus], error) {
	return s.campusRepository.GetCampuses(ctx, q)
}

func (s *CampusService) FindCampus(ctx context.Context, id uint64) (*entities.Campus, error) {
	return s.campusRepository.FindCampus(ctx, id)
}

func (s *CampusService) CreateCampus(ctx context.Context, payload dto.CampusPayload) error {
	if err := s.campusRepository.CreateCampus(ctx, payload); err != nil {
		s.logger.Error("ошибка при создании кампуса", zap.String("codigo", payload.Code), zap.Error(err))
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityCampus, events.ActionCreated, 0))
	return nil
}

func (s *CampusService) UpdateCampus(ctx context.Context, id uint64, payload dto.CampusPayload) error {
	if err := s.campusRepository.UpdateCampus(ctx, id, payload); err != nil {
		s.logger.Error("ошибка при обновлении кампуса", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityCampus, events.ActionUpdated, id))
	return nil
}

func (s *CampusService) DeleteCampus(ctx context.Context, id uint64) error {
	if err := s.campusRepository.DeleteCampus(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewEntityMutated(events.EntityCampus, events.ActionDeleted, id))
	return nil
}
