package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"facilities-console/internal/entities"
	"facilities-console/internal/repositories"
)

// FormCatalog - справочники, которые форма загружает до отрисовки.
type FormCatalog struct {
	Campuses   []entities.Campus
	Faculties  []entities.Faculty
	BlockTypes []entities.BlockType
}

type CatalogServiceInterface interface {
	// BlockFormCatalog грузит факультеты и типы блоков параллельно.
	BlockFormCatalog(ctx context.Context) (*FormCatalog, error)
	FacultyFormCatalog(ctx context.Context) (*FormCatalog, error)
}

type CatalogService struct {
	campusRepository  repositories.CampusRepositoryInterface
	facultyRepository repositories.FacultyRepositoryInterface
	blockRepository   repositories.BlockRepositoryInterface
	logger            *zap.Logger
}

func NewCatalogService(
	campusRepository repositories.CampusRepositoryInterface,
	facultyRepository repositories.FacultyRepositoryInterface,
	blockRepository repositories.BlockRepositoryInterface,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		campusRepository:  campusRepository,
		facultyRepository: facultyRepository,
		blockRepository:   blockRepository,
		logger:            logger,
	}
}

func (s *CatalogService) BlockFormCatalog(ctx context.Context) (*FormCatalog, error) {
	var catalog FormCatalog
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		faculties, err := s.facultyRepository.GetAllFaculties(gctx)
		if err != nil {
			return fmt.Errorf("facultades: %w", err)
		}
		catalog.Faculties = faculties
		return nil
	})
	g.Go(func() error {
		blockTypes, err := s.blockRepository.GetBlockTypes(gctx)
		if err != nil {
			return fmt.Errorf("tipo_bloques: %w", err)
		}
		catalog.BlockTypes = blockTypes
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("не удалось загрузить справочники формы блока", zap.Error(err))
		return nil, err
	}
	return &catalog, nil
}

func (s *CatalogService) FacultyFormCatalog(ctx context.Context) (*FormCatalog, error) {
	campuses, err := s.campusRepository.GetAllCampuses(ctx)
	if err != nil {
		s.logger.Warn("не удалось загрузить кампусы для формы факультета", zap.Error(err))
		return nil, fmt.Errorf("campus: %w", err)
	}
	return &FormCatalog{Campuses: campuses}, nil
}
