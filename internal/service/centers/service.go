package centers

import (
	"context"
	"errors"
	"fmt"

	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/internal/service/centers/models"
)

// Service сервис для работы со спортивными центрами
type Service struct {
	centerRepo CenterRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса центров
func NewService(centerRepo CenterRepository, logger Logger) *Service {
	return &Service{
		centerRepo: centerRepo,
		logger:     logger,
	}
}

// List получает список всех центров с их агрегированными рейтингами
func (s *Service) List(ctx context.Context) (*models.CenterListResponse, error) {
	s.logger.Info("List: fetching centers")

	centers, err := s.centerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d centers", len(centers))
	return models.FromDomainCenterList(centers), nil
}

// GetByID получает центр по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CenterResponse, error) {
	s.logger.Info("GetByID: fetching center id=%d", id)

	c, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			s.logger.Warn("GetByID: center id=%d not found", id)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetByID: repository error for center id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCenter(c), nil
}
