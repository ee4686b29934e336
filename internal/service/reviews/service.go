package reviews

import (
	"context"
	"errors"
	"fmt"

	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/internal/service/reviews/models"
)

// Service сервис для чтения отзывов
// Создание отзыва с пересчетом рейтинга вынесено в отдельный use case
type Service struct {
	reviewRepo ReviewRepository
	centerRepo CenterRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	centerRepo CenterRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		centerRepo: centerRepo,
		logger:     logger,
	}
}

// GetByCenter получает отзывы центра (новые первыми) вместе с его
// агрегированным рейтингом
func (s *Service) GetByCenter(ctx context.Context, centerID int64) (*models.ReviewListResponse, error) {
	s.logger.Info("GetByCenter: fetching reviews for center=%d", centerID)

	c, err := s.centerRepo.GetByID(ctx, centerID)
	if err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			s.logger.Warn("GetByCenter: center id=%d not found", centerID)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetByCenter: failed to get center id=%d: %v", centerID, err)
		return nil, fmt.Errorf("%w: GetByCenter - repository error: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.GetByCenterID(ctx, centerID)
	if err != nil {
		s.logger.Error("GetByCenter: repository error for center=%d: %v", centerID, err)
		return nil, fmt.Errorf("%w: GetByCenter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCenter: successfully fetched %d reviews for center=%d", len(reviews), centerID)
	return models.FromDomainReviewList(centerID, c.Rating, reviews), nil
}
