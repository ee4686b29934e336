package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	favoriteRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-ReservationService/internal/service/favorites/models"
)

// Service сервис для работы с избранными центрами пользователя
type Service struct {
	favoriteRepo FavoriteRepository
	centerRepo   CenterRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(
	favoriteRepo FavoriteRepository,
	centerRepo CenterRepository,
	logger Logger,
) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		centerRepo:   centerRepo,
		logger:       logger,
	}
}

// Add добавляет центр в избранное пользователя
// Повторное добавление не является ошибкой
func (s *Service) Add(ctx context.Context, userID string, centerID int64) error {
	s.logger.Info("Add: user=%s, center=%d", userID, centerID)

	if err := validateArgs(userID, centerID); err != nil {
		return err
	}

	// Центр должен существовать
	if _, err := s.centerRepo.GetByID(ctx, centerID); err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			s.logger.Warn("Add: center id=%d not found", centerID)
			return ErrCenterNotFound
		}
		s.logger.Error("Add: failed to get center id=%d: %v", centerID, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	if err := s.favoriteRepo.Add(ctx, &domain.Favorite{UserID: userID, CenterID: centerID}); err != nil {
		s.logger.Error("Add: repository error for user=%s, center=%d: %v", userID, centerID, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: center=%d added to favorites of user=%s", centerID, userID)
	return nil
}

// Remove удаляет центр из избранного пользователя
func (s *Service) Remove(ctx context.Context, userID string, centerID int64) error {
	s.logger.Info("Remove: user=%s, center=%d", userID, centerID)

	if err := validateArgs(userID, centerID); err != nil {
		return err
	}

	if err := s.favoriteRepo.Remove(ctx, userID, centerID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			s.logger.Warn("Remove: favorite user=%s, center=%d not found", userID, centerID)
			return ErrFavoriteNotFound
		}
		s.logger.Error("Remove: repository error for user=%s, center=%d: %v", userID, centerID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: center=%d removed from favorites of user=%s", centerID, userID)
	return nil
}

// IsFavorite проверяет, находится ли центр в избранном пользователя
func (s *Service) IsFavorite(ctx context.Context, userID string, centerID int64) (bool, error) {
	if err := validateArgs(userID, centerID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, centerID)
	if err != nil {
		s.logger.Error("IsFavorite: repository error for user=%s, center=%d: %v", userID, centerID, err)
		return false, fmt.Errorf("%w: IsFavorite - repository error: %v", ErrInternal, err)
	}

	return exists, nil
}

// ListByUser получает избранные центры пользователя (новые первыми)
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.FavoriteListResponse, error) {
	s.logger.Info("ListByUser: user=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	centerIDs, err := s.favoriteRepo.GetCenterIDsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: user=%s has %d favorites", userID, len(centerIDs))
	return &models.FavoriteListResponse{
		UserID:    userID,
		CenterIDs: centerIDs,
	}, nil
}

func validateArgs(userID string, centerID int64) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if centerID <= 0 {
		return fmt.Errorf("%w: centerId is required", ErrInvalidInput)
	}
	return nil
}
