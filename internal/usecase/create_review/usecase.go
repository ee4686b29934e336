package create_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/review"
)

// UseCase use case для создания отзыва с пересчетом рейтинга центра
// Один отзыв на бронирование; агрегат центра пересчитывается полным
// проходом по всем его отзывам в той же транзакции
type UseCase struct {
	reviewRepo      ReviewRepository
	reservationRepo ReservationRepository
	centerRepo      CenterRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reviewRepo ReviewRepository,
	reservationRepo ReservationRepository,
	centerRepo CenterRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reviewRepo:      reviewRepo,
		reservationRepo: reservationRepo,
		centerRepo:      centerRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания отзыва
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReview: user=%s, reservation=%d, rating=%d",
		req.UserID, req.ReservationID, req.Rating)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReview: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Review
	var centerRating float64
	var centerReviewCount int

	// 2. Создание отзыва и пересчет агрегата в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование должно существовать и принадлежать автору
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CreateReview: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CreateReview: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if reservation.UserID != req.UserID {
			uc.logger.Warn("CreateReview: reservation id=%d belongs to user=%s, not user=%s",
				req.ReservationID, reservation.UserID, req.UserID)
			return ErrForbidden
		}

		// 2.2. Один отзыв на бронирование
		_, err = uc.reviewRepo.GetByReservationID(txCtx, req.ReservationID)
		if err == nil {
			uc.logger.Warn("CreateReview: review for reservation id=%d already exists", req.ReservationID)
			return ErrDuplicateReview
		}
		if !errors.Is(err, reviewRepo.ErrReviewNotFound) {
			uc.logger.Error("CreateReview: failed to check existing review: %v", err)
			return fmt.Errorf("%w: failed to check existing review: %v", ErrInternal, err)
		}

		// 2.3. Создаем отзыв; уникальный индекс подстрахует гонку
		// двух конкурентных запросов по одному бронированию
		created, err := uc.reviewRepo.Create(txCtx, &domain.Review{
			CenterID:      reservation.CenterID,
			ReservationID: req.ReservationID,
			UserID:        req.UserID,
			Rating:        req.Rating,
			Comment:       req.Comment,
		})
		if err != nil {
			if errors.Is(err, reviewRepo.ErrDuplicateReview) {
				return ErrDuplicateReview
			}
			uc.logger.Error("CreateReview: failed to create review: %v", err)
			return fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
		}

		// 2.4. Пересчитываем агрегат центра по всем его отзывам
		reviews, err := uc.reviewRepo.GetByCenterID(txCtx, reservation.CenterID)
		if err != nil {
			uc.logger.Error("CreateReview: failed to get center reviews: %v", err)
			return fmt.Errorf("%w: failed to get center reviews: %v", ErrInternal, err)
		}

		rating, count := meanRating(reviews)
		if err := uc.centerRepo.UpdateRating(txCtx, reservation.CenterID, rating, count); err != nil {
			uc.logger.Error("CreateReview: failed to update center rating: %v", err)
			return fmt.Errorf("%w: failed to update center rating: %v", ErrInternal, err)
		}

		result = created
		centerRating = rating
		centerReviewCount = count
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReview: created review id=%d, center=%d rating=%.2f (%d reviews)",
		result.ID, result.CenterID, centerRating, centerReviewCount)

	return &Response{
		ID:                result.ID,
		CenterID:          result.CenterID,
		ReservationID:     result.ReservationID,
		UserID:            result.UserID,
		Rating:            result.Rating,
		Comment:           result.Comment,
		CreatedAt:         result.CreatedAt,
		CenterRating:      centerRating,
		CenterReviewCount: centerReviewCount,
	}, nil
}
