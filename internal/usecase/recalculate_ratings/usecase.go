package recalculate_ratings

import (
	"context"
	"fmt"
)

// UseCase use case для сквозного пересчета рейтингов всех центров
// Служебная операция восстановления: выводит агрегаты заново из всех
// отзывов и перезаписывает их для каждого центра, включая центры без
// отзывов (их агрегат сбрасывается в ноль). Повторный запуск ничего
// не меняет
type UseCase struct {
	reviewRepo ReviewRepository
	centerRepo CenterRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reviewRepo ReviewRepository,
	centerRepo CenterRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reviewRepo: reviewRepo,
		centerRepo: centerRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет пересчет рейтингов всех центров
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("RecalculateRatings: started")

	var updated int

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		centers, err := uc.centerRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("RecalculateRatings: failed to list centers: %v", err)
			return fmt.Errorf("%w: failed to list centers: %v", ErrInternal, err)
		}

		reviews, err := uc.reviewRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("RecalculateRatings: failed to get reviews: %v", err)
			return fmt.Errorf("%w: failed to get reviews: %v", ErrInternal, err)
		}

		sums := make(map[int64]int, len(centers))
		counts := make(map[int64]int, len(centers))
		for _, r := range reviews {
			sums[r.CenterID] += r.Rating
			counts[r.CenterID]++
		}

		for _, c := range centers {
			rating := 0.0
			count := counts[c.ID]
			if count > 0 {
				rating = float64(sums[c.ID]) / float64(count)
			}

			if err := uc.centerRepo.UpdateRating(txCtx, c.ID, rating, count); err != nil {
				uc.logger.Error("RecalculateRatings: failed to update center id=%d: %v", c.ID, err)
				return fmt.Errorf("%w: failed to update center id=%d: %v", ErrInternal, c.ID, err)
			}
			updated++

			uc.logger.Info("RecalculateRatings: center id=%d rating=%.2f (%d reviews)", c.ID, rating, count)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RecalculateRatings: finished, %d centers updated", updated)

	return &Response{CentersUpdated: updated}, nil
}
