package create_review

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет обязательные поля и диапазон оценки
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId is required", ErrMissingFields)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrMissingFields)
	}

	if req.Rating == 0 {
		return fmt.Errorf("%w: rating is required", ErrMissingFields)
	}

	if !domain.IsValidRating(req.Rating) {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, req.Rating)
	}

	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// meanRating считает среднее арифметическое оценок полным проходом
// по всем отзывам центра. Счетчики в центре не инкрементируются -
// агрегат каждый раз выводится заново из источника истины
func meanRating(reviews []*domain.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews)), len(reviews)
}
