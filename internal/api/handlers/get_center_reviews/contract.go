package get_center_reviews

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reviews/models"
)

type ReviewService interface {
	GetByCenter(ctx context.Context, centerID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
