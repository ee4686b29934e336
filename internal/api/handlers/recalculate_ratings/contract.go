package recalculate_ratings

import (
	"context"

	recalculateRatings "github.com/m04kA/SMC-ReservationService/internal/usecase/recalculate_ratings"
)

type RecalculateRatingsUseCase interface {
	Execute(ctx context.Context) (*recalculateRatings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
