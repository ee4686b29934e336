package get_centers

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/centers/models"
)

type CenterService interface {
	List(ctx context.Context) (*models.CenterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
